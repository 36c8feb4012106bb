package verification

import (
	"context"
	"dormy/infras/otel"
	"dormy/internal/domains/verification/model"
	"dormy/internal/domains/verification/model/dto"
	"dormy/internal/domains/verification/service"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/validator"
	"dormy/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Verification
	otel    otel.Otel
}

func New(service service.Verification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/verifications", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Submit)
		routerGroup.Get("/", handler.GetVerifications)
		routerGroup.Get("/status", handler.Status)
		routerGroup.Post("/{id}/approve", handler.Approve)
		routerGroup.Post("/{id}/reject", handler.Reject)
	})
}

// Submit files a landlord verification request.
// @Summary Submit verification
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Verification details"
// @Success 201 {object} response.Data[dto.VerificationResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verifications [post]
// @Security BearerAuth
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitVerification")
	defer scope.End()

	req := dto.SubmitRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit verification")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Status reports the caller's latest verification state.
// @Summary Verification status
// @Description Status is "not submitted" when the landlord has never applied.
// @Tags Verification
// @Produce json
// @Success 200 {object} response.Data[dto.StatusResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verifications/status [get]
// @Security BearerAuth
func (handler *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerificationStatus")
	defer scope.End()

	res, err := handler.service.Status(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get verification status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetVerifications lists verification requests for review.
// @Summary List verification requests
// @Tags Verification
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Success 200 {object} response.Data[dto.GetVerificationsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verifications [get]
// @Security BearerAuth
func (handler *Handler) GetVerifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVerifications")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)
	params.RestrictSort(model.FieldCreatedAt, model.FieldStatus)

	req := dto.ListRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, params, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list verifications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Approve marks a pending request approved and the landlord verified.
// @Summary Approve verification
// @Tags Verification
// @Produce json
// @Param id path string true "Verification request ID"
// @Success 200 {object} response.Data[dto.ResolveResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verifications/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	handler.resolve(w, r, "ApproveVerification", handler.service.Approve)
}

// Reject marks a pending request rejected; the landlord may submit again.
// @Summary Reject verification
// @Tags Verification
// @Produce json
// @Param id path string true "Verification request ID"
// @Success 200 {object} response.Data[dto.ResolveResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/verifications/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	handler.resolve(w, r, "RejectVerification", handler.service.Reject)
}

func (handler *Handler) resolve(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	fn func(ctx context.Context, id string) (dto.ResolveResponse, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := fn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to resolve verification")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Verification " + id + " " + res.Status)

	response.WithJSON(w, http.StatusOK, res)
}
