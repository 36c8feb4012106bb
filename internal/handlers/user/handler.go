package user

import (
	"dormy/infras/otel"
	"dormy/internal/domains/user/model/dto"
	"dormy/internal/domains/user/service"
	"dormy/shared/constant"
	"dormy/shared/validator"
	"dormy/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/me", handler.GetProfile)
		routerGroup.Patch("/me", handler.UpdateProfile)
		routerGroup.Get("/me/payment-info", handler.GetOwnPaymentInfo)
		routerGroup.Get("/{id}/payment-info", handler.GetPaymentInfo)
	})
}

// GetProfile returns the caller's profile.
// @Summary Get my profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	res, err := handler.service.Profile(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile changes the caller's profile. Payment fields are landlord only.
// @Summary Update my profile
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateProfile(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}

// GetOwnPaymentInfo returns the caller's payment details and whether they are complete.
// @Summary Get my payment info
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.PaymentInfoResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me/payment-info [get]
// @Security BearerAuth
func (handler *Handler) GetOwnPaymentInfo(w http.ResponseWriter, r *http.Request) {
	handler.paymentInfo(w, r, constant.Empty)
}

// GetPaymentInfo returns a landlord's payment details so a tenant can pay the reservation fee.
// @Summary Get a landlord's payment info
// @Tags User
// @Produce json
// @Param id path string true "Landlord ID"
// @Success 200 {object} response.Data[dto.PaymentInfoResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id}/payment-info [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentInfo(w http.ResponseWriter, r *http.Request) {
	handler.paymentInfo(w, r, chi.URLParam(r, constant.RequestParamID))
}

func (handler *Handler) paymentInfo(w http.ResponseWriter, r *http.Request, landlordID string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentInfo")
	defer scope.End()

	res, err := handler.service.PaymentInfo(ctx, landlordID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("landlord_id", landlordID).Msg("failed to get payment info")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
