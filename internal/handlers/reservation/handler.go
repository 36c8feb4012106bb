package reservation

import (
	"dormy/infras/otel"
	"dormy/internal/domains/reservation/model"
	"dormy/internal/domains/reservation/model/dto"
	"dormy/internal/domains/reservation/service"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/timezone"
	"dormy/shared/validator"
	"dormy/transport/http/response"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const exportFilename = "reservations-%s.xlsx"

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/landlord", handler.GetLandlordReservations)
		routerGroup.Get("/landlord/export", handler.ExportLandlordReservations)
		routerGroup.Get("/mine", handler.GetTenantReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Post("/{id}/approve", handler.ApproveReservation)
		routerGroup.Post("/{id}/reject", handler.RejectReservation)
	})
}

// CreateReservation records a tenant's request for a listing.
// @Summary Reserve a listing
// @Description The listing keeps its status until the landlord approves.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	var req dto.CreateReservationRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("listing_id", req.ListingID).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetLandlordReservations lists outstanding reservations on the caller's listings.
// @Summary Reservations for my listings
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/landlord [get]
// @Security BearerAuth
func (handler *Handler) GetLandlordReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLandlordReservations")
	defer scope.End()

	res, err := handler.service.ListForLandlord(ctx, queryParams(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get landlord reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTenantReservations lists the caller's own outstanding reservations.
// @Summary My reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/mine [get]
// @Security BearerAuth
func (handler *Handler) GetTenantReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTenantReservations")
	defer scope.End()

	res, err := handler.service.ListForTenant(ctx, queryParams(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tenant reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ExportLandlordReservations downloads the caller's reservations as a spreadsheet.
// @Summary Export reservations
// @Tags Reservation
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/landlord/export [get]
// @Security BearerAuth
func (handler *Handler) ExportLandlordReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportLandlordReservations")
	defer scope.End()

	body, err := handler.service.ExportForLandlord(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export reservations")

		response.WithError(w, err)

		return
	}

	filename := fmt.Sprintf(exportFilename, timezone.Now().Format(constant.DateOnlyFormat))
	response.WithFile(w, constant.ContentTypeXLSX, filename, body)
}

// GetReservationByID retrieves a reservation visible to the caller.
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ApproveReservation accepts a reservation and marks the listing reserved.
// @Summary Approve a reservation
// @Description Runs in one transaction: the listing becomes reserved and the reservation is removed.
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ResolveResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Approve(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to approve reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation approved " + id)

	response.WithJSON(w, http.StatusOK, res)
}

// RejectReservation declines a reservation and puts the listing back on the market.
// @Summary Reject a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ResolveResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Reject(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to reject reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation rejected " + id)

	response.WithJSON(w, http.StatusOK, res)
}

func queryParams(r *http.Request) gDto.QueryParams {
	params := gDto.QueryParams{}
	params.FromRequest(r, true)
	params.RestrictSort(model.FieldCreatedAt)

	return params
}
