package listing

import (
	"dormy/infras/otel"
	"dormy/internal/domains/listing/model"
	"dormy/internal/domains/listing/model/dto"
	"dormy/internal/domains/listing/service"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/failure"
	"dormy/shared/validator"
	"dormy/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var errInvalidStatus = failure.BadRequestFromString("status must be one of available, reserved, occupied")

type Handler struct {
	service service.Listing
	otel    otel.Otel
}

func New(service service.Listing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/listings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateListing)
		routerGroup.Get("/", handler.GetListings)
		routerGroup.Get("/search", handler.SearchListings)
		routerGroup.Get("/{id}", handler.GetListingByID)
		routerGroup.Patch("/{id}", handler.UpdateListing)
		routerGroup.Delete("/{id}", handler.DeleteListing)
		routerGroup.Post("/{id}/make-available", handler.MakeAvailable)
	})
}

// CreateListing handles the creation of a new boarding house listing.
// @Summary Create a listing
// @Description Publish a boarding house. New listings start as available.
// @Tags Listing
// @Accept json
// @Produce json
// @Param request body dto.CreateListingRequest true "Listing details"
// @Success 201 {object} response.Data[dto.ListingResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings [post]
// @Security BearerAuth
func (handler *Handler) CreateListing(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateListing")
	defer scope.End()

	var req dto.CreateListingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create listing")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Listing created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetListings retrieves listings page by page.
// @Summary Get all listings
// @Description Retrieve listings with optional landlord, status and type filters.
// @Tags Listing
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param landlord_id query string false "Filter by landlord"
// @Param status query string false "Filter by status" Enums(available, reserved, occupied)
// @Param type query string false "Filter by room type"
// @Success 200 {object} response.Data[dto.GetListingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings [get]
func (handler *Handler) GetListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.FieldCreatedAt, model.FieldPrice, model.FieldName)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range []string{model.FieldLandlordID, model.FieldStatus, model.FieldType} {
		value := r.URL.Query().Get(field)
		if value == constant.Empty {
			continue
		}

		if field == model.FieldStatus && !model.ValidStatus(value) {
			response.WithError(w, errInvalidStatus)

			return
		}

		filterGroup.Add(gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	listings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, listings)
}

// SearchListings matches listings against free text and structured filters.
// @Summary Search listings
// @Description Free-text search over name, address and type, narrowed by type, location and price range.
// @Tags Listing
// @Produce json
// @Param q query string false "Free text"
// @Param type query string false "Room type"
// @Param location query string false "Location substring"
// @Param price_range query string false "Price bucket" Enums(500-2000, 2001-5000, 5001-up)
// @Success 200 {object} response.Data[[]dto.ListingResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/search [get]
func (handler *Handler) SearchListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchListings")
	defer scope.End()

	var req dto.SearchRequest
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search listings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetListingByID retrieves a listing by its ID.
// @Summary Get a listing by ID
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.ListingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id} [get]
func (handler *Handler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get listing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateListing applies a partial update to a listing the caller owns.
// @Summary Update a listing
// @Description Status is not editable here; it moves through reservations and make-available.
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body dto.UpdateListingRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateListing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateListingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update listing")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Listing updated successfully")
}

// DeleteListing removes a listing the caller owns.
// @Summary Delete a listing
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteListing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete listing")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Listing deleted successfully")
}

// MakeAvailable puts a reserved or occupied listing back on the market.
// @Summary Make a listing available
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.StatusResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/make-available [post]
// @Security BearerAuth
func (handler *Handler) MakeAvailable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MakeAvailable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.MakeAvailable(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to make listing available")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing " + id + " is " + res.Status)

	response.WithJSON(w, http.StatusOK, res)
}
