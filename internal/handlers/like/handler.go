package like

import (
	"context"
	"dormy/infras/otel"
	"dormy/internal/domains/like/model/dto"
	"dormy/internal/domains/like/service"
	"dormy/shared/constant"
	"dormy/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Like
	otel    otel.Otel
}

func New(service service.Like, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/likes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLikedIDs)
		routerGroup.Get("/listings", handler.GetLikedListings)
		routerGroup.Post("/{listingID}", handler.Like)
		routerGroup.Delete("/{listingID}", handler.Unlike)
		routerGroup.Post("/{listingID}/toggle", handler.Toggle)
	})
}

// GetLikedIDs returns the ids of listings the caller liked.
// @Summary Liked listing ids
// @Tags Like
// @Produce json
// @Success 200 {object} response.Data[dto.IDsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/likes [get]
// @Security BearerAuth
func (handler *Handler) GetLikedIDs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLikedIDs")
	defer scope.End()

	res, err := handler.service.IDs(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get liked ids")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetLikedListings returns the listings the caller liked, newest first.
// @Summary Liked listings
// @Tags Like
// @Produce json
// @Success 200 {object} response.Data[[]listingDto.ListingResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/likes/listings [get]
// @Security BearerAuth
func (handler *Handler) GetLikedListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLikedListings")
	defer scope.End()

	res, err := handler.service.Listings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get liked listings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Like marks a listing as liked. Liking twice is a no-op.
// @Summary Like a listing
// @Tags Like
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/likes/{listingID} [post]
// @Security BearerAuth
func (handler *Handler) Like(w http.ResponseWriter, r *http.Request) {
	handler.mark(w, r, "Like", handler.service.Like)
}

// Unlike removes a like. Unliking a listing that was never liked is a no-op.
// @Summary Unlike a listing
// @Tags Like
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/likes/{listingID} [delete]
// @Security BearerAuth
func (handler *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	handler.mark(w, r, "Unlike", handler.service.Unlike)
}

// Toggle flips the like state of a listing.
// @Summary Toggle like
// @Tags Like
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/likes/{listingID}/toggle [post]
// @Security BearerAuth
func (handler *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	handler.mark(w, r, "ToggleLike", handler.service.Toggle)
}

func (handler *Handler) mark(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	fn func(ctx context.Context, listingID string) (dto.ToggleResponse, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	listingID := chi.URLParam(r, constant.RequestParamListingID)

	res, err := fn(ctx, listingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("listing_id", listingID).Msg("failed to update like")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
