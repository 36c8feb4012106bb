package listing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "dormy/infras/otel/mocks"
	"dormy/internal/domains/listing/mocks"
	"dormy/internal/domains/listing/model"
	"dormy/internal/domains/listing/model/dto"
	"dormy/internal/handlers/listing"
	gDto "dormy/shared/dto"
	"dormy/shared/failure"
)

func newRouter(t *testing.T) (*mocks.MockListingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockListingService(ctrl)

	handler := listing.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestGetListingsAppliesFilters(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetListingsResponse, error) {
			assert.Equal(t, model.FieldPrice, params.SortBy)
			require.Len(t, filter.Filters, 1)

			f, ok := filter.Filters[0].(gDto.Filter)
			require.True(t, ok)
			assert.Equal(t, model.FieldStatus, f.Field)
			assert.Equal(t, model.StatusAvailable, f.Value)

			return dto.GetListingsResponse{Listings: []dto.ListingResponse{{ID: "l-1"}}}, nil
		})

	rec := serve(router, http.MethodGet, "/listings?status=available&sort_by=price")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.GetListingsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Listings, 1)
	assert.Equal(t, "l-1", body.Data.Listings[0].ID)
}

func TestGetListingsRejectsUnknownStatus(t *testing.T) {
	_, router := newRouter(t)

	rec := serve(router, http.MethodGet, "/listings?status=sold")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchRejectsUnknownPriceRange(t *testing.T) {
	_, router := newRouter(t)

	rec := serve(router, http.MethodGet, "/listings/search?price_range=cheap")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchPassesQuery(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		Search(gomock.Any(), dto.SearchRequest{Query: "near campus", PriceRange: "500-2000"}).
		Return([]dto.ListingResponse{}, nil)

	rec := serve(router, http.MethodGet, "/listings/search?q=near+campus&price_range=500-2000")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetListingByIDNotFound(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.ListingResponse{}, failure.NotFound("listing"))

	rec := serve(router, http.MethodGet, "/listings/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "listing")
}

func TestMakeAvailable(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		MakeAvailable(gomock.Any(), "l-1").
		Return(dto.StatusResponse{ID: "l-1", Status: model.StatusAvailable}, nil)

	rec := serve(router, http.MethodPost, "/listings/l-1/make-available")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"available"`)
}

func TestDeleteListingForbidden(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "l-2").Return(failure.Forbidden("not the owner of this listing"))

	rec := serve(router, http.MethodDelete, "/listings/l-2")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateListingRejectsMalformedBody(t *testing.T) {
	_, router := newRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/listings", http.NoBody)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
