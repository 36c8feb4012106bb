package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dormy/config"
	"dormy/infras/otel/mocks"
	listingMocks "dormy/internal/domains/listing/mocks"
	"dormy/internal/domains/listing/model"
	"dormy/internal/domains/listing/model/dto"
	"dormy/internal/domains/listing/service"
	"dormy/shared/cache"
	cacheMocks "dormy/shared/cache/mocks"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/failure"
	"dormy/shared/identity"
)

var errCacheMiss = errors.New("cache miss")

func ptr[T any](v T) *T { return &v }

func landlordCtx(id string) context.Context {
	return identity.WithIdentity(context.Background(), identity.Identity{UserID: id, Role: constant.RoleLandlord})
}

func newService(t *testing.T) (service.Listing, *listingMocks.MockListing, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := listingMocks.NewMockListing(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
	mockCache.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Return("token", nil).AnyTimes()
	mockCache.EXPECT().SaveIfReserved(gomock.Any(), gomock.Any(), "token", gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func validCreate() dto.CreateListingRequest {
	return dto.CreateListingRequest{
		Name:      "Casa Verde",
		Address:   model.Address{Barangay: "Barangay 3", City: "Iloilo City"},
		Price:     1500,
		Type:      model.TypeSingle,
		Images:    []string{"a.jpg", "b.jpg", "c.jpg"},
		Latitude:  ptr(10.72),
		Longitude: ptr(122.56),
	}
}

func TestListingService_Create(t *testing.T) {
	t.Run("inserts an available listing and clears listing caches", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l model.Listing) error {
			assert.Equal(t, model.StatusAvailable, l.Status)
			assert.Equal(t, "landlord-1", l.LandlordID)

			return nil
		})
		mockCache.EXPECT().Clear(gomock.Any(), model.CachePrefix+constant.Asterix).Return(nil)

		res, err := svc.Create(landlordCtx("landlord-1"), validCreate())

		require.NoError(t, err)
		assert.Equal(t, model.StatusAvailable, res.Status)
		assert.NotEmpty(t, res.ID)
	})

	invalid := map[string]func(r *dto.CreateListingRequest){
		"two images":        func(r *dto.CreateListingRequest) { r.Images = r.Images[:2] },
		"eight images":      func(r *dto.CreateListingRequest) { r.Images = []string{"1", "2", "3", "4", "5", "6", "7", "8"} },
		"marker not placed": func(r *dto.CreateListingRequest) { r.Longitude = nil },
		"missing name":      func(r *dto.CreateListingRequest) { r.Name = "" },
	}

	for name, mutate := range invalid {
		t.Run("rejects "+name+" before touching the store", func(t *testing.T) {
			svc, _, _ := newService(t)

			req := validCreate()
			mutate(&req)

			_, err := svc.Create(landlordCtx("landlord-1"), req)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}

	t.Run("tenants cannot create listings", func(t *testing.T) {
		svc, _, _ := newService(t)

		ctx := identity.WithIdentity(context.Background(), identity.Identity{UserID: "t1", Role: constant.RoleTenant})

		_, err := svc.Create(ctx, validCreate())

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestListingService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{ID: "l1", Price: 1500, Status: model.StatusOccupied}, nil)

		res, err := svc.Get(context.Background(), "l1")

		require.NoError(t, err)
		assert.Equal(t, "₱1500", res.PriceText)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{}, errors.New("connection reset"))

		_, err := svc.Get(context.Background(), "l1")

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestListingService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Listing, error) {
			assert.Equal(t, model.FieldCreatedAt, params.SortBy)

			return []model.Listing{{ID: "l1"}, {ID: "l2"}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password"}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.Listings, 2)
	assert.Equal(t, 2, res.Pagination.TotalPage)
}

func TestListingService_MakeAvailable(t *testing.T) {
	for _, prior := range []string{model.StatusAvailable, model.StatusReserved, model.StatusOccupied} {
		t.Run("from "+prior, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)

			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{ID: "l1", LandlordID: "landlord-1", Status: prior}, nil)
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
					assert.Equal(t, model.StatusAvailable, fields[model.FieldStatus])

					return 1, nil
				})
			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

			res, err := svc.MakeAvailable(landlordCtx("landlord-1"), "l1")

			require.NoError(t, err)
			assert.Equal(t, model.StatusAvailable, res.Status)
		})
	}

	t.Run("other landlords are refused", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{ID: "l1", LandlordID: "landlord-1"}, nil)

		_, err := svc.MakeAvailable(landlordCtx("landlord-2"), "l1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestListingService_Update(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{ID: "l1", LandlordID: "landlord-1"}, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
			assert.Equal(t, "Casa Azul", fields[model.FieldName])
			assert.NotContains(t, fields, model.FieldStatus)
			assert.Equal(t, "landlord-1", fields[constant.FieldModifiedBy])

			return 1, nil
		})
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Update(landlordCtx("landlord-1"), "l1", dto.UpdateListingRequest{Name: "Casa Azul"})

	require.NoError(t, err)
}

func TestListingService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{ID: "l1", LandlordID: "landlord-1"}, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.Delete(landlordCtx("landlord-1"), "l1"))
}

func TestListingService_Search(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Listing{
		{ID: "l1", Name: "Sunset Rooms", Status: model.StatusOccupied},
		{ID: "l2", Name: "Sunset Suites", Status: model.StatusAvailable, Address: model.Address{Line: "Brgy. 3, Jaro"}},
		{ID: "l3", Name: "Sunrise Dorm", Status: model.StatusAvailable},
	}, nil)

	res, err := svc.Search(context.Background(), dto.SearchRequest{Query: "sunset", Location: "barangay 3"})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "l2", res[0].ID)
}

func TestListingService_SearchSkipsCachingWhenInvalidatedMidLoad(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	redisCache := cache.NewRedisCache(client, mocks.NewOtel())
	mockRepo := listingMocks.NewMockListing(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, redisCache, mocks.NewOtel())
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Listing, error) {
				// an approval commits and invalidates while this read is in flight
				require.NoError(t, redisCache.Clear(ctx, model.CachePrefix+constant.Asterix))

				return []model.Listing{{ID: "l1", Name: "Casa Verde", Status: model.StatusAvailable}}, nil
			}),
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Listing{{ID: "l1", Name: "Casa Verde", Status: model.StatusOccupied}}, nil),
	)

	res, err := svc.Search(ctx, dto.SearchRequest{Query: "casa"})
	require.NoError(t, err)
	assert.Len(t, res, 1)

	res, err = svc.Search(ctx, dto.SearchRequest{Query: "casa"})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestListingService_SearchCachesSnapshot(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	mockRepo := listingMocks.NewMockListing(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, cache.NewRedisCache(client, mocks.NewOtel()), mocks.NewOtel())

	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Listing{{ID: "l1", Name: "Casa Verde", Status: model.StatusAvailable}}, nil).
		Times(1)

	for range 2 {
		res, err := svc.Search(context.Background(), dto.SearchRequest{Query: "casa"})
		require.NoError(t, err)
		assert.Len(t, res, 1)
	}
}
