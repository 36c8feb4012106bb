package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dormy/config"
	otelMocks "dormy/infras/otel/mocks"
	pgMocks "dormy/infras/postgres/mocks"
	listingMocks "dormy/internal/domains/listing/mocks"
	listingModel "dormy/internal/domains/listing/model"
	reservationMocks "dormy/internal/domains/reservation/mocks"
	"dormy/internal/domains/reservation/model"
	"dormy/internal/domains/reservation/model/dto"
	"dormy/internal/domains/reservation/service"
	"dormy/internal/events"
	eventMocks "dormy/internal/events/mocks"
	cacheMocks "dormy/shared/cache/mocks"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/failure"
	"dormy/shared/identity"
)

type fixture struct {
	svc       service.Reservation
	repo      *reservationMocks.MockReservation
	listings  *listingMocks.MockListing
	tx        *pgMocks.Transactor
	publisher *eventMocks.MockPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      reservationMocks.NewMockReservation(ctrl),
		listings:  listingMocks.NewMockListing(ctrl),
		tx:        pgMocks.NewTransactor(),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.listings, f.tx, f.publisher, cfg, mockCache, otelMocks.NewOtel())

	return f
}

var errCacheMiss = errors.New("miss")

func as(role, id string) context.Context {
	return identity.WithIdentity(context.Background(), identity.Identity{UserID: id, Role: role, Email: id + "@example.com"})
}

func createRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		ListingID:        "l1",
		PaymentReference: "GCASH-1234",
		Tenant:           dto.TenantSnapshot{Name: "Juan Cruz", Phone: "09171234567", Birthdate: "2001-02-03"},
	}
}

func TestReservationService_Create(t *testing.T) {
	listing := listingModel.Listing{ID: "l1", LandlordID: "landlord-1", Name: "Casa Verde", Type: listingModel.TypeSingle, Price: 1500, Status: listingModel.StatusAvailable}

	t.Run("inserts without touching listing status", func(t *testing.T) {
		f := newFixture(t)

		f.listings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(listing, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r model.Reservation) error {
			assert.Equal(t, "landlord-1", r.LandlordID)
			assert.Equal(t, "tenant-1", r.TenantID)
			assert.Equal(t, 1500.0, r.Price)
			assert.Equal(t, "tenant-1@example.com", r.TenantEmail)
			require.NotNil(t, r.TenantBirthdate)

			return nil
		})
		f.publisher.EXPECT().Reservation(gomock.Any(), events.TopicReservationCreated, gomock.Any()).Return(nil)

		res, err := f.svc.Create(as(constant.RoleTenant, "tenant-1"), createRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Casa Verde", res.ListingName)
		assert.Equal(t, "2001-02-03", res.Tenant.Birthdate)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		f := newFixture(t)

		f.listings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(listing, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().Reservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := f.svc.Create(as(constant.RoleTenant, "tenant-1"), createRequest())

		require.NoError(t, err)
	})

	t.Run("blank payment reference", func(t *testing.T) {
		f := newFixture(t)

		req := createRequest()
		req.PaymentReference = "   "

		_, err := f.svc.Create(as(constant.RoleTenant, "tenant-1"), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("landlord id disagrees with listing", func(t *testing.T) {
		f := newFixture(t)

		f.listings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(listing, nil)

		req := createRequest()
		req.LandlordID = "someone-else"

		_, err := f.svc.Create(as(constant.RoleTenant, "tenant-1"), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("listing missing", func(t *testing.T) {
		f := newFixture(t)

		f.listings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(listingModel.Listing{}, nil)

		_, err := f.svc.Create(as(constant.RoleTenant, "tenant-1"), createRequest())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("landlords cannot reserve", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(as(constant.RoleLandlord, "landlord-1"), createRequest())

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestReservationService_Resolve(t *testing.T) {
	reservation := model.Reservation{ID: "r1", ListingID: "l1", LandlordID: "landlord-1", TenantID: "tenant-1"}
	listing := listingModel.Listing{ID: "l1", LandlordID: "landlord-1", Status: listingModel.StatusAvailable}

	tests := []struct {
		name   string
		call   func(svc service.Reservation, ctx context.Context, id string) (dto.ResolveResponse, error)
		status string
		topic  string
	}{
		{"approve", service.Reservation.Approve, listingModel.StatusOccupied, events.TopicReservationApproved},
		{"reject", service.Reservation.Reject, listingModel.StatusAvailable, events.TopicReservationRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name+" updates status and deletes the reservation in one transaction", func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation, nil)
			f.listings.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(listing, nil)
			f.listings.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
					assert.Equal(t, tt.status, fields[listingModel.FieldStatus])

					return 1, nil
				})
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			f.publisher.EXPECT().Reservation(gomock.Any(), tt.topic, gomock.Any()).Return(nil)

			res, err := tt.call(f.svc, as(constant.RoleLandlord, "landlord-1"), "r1")

			require.NoError(t, err)
			assert.Equal(t, 1, f.tx.Calls)
			assert.Equal(t, dto.ResolveResponse{ReservationID: "r1", ListingID: "l1", ListingStatus: tt.status}, res)
		})

		t.Run(tt.name+" by another landlord is refused", func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation, nil)
			f.listings.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(listing, nil)

			_, err := tt.call(f.svc, as(constant.RoleLandlord, "landlord-2"), "r1")

			assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		})

		t.Run(tt.name+" of an already resolved reservation", func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

			_, err := tt.call(f.svc, as(constant.RoleLandlord, "landlord-1"), "r1")

			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		})

		t.Run(tt.name+" surfaces a failed delete", func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation, nil)
			f.listings.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(listing, nil)
			f.listings.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("deadlock"))

			_, err := tt.call(f.svc, as(constant.RoleLandlord, "landlord-1"), "r1")

			require.Error(t, err)
			assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		})
	}

	t.Run("approve against a deleted listing conflicts", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.listings.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(listingModel.Listing{}, nil)

		_, err := f.svc.Approve(as(constant.RoleLandlord, "landlord-1"), "r1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("reject against a deleted listing still clears the reservation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.listings.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(listingModel.Listing{}, nil)
		f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.publisher.EXPECT().Reservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Reject(as(constant.RoleLandlord, "landlord-1"), "r1")

		require.NoError(t, err)
	})
}

func TestReservationService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{ID: "r1", TenantID: "tenant-1", LandlordID: "landlord-1"}, nil).Times(3)

	_, err := f.svc.Get(as(constant.RoleTenant, "tenant-1"), "r1")
	require.NoError(t, err)

	_, err = f.svc.Get(as(constant.RoleAdmin, "admin-1"), "r1")
	require.NoError(t, err)

	_, err = f.svc.Get(as(constant.RoleTenant, "tenant-2"), "r1")
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestReservationService_ListForLandlord(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
			_, args := filter.GetWhereClause()
			assert.Contains(t, args, "landlord_id")

			return []model.Reservation{{ID: "r1"}}, nil
		})

	res, err := f.svc.ListForLandlord(as(constant.RoleLandlord, "landlord-1"), gDto.QueryParams{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, res.Reservations, 1)

	_, err = f.svc.ListForLandlord(as(constant.RoleTenant, "tenant-1"), gDto.QueryParams{})
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestReservationService_ExportForLandlord(t *testing.T) {
	f := newFixture(t)

	name := "Casa Verde"
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Reservation{
		{ID: "r1", ListingName: &name, TenantName: "Juan"},
		{ID: "r2", TenantName: "Maria"},
	}, nil)

	raw, err := f.svc.ExportForLandlord(as(constant.RoleLandlord, "landlord-1"))

	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), raw[:2])
}
