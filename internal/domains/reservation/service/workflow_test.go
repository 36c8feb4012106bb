package service_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dormy/config"
	otelMocks "dormy/infras/otel/mocks"
	"dormy/infras/postgres"
	listingModel "dormy/internal/domains/listing/model"
	listingDto "dormy/internal/domains/listing/model/dto"
	listingRepository "dormy/internal/domains/listing/repository"
	listingService "dormy/internal/domains/listing/service"
	"dormy/internal/domains/reservation/model"
	"dormy/internal/domains/reservation/repository"
	"dormy/internal/domains/reservation/service"
	eventMocks "dormy/internal/events/mocks"
	cacheMocks "dormy/shared/cache/mocks"
	"dormy/shared"
	"dormy/shared/constant"
)

const workflowSchema = `
CREATE TABLE boarding_houses (
	id TEXT PRIMARY KEY,
	landlord_id TEXT NOT NULL,
	name TEXT NOT NULL,
	address BLOB,
	price REAL NOT NULL,
	type TEXT NOT NULL,
	description TEXT,
	images TEXT,
	latitude REAL,
	longitude REAL,
	amenities BLOB,
	status TEXT NOT NULL CHECK (status IN ('available', 'reserved', 'occupied')),
	created_at TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL,
	created_by TEXT NOT NULL,
	modified_by TEXT NOT NULL
);
CREATE TABLE reservations (
	id TEXT PRIMARY KEY,
	listing_id TEXT NOT NULL,
	landlord_id TEXT NOT NULL,
	tenant_id TEXT NOT NULL,
	tenant_name TEXT NOT NULL,
	tenant_gender TEXT,
	tenant_birthdate TIMESTAMP,
	tenant_age INTEGER,
	tenant_phone TEXT,
	tenant_email TEXT,
	tenant_address TEXT,
	room_type TEXT,
	price REAL,
	payment_reference TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL,
	created_by TEXT NOT NULL,
	modified_by TEXT NOT NULL
);`

type workflow struct {
	listings     listingService.Listing
	reservations service.Reservation
	listingRepo  listingRepository.Listing
	repo         repository.Reservation
}

func newWorkflow(t *testing.T) workflow {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(workflowSchema)
	require.NoError(t, err)

	conn := &postgres.Connection{Read: db, Write: db}
	ot := otelMocks.NewOtel()

	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Reservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}

	w := workflow{
		listingRepo: listingRepository.New(conn, ot),
		repo:        repository.New(conn, ot),
	}
	w.listings = listingService.New(w.listingRepo, cfg, mockCache, ot)
	w.reservations = service.New(w.repo, w.listingRepo, conn, publisher, cfg, mockCache, ot)

	return w
}

func (w workflow) status(t *testing.T, id string) string {
	t.Helper()

	l, err := w.listingRepo.Get(context.Background(), shared.FilterByID(id, listingModel.FieldID, listingModel.TableName))
	require.NoError(t, err)

	return l.Status
}

func (w workflow) exists(t *testing.T, id string) bool {
	t.Helper()

	r, err := w.repo.Get(context.Background(), shared.FilterByID(id, model.FieldID, model.TableName))
	require.NoError(t, err)

	return r.ID != constant.Empty
}

func (w workflow) createListing(t *testing.T, landlord string) string {
	t.Helper()

	lat, lng := 10.7, 122.5
	res, err := w.listings.Create(as(constant.RoleLandlord, landlord), listingDto.CreateListingRequest{
		Name:      "Casa Verde",
		Address:   listingModel.Address{Barangay: "Barangay 3", City: "Iloilo City"},
		Price:     1500,
		Type:      listingModel.TypeSingle,
		Images:    []string{"a.jpg", "b.jpg", "c.jpg"},
		Latitude:  &lat,
		Longitude: &lng,
		Amenities: listingModel.Amenities{"wifi": true},
	})
	require.NoError(t, err)

	return res.ID
}

func (w workflow) reserve(t *testing.T, tenant, listingID string) string {
	t.Helper()

	req := createRequest()
	req.ListingID = listingID

	res, err := w.reservations.Create(as(constant.RoleTenant, tenant), req)
	require.NoError(t, err)

	return res.ID
}

func TestWorkflow_ApproveOccupiesAndConsumes(t *testing.T) {
	w := newWorkflow(t)

	listingID := w.createListing(t, "landlord-1")
	assert.Equal(t, listingModel.StatusAvailable, w.status(t, listingID))

	reservationID := w.reserve(t, "tenant-1", listingID)
	assert.Equal(t, listingModel.StatusAvailable, w.status(t, listingID))

	_, err := w.reservations.Approve(as(constant.RoleLandlord, "landlord-1"), reservationID)
	require.NoError(t, err)

	assert.Equal(t, listingModel.StatusOccupied, w.status(t, listingID))
	assert.False(t, w.exists(t, reservationID))

	_, err = w.reservations.Approve(as(constant.RoleLandlord, "landlord-1"), reservationID)
	assert.Error(t, err)
}

func TestWorkflow_RejectFreesAndConsumes(t *testing.T) {
	w := newWorkflow(t)

	listingID := w.createListing(t, "landlord-1")
	first := w.reserve(t, "tenant-1", listingID)
	second := w.reserve(t, "tenant-2", listingID)

	_, err := w.reservations.Approve(as(constant.RoleLandlord, "landlord-1"), first)
	require.NoError(t, err)

	_, err = w.reservations.Reject(as(constant.RoleLandlord, "landlord-1"), second)
	require.NoError(t, err)

	assert.Equal(t, listingModel.StatusAvailable, w.status(t, listingID))
	assert.False(t, w.exists(t, second))
}

// The second request survives its sibling's approval: nothing ties
// reservations on the same listing together.
func TestWorkflow_SecondReservationIsOrphanedAfterApproval(t *testing.T) {
	w := newWorkflow(t)

	listingID := w.createListing(t, "landlord-1")
	first := w.reserve(t, "tenant-1", listingID)
	second := w.reserve(t, "tenant-2", listingID)

	_, err := w.reservations.Approve(as(constant.RoleLandlord, "landlord-1"), first)
	require.NoError(t, err)

	assert.Equal(t, listingModel.StatusOccupied, w.status(t, listingID))
	assert.False(t, w.exists(t, first))
	assert.True(t, w.exists(t, second))

	res, err := w.reservations.Get(as(constant.RoleTenant, "tenant-2"), second)
	require.NoError(t, err)
	assert.Equal(t, "Casa Verde", res.ListingName)
}

func TestWorkflow_FailedResolveLeavesBothRowsUntouched(t *testing.T) {
	w := newWorkflow(t)

	listingID := w.createListing(t, "landlord-1")
	reservationID := w.reserve(t, "tenant-1", listingID)

	_, err := w.reservations.Approve(as(constant.RoleLandlord, "landlord-2"), reservationID)
	require.Error(t, err)

	assert.Equal(t, listingModel.StatusAvailable, w.status(t, listingID))
	assert.True(t, w.exists(t, reservationID))
}

func TestWorkflow_MakeAvailableAndDeleteLeaveReservationsDangling(t *testing.T) {
	w := newWorkflow(t)

	listingID := w.createListing(t, "landlord-1")
	first := w.reserve(t, "tenant-1", listingID)
	second := w.reserve(t, "tenant-2", listingID)

	_, err := w.reservations.Approve(as(constant.RoleLandlord, "landlord-1"), first)
	require.NoError(t, err)

	_, err = w.listings.MakeAvailable(as(constant.RoleLandlord, "landlord-1"), listingID)
	require.NoError(t, err)
	assert.Equal(t, listingModel.StatusAvailable, w.status(t, listingID))

	require.NoError(t, w.listings.Delete(as(constant.RoleLandlord, "landlord-1"), listingID))
	assert.True(t, w.exists(t, second))

	res, err := w.reservations.Get(as(constant.RoleLandlord, "landlord-1"), second)
	require.NoError(t, err)
	assert.True(t, res.ListingDeleted)

	_, err = w.reservations.Reject(as(constant.RoleLandlord, "landlord-1"), second)
	require.NoError(t, err)
	assert.False(t, w.exists(t, second))
}
