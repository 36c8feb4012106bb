package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dormy/config"
	otelMocks "dormy/infras/otel/mocks"
	"dormy/infras/postgres"
	userModel "dormy/internal/domains/user/model"
	userRepository "dormy/internal/domains/user/repository"
	"dormy/internal/domains/verification/model"
	"dormy/internal/domains/verification/repository"
	"dormy/internal/domains/verification/service"
	eventMocks "dormy/internal/events/mocks"
	"dormy/shared"
	cacheMocks "dormy/shared/cache/mocks"
	"dormy/shared/constant"
	"dormy/shared/failure"
)

const workflowSchema = `
CREATE TABLE users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role TEXT NOT NULL,
	full_name TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT '',
	birthdate TIMESTAMP,
	address TEXT NOT NULL DEFAULT '',
	profile_picture TEXT NOT NULL DEFAULT '',
	verified BOOLEAN NOT NULL DEFAULT 0,
	gcash_name TEXT NOT NULL DEFAULT '',
	gcash_number TEXT NOT NULL DEFAULT '',
	qr_code_url TEXT NOT NULL DEFAULT '',
	last_login TIMESTAMP,
	active BOOLEAN NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL,
	created_by TEXT NOT NULL,
	modified_by TEXT NOT NULL
);
CREATE TABLE landlord_verifications (
	id TEXT PRIMARY KEY,
	landlord_id TEXT NOT NULL REFERENCES users (id),
	full_name TEXT NOT NULL,
	phone TEXT NOT NULL,
	address TEXT NOT NULL,
	id_document_url TEXT NOT NULL,
	payment_reference TEXT NOT NULL,
	status TEXT NOT NULL CHECK (status IN ('pending', 'approved', 'rejected')),
	reviewed_by TEXT,
	reviewed_at TIMESTAMP,
	created_at TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL,
	created_by TEXT NOT NULL,
	modified_by TEXT NOT NULL
);`

type workflow struct {
	svc      service.Verification
	repo     repository.Verification
	userRepo userRepository.User
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
	publisher.EXPECT().Verification(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	w := workflow{
		repo:     repository.New(conn, ot),
		userRepo: userRepository.New(conn, ot),
	}
	w.svc = service.New(w.repo, w.userRepo, conn, publisher, &config.Config{}, mockCache, ot)

	require.NoError(t, w.userRepo.Insert(context.Background(), userModel.User{
		ID: "l1", Email: "tomas@example.com", Password: "x", Role: constant.RoleLandlord, FullName: "Tomas", Active: true,
	}))

	return w
}

func (w workflow) landlord(t *testing.T, id string) userModel.User {
	t.Helper()

	u, err := w.userRepo.Get(context.Background(), shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	require.NoError(t, err)

	return u
}

func TestWorkflow_ApproveVerifiesLandlord(t *testing.T) {
	w := newWorkflow(t)

	submitted, err := w.svc.Submit(as(constant.RoleLandlord, "l1"), submitRequest())
	require.NoError(t, err)

	_, err = w.svc.Submit(as(constant.RoleLandlord, "l1"), submitRequest())
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	assert.False(t, w.landlord(t, "l1").Verified)

	_, err = w.svc.Approve(as(constant.RoleAdmin, "a1"), submitted.ID)
	require.NoError(t, err)

	assert.True(t, w.landlord(t, "l1").Verified)

	status, err := w.svc.Status(as(constant.RoleLandlord, "l1"))
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, status.Status)
}

func TestWorkflow_RejectAllowsResubmission(t *testing.T) {
	w := newWorkflow(t)

	submitted, err := w.svc.Submit(as(constant.RoleLandlord, "l1"), submitRequest())
	require.NoError(t, err)

	_, err = w.svc.Reject(as(constant.RoleAdmin, "a1"), submitted.ID)
	require.NoError(t, err)

	assert.False(t, w.landlord(t, "l1").Verified)

	stored, err := w.repo.Get(context.Background(), shared.FilterByID(submitted.ID, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, stored.Status)
	require.NotNil(t, stored.ReviewedBy)

	_, err = w.svc.Submit(as(constant.RoleLandlord, "l1"), submitRequest())
	require.NoError(t, err)
}

func TestWorkflow_ApproveForMissingLandlordRollsBack(t *testing.T) {
	w := newWorkflow(t)

	submitted, err := w.svc.Submit(as(constant.RoleLandlord, "ghost"), submitRequest())
	require.NoError(t, err)

	_, err = w.svc.Approve(as(constant.RoleAdmin, "a1"), submitted.ID)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	stored, err := w.repo.Get(context.Background(), shared.FilterByID(submitted.ID, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
}
