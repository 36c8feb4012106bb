package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"dormy/infras/otel"
	"dormy/infras/postgres"
	"dormy/internal/domains/verification/model"
	gDto "dormy/shared/dto"
	gRepo "dormy/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Verification interface {
	Insert(ctx context.Context, model model.Verification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Verification, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Verification, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Verification, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Verification]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Verification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Verification](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
