package mocks

import (
	"context"
	"dormy/infras/postgres"

	"github.com/jmoiron/sqlx"
)

// Transactor runs fn with a nil transaction; pair it with mocked repositories.
type Transactor struct {
	Calls int
	Err   error
}

var _ postgres.Transactor = (*Transactor)(nil)

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	t.Calls++

	if t.Err != nil {
		return t.Err
	}

	return fn(nil)
}
