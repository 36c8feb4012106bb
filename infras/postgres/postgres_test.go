package postgres_test

import (
	"context"
	"dormy/config"
	"dormy/infras/postgres"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnection(t *testing.T) *postgres.Connection {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE counters (id TEXT PRIMARY KEY, value INTEGER NOT NULL)`)
	require.NoError(t, err)

	return &postgres.Connection{Read: db, Write: db}
}

func countRows(t *testing.T, conn *postgres.Connection) int {
	t.Helper()

	var n int
	require.NoError(t, conn.Read.Get(&n, `SELECT COUNT(*) FROM counters`))

	return n
}

func TestWithTxCommits(t *testing.T) {
	conn := newConnection(t)

	err := conn.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.Exec(`INSERT INTO counters (id, value) VALUES ('a', 1)`)

		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, conn))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	conn := newConnection(t)
	boom := errors.New("boom")

	err := conn.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`INSERT INTO counters (id, value) VALUES ('a', 1)`); err != nil {
			return err
		}

		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countRows(t, conn))
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	conn := newConnection(t)

	assert.Panics(t, func() {
		_ = conn.WithTx(context.Background(), func(tx *sqlx.Tx) error {
			_, _ = tx.Exec(`INSERT INTO counters (id, value) VALUES ('a', 1)`)

			panic("unexpected")
		})
	})

	assert.Equal(t, 0, countRows(t, conn))
}

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"

	dsn := postgres.DSN(cfg, config.Postgres{
		Host: "db", Port: "5432", Username: "dormy", Password: "p@ss", Name: "dormy", SSLMode: "disable", Timezone: "Asia/Manila",
	})

	assert.Contains(t, dsn, "postgres://dormy:p%40ss@db:5432/test_dormy")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "timezone=Asia%2FManila")
}
