package postgres

//nolint:revive
import (
	"context"
	"dormy/config"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 20
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection holds the primary and replica pools. Both may point at the
// same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Transactor runs fn inside a single write transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// WithTx commits when fn returns nil and rolls back otherwise, including on panic.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("failed to close database")
		}
	}
}

func DSN(cfg *config.Config, db config.Postgres) string {
	query := url.Values{}
	query.Set("sslmode", db.SSLMode)

	if db.Timezone != "" {
		query.Set("timezone", db.Timezone)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.Username, db.Password),
		Host:     net.JoinHostPort(db.Host, db.Port),
		Path:     cfg.DB.Postgres.Prefix + db.Name,
		RawQuery: query.Encode(),
	}

	return u.String()
}

func connect(cfg *config.Config, name string, db config.Postgres) *sqlx.DB {
	dsn := DSN(cfg, db)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second
	logger := log.With().Str("name", name).Str("host", db.Host).Str("port", db.Port).Str("dbName", db.Name).Logger()

	for attempt := 1; attempt <= max(cfg.DB.Postgres.MaxRetry, 1); attempt++ {
		conn, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			conn.SetMaxIdleConns(postgresMaxIdleConnection)
			conn.SetMaxOpenConns(postgresMaxOpenConnection)
			conn.SetConnMaxLifetime(postgresConnMaxLifetime)

			logger.Info().Msg("Connected to database")

			return conn
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(wait)
	}

	logger.Fatal().Msg("Giving up connecting to database")

	return nil
}
