package helper

//nolint:revive
import (
	"dormy/config"
	"dormy/infras/postgres"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const DefaultMigrationsDir = "migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// DSN is the write-side connection string with the migrations table
// golang-migrate should track versions in.
func DSN(config *config.Config) string {
	dsn, err := url.Parse(postgres.DSN(config, config.DB.Postgres.Write))
	if err != nil {
		return postgres.DSN(config, config.DB.Postgres.Write)
	}

	query := dsn.Query()
	query.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func getConnection(config *config.Config, dir string) (*migrate.Migrate, error) {
	if dir == "" {
		dir = DefaultMigrationsDir
	}

	mig, err := migrate.New("file://"+dir, DSN(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies action against the schema in dir. Running with nothing to
// do is not an error.
func Runner(config *config.Config, dir, action string) error {
	mig, err := getConnection(config, dir)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrator")
		}
	}()

	var run func() error

	switch action {
	case ActionUp:
		run = mig.Up
	case ActionDown:
		run = func() error { return mig.Steps(-1) }
	case ActionStepUp:
		run = func() error { return mig.Steps(1) }
	case ActionDrop:
		run = mig.Down
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if err := run(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration completed")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, DefaultMigrationsDir, ActionUp)
}
