package di

import (
	"context"
	"dormy/config"
	"dormy/infras/kafka"
	infraMongo "dormy/infras/mongo"
	"dormy/infras/otel"
	"dormy/infras/postgres"
	likeCache "dormy/internal/domains/like/cache"
	likeRepository "dormy/internal/domains/like/repository"
	"dormy/internal/events"
	"dormy/transport/http"
	"dormy/transport/http/middleware"
	"dormy/transport/http/router"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const indexTimeout = 15 * time.Second

func provideLikeCache(client goRedis.UniversalClient, cfg *config.Config, ot otel.Otel) likeCache.Likes {
	return likeCache.New(client, cfg.Cache.TTL, ot)
}

// provideLikeRepository builds the indexes the like queries rely on. A
// failure is logged; Mongo still serves the queries, only slower.
func provideLikeRepository(db *infraMongo.Database, cfg *config.Config, ot otel.Otel) likeRepository.Like {
	repo := likeRepository.New(db, cfg, ot)

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure like indexes")
	}

	return repo
}

// provideHTTP releases every connection once the server has drained.
func provideHTTP(
	cfg *config.Config,
	r router.Router,
	appMiddleware middleware.AppMiddleware,
	authRole middleware.AuthRole,
	pg *postgres.Connection,
	mongoDB *infraMongo.Database,
	redisClient *goRedis.Client,
	broker kafka.Client,
	ot otel.Otel,
) *http.HTTP {
	server := http.New(cfg, r, appMiddleware, authRole)

	server.OnClose(func(ctx context.Context) {
		if err := broker.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}

		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}

		mongoDB.Close()
		pg.Close()

		if err := ot.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	})

	return server
}

// Worker consumes domain events and mails the people they concern.
type Worker struct {
	Config   *config.Config
	Broker   kafka.Client
	Notifier *events.Notifier
	Otel     otel.Otel
	Postgres *postgres.Connection
	Redis    *goRedis.Client
}

// Run blocks until ctx is cancelled, then disposes every subscription once
// and closes the connections.
func (w *Worker) Run(ctx context.Context) {
	dispose := events.Run(ctx, w.Broker, w.Notifier.Handlers())

	<-ctx.Done()

	dispose()

	if err := w.Broker.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka client")
	}

	if err := w.Redis.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis client")
	}

	w.Postgres.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	if err := w.Otel.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}
