package mongo

import (
	"context"
	"dormy/config"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectTimeout = 10 * time.Second
)

// Database wraps the client so it can be closed on shutdown.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func New(cfg *config.Config) *Database {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DB.Mongo.URI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		log.Fatal().Err(err).Msg("Failed to ping MongoDB")
	}

	log.Info().Str("database", cfg.DB.Mongo.Database).Msg("Connected to MongoDB")

	return &Database{
		Client: client,
		DB:     client.Database(cfg.DB.Mongo.Database),
	}
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.DB.Collection(name)
}

func (d *Database) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := d.Client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect MongoDB")

		return
	}

	log.Info().Msg("MongoDB connection closed")
}
