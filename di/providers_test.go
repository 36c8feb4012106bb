package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dormy/config"
	infraMongo "dormy/infras/mongo"
	otelMocks "dormy/infras/otel/mocks"
)

func TestProvideLikeRepositoryToleratesIndexFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Mongo.Database = "dormy_test"
	cfg.DB.Mongo.LikeCollection = "liked"

	opts := options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(50 * time.Millisecond)

	client, err := mongo.Connect(context.Background(), opts)
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := &infraMongo.Database{Client: client, DB: client.Database(cfg.DB.Mongo.Database)}

	repo := provideLikeRepository(db, cfg, otelMocks.NewOtel())
	require.NotNil(t, repo)
}
