package cache_test

import (
	"context"
	"dormy/infras/otel/mocks"
	"dormy/shared/cache"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestSaveAndGet(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "listing:get:1", snapshot{ID: "1", Price: 3000}, 60))

	var got snapshot
	require.NoError(t, c.Get(ctx, "listing:get:1", &got))
	assert.Equal(t, snapshot{ID: "1", Price: 3000}, got)

	server.FastForward(61 * time.Second)

	err := c.Get(ctx, "listing:get:1", &got)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestSaveString(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "raw", "plain", 60))

	var got string
	require.NoError(t, c.Get(ctx, "raw", &got))
	assert.Equal(t, "plain", got)
}

func TestGetUndecodable(t *testing.T) {
	c, server := newCache(t)

	require.NoError(t, server.Set("broken", "{not-json"))

	var got snapshot
	err := c.Get(context.Background(), "broken", &got)

	require.Error(t, err)
	assert.False(t, errors.Is(err, cache.Nil))
}

func TestDeleteAndClear(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	for _, key := range []string{"listing:gets:1", "listing:gets:2", "listing:count:1", "user:get:1"} {
		require.NoError(t, c.Save(ctx, key, "x", 60))
	}

	require.NoError(t, c.Delete(ctx, "user:get:1"))
	assert.False(t, server.Exists("user:get:1"))

	require.NoError(t, c.Clear(ctx, "listing:gets*"))
	assert.False(t, server.Exists("listing:gets:1"))
	assert.False(t, server.Exists("listing:gets:2"))
	assert.True(t, server.Exists("listing:count:1"))

	require.NoError(t, c.Delete(ctx))
}

func TestSaveIfReserved(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	token, err := c.Reserve(ctx, "listing:snapshot:fill", 30)
	require.NoError(t, err)

	saved, err := c.SaveIfReserved(ctx, "listing:snapshot:fill", "other", "listing:snapshot", snapshot{ID: "1"}, 60)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.False(t, server.Exists("listing:snapshot"))

	saved, err = c.SaveIfReserved(ctx, "listing:snapshot:fill", token, "listing:snapshot", snapshot{ID: "1"}, 60)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.False(t, server.Exists("listing:snapshot:fill"))

	var got snapshot
	require.NoError(t, c.Get(ctx, "listing:snapshot", &got))
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, 60*time.Second, server.TTL("listing:snapshot"))
}

func TestFill(t *testing.T) {
	t.Run("caches the loaded value", func(t *testing.T) {
		c, _ := newCache(t)
		ctx := context.Background()

		got, err := cache.Fill(ctx, c, "listing:get:1", 60, func(context.Context) (snapshot, error) {
			return snapshot{ID: "1", Price: 1500}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "1", got.ID)

		var cached snapshot
		require.NoError(t, c.Get(ctx, "listing:get:1", &cached))
		assert.Equal(t, got, cached)
	})

	t.Run("clear during load keeps the value out", func(t *testing.T) {
		c, server := newCache(t)
		ctx := context.Background()

		got, err := cache.Fill(ctx, c, "listing:get:1", 60, func(ctx context.Context) (snapshot, error) {
			require.NoError(t, c.Clear(ctx, "listing:*"))

			return snapshot{ID: "1"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "1", got.ID)
		assert.False(t, server.Exists("listing:get:1"))
	})

	t.Run("load failure is returned and nothing is cached", func(t *testing.T) {
		c, server := newCache(t)

		_, err := cache.Fill(context.Background(), c, "listing:get:1", 60, func(context.Context) (snapshot, error) {
			return snapshot{}, errors.New("connection reset")
		})
		require.Error(t, err)
		assert.False(t, server.Exists("listing:get:1"))
	})
}
