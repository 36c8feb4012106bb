package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"dormy/infras/otel"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanBatchSize         = 100
	Nil                   = redis.Nil

	reserveSuffix     = ":fill"
	reserveTTLSeconds = 30
)

var saveIfReserved = redis.NewScript(`
if redis.call('GET', KEYS[1]) ~= ARGV[1] then
	return 0
end
redis.call('DEL', KEYS[1])
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'EX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// RedisCache stores JSON-encoded response snapshots.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, ttlSeconds int) error
	Get(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context, pattern string) error
	// Reserve places a fresh token under key. SaveIfReserved writes only
	// while that token is still in place, so a Clear that ran between the
	// two wins over a value computed from older data.
	Reserve(ctx context.Context, key string, ttlSeconds int) (string, error)
	SaveIfReserved(ctx context.Context, reserveKey, token, key string, value any, ttlSeconds int) (bool, error)
}

type redisCache struct {
	client redis.UniversalClient
	otel   otel.Otel
}

func NewRedisCache(client redis.UniversalClient, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear deletes every key matching pattern, scanning in batches.
func (c *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	iter := c.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	batch := make([]string, 0, scanBatchSize)

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())

		if len(batch) == scanBatchSize {
			if err = c.client.Del(ctx, batch...).Err(); err != nil {
				log.Error().Err(err).Str("pattern", pattern).Msg("failed to clear cache batch")

				return fmt.Errorf("failed to delete cache value: %w", err)
			}

			batch = batch[:0]
		}
	}

	if err = iter.Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to scan cache")

		return fmt.Errorf("failed to scan cache: %w", err)
	}

	if len(batch) > 0 {
		if err = c.client.Del(ctx, batch...).Err(); err != nil {
			log.Error().Err(err).Str("pattern", pattern).Msg("failed to clear cache batch")

			return fmt.Errorf("failed to delete cache value: %w", err)
		}
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(keys) == 0 {
		return nil
	}

	scope.SetAttribute(otelCacheKeyAttribute, keys)

	if err = c.client.Del(ctx, keys...).Err(); err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("failed to del cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get decodes the cached value into value. A miss is reported as an error
// wrapping Nil.
func (c *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			scope.TraceError(err)
			log.Error().Err(err).Str("key", key).Msg("failed to get cache")
		}

		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if s, ok := value.(*string); ok {
		*s = string(raw)

		return nil
	}

	if err = json.Unmarshal(raw, value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (c *redisCache) Save(ctx context.Context, key string, value any, ttlSeconds int) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	payload, err := encode(key, value)
	if err != nil {
		return err
	}

	if err = c.client.Set(ctx, key, payload, time.Duration(ttlSeconds)*time.Second).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("key", key).Msg("cache saved")

	return nil
}

func (c *redisCache) Reserve(ctx context.Context, key string, ttlSeconds int) (token string, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	token = uuid.NewString()

	if err = c.client.Set(ctx, key, token, time.Duration(ttlSeconds)*time.Second).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to reserve cache key")

		return "", fmt.Errorf("failed to reserve cache key: %w", err)
	}

	return token, nil
}

func (c *redisCache) SaveIfReserved(
	ctx context.Context,
	reserveKey, token, key string,
	value any,
	ttlSeconds int,
) (saved bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".SaveIfReserved")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	payload, err := encode(key, value)
	if err != nil {
		return false, err
	}

	n, err := saveIfReserved.Run(ctx, c.client, []string{reserveKey, key}, token, payload, ttlSeconds).Int()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set reserved cache")

		return false, fmt.Errorf("failed to set cache value: %w", err)
	}

	if n == 0 {
		log.Debug().Str("key", key).Msg("cache reservation lost, not saved")

		return false, nil
	}

	return true, nil
}

func encode(key string, value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal cache")

		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return payload, nil
}

// Fill loads a value through load and caches it under key. The key is
// reserved before load runs, so an invalidation during the load keeps the
// result out of the cache. Cache failures are logged and never fail the call.
func Fill[T any](ctx context.Context, c RedisCache, key string, ttlSeconds int, load func(context.Context) (T, error)) (T, error) {
	reserveKey := key + reserveSuffix

	token, reserveErr := c.Reserve(ctx, reserveKey, reserveTTLSeconds)

	value, err := load(ctx)
	if err != nil || reserveErr != nil {
		return value, err
	}

	if _, err := c.SaveIfReserved(ctx, reserveKey, token, key, value, ttlSeconds); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to fill cache")
	}

	return value, nil
}
