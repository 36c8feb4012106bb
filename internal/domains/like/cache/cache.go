// Package cache mirrors each user's liked listing ids into a Redis set. The
// set is either complete or absent, never partial.
package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"
	"dormy/infras/otel"
	"dormy/internal/domains/like/model"
	"dormy/shared/constant"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
)

// loaded marks a set that was filled from the store, so users with no
// likes still produce a hit.
const loaded = "~"

// addIfLoaded only touches a set that already exists.
var addIfLoaded = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	redis.call('SADD', KEYS[1], ARGV[1])
	return 1
end
return 0
`)

type Likes interface {
	Members(ctx context.Context, userID string) (ids []string, hit bool, err error)
	Fill(ctx context.Context, userID string, ids []string) error
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) error
	Drop(ctx context.Context, userID string) error
}

type redisLikes struct {
	client redis.UniversalClient
	ttl    time.Duration
	otel   otel.Otel
}

func New(client redis.UniversalClient, ttlSeconds int, otel otel.Otel) Likes {
	return &redisLikes{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		otel:   otel,
	}
}

func key(userID string) string {
	return model.CachePrefix + "user:" + userID
}

func (c *redisLikes) Members(ctx context.Context, userID string) (ids []string, hit bool, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".likes.Members")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	members, err := c.client.SMembers(ctx, key(userID)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read liked set: %w", err)
	}

	if !slices.Contains(members, loaded) {
		return nil, false, nil
	}

	ids = slices.DeleteFunc(members, func(m string) bool { return m == loaded })
	slices.Sort(ids)

	return ids, true, nil
}

func (c *redisLikes) Fill(ctx context.Context, userID string, ids []string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".likes.Fill")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	members := make([]any, 0, len(ids)+1)
	members = append(members, loaded)

	for _, id := range ids {
		members = append(members, id)
	}

	k := key(userID)

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.SAdd(ctx, k, members...)

		if c.ttl > 0 {
			pipe.Expire(ctx, k, c.ttl)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to fill liked set: %w", err)
	}

	return nil
}

func (c *redisLikes) Add(ctx context.Context, userID, listingID string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".likes.Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = addIfLoaded.Run(ctx, c.client, []string{key(userID)}, listingID).Err(); err != nil {
		return fmt.Errorf("failed to add to liked set: %w", err)
	}

	return nil
}

func (c *redisLikes) Remove(ctx context.Context, userID, listingID string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".likes.Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = c.client.SRem(ctx, key(userID), listingID).Err(); err != nil {
		return fmt.Errorf("failed to remove from liked set: %w", err)
	}

	return nil
}

func (c *redisLikes) Drop(ctx context.Context, userID string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".likes.Drop")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = c.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to drop liked set: %w", err)
	}

	return nil
}
