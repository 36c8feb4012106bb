package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"dormy/infras/otel"
	"dormy/internal/domains/otp/model"
	"dormy/shared/constant"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("otp not found")

// consumeIfMatches deletes the entry only while it still holds the given
// code, so a code sent in between survives.
var consumeIfMatches = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
	return 0
end
if cjson.decode(raw)['otp'] ~= ARGV[1] then
	return 0
end
return redis.call('DEL', KEYS[1])
`)

// Store keeps at most one pending code per email.
type Store interface {
	Put(ctx context.Context, email string, entry model.Entry, ttl time.Duration) error
	Get(ctx context.Context, email string) (model.Entry, error)
	// Consume removes the entry only if it still holds code. It reports
	// false when the entry is gone or was replaced.
	Consume(ctx context.Context, email, code string) (bool, error)
}

type redisStore struct {
	client redis.UniversalClient
	otel   otel.Otel
}

func New(client redis.UniversalClient, otel otel.Otel) Store {
	return &redisStore{client: client, otel: otel}
}

func key(email string) string {
	return model.CachePrefix + email
}

func (s *redisStore) Put(ctx context.Context, email string, entry model.Entry, ttl time.Duration) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".PutOTP")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode otp: %w", err)
	}

	if err = s.client.Set(ctx, key(email), raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	return nil
}

func (s *redisStore) Get(ctx context.Context, email string) (entry model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetOTP")
	defer scope.End()

	raw, err := s.client.Get(ctx, key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entry, ErrNotFound
	}

	if err != nil {
		scope.TraceError(err)

		return entry, fmt.Errorf("failed to read otp: %w", err)
	}

	if err = json.Unmarshal(raw, &entry); err != nil {
		scope.TraceError(err)

		return entry, fmt.Errorf("failed to decode otp: %w", err)
	}

	return entry, nil
}

func (s *redisStore) Consume(ctx context.Context, email, code string) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ConsumeOTP")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	n, err := consumeIfMatches.Run(ctx, s.client, []string{key(email)}, code).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to consume otp: %w", err)
	}

	return n == 1, nil
}
