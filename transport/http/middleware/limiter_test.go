package middleware_test

import (
	"context"
	"dormy/config"
	otelMocks "dormy/infras/otel/mocks"
	"dormy/shared/cache"
	cacheMocks "dormy/shared/cache/mocks"
	"dormy/transport/http/middleware"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// counterCache keeps saved values in memory the way Redis would.
func counterCache(ctrl *gomock.Controller) *cacheMocks.MockRedisCache {
	store := map[string][]byte{}
	mock := cacheMocks.NewMockRedisCache(ctrl)

	mock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string, value any) error {
		raw, ok := store[key]
		if !ok {
			return cache.Nil
		}

		return json.Unmarshal(raw, value)
	}).AnyTimes()
	mock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string, value any, _ int) error {
		raw, err := json.Marshal(value)
		store[key] = raw

		return err
	}).AnyTimes()

	return mock
}

func limited(c cache.RedisCache, maxRequests int) http.Handler {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, c)

	return app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hit(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/listings", nil)
	req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
	req.Header.Set("User-Agent", "dormy-test")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestRateLimit_BlocksAfterMaxRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := limited(counterCache(ctrl), 2)

	first := hit(h, "203.0.113.7")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, hit(h, "203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "203.0.113.7").Code)

	assert.Equal(t, http.StatusOK, hit(h, "198.51.100.2").Code, "other clients keep their own window")
}

func TestRateLimit_FailsOpenWhenCacheIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	down := cacheMocks.NewMockRedisCache(ctrl)
	down.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).AnyTimes()

	h := limited(down, 1)

	for range 3 {
		assert.Equal(t, http.StatusOK, hit(h, "203.0.113.7").Code)
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))

	h := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
