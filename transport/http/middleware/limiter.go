package middleware

import (
	"dormy/shared"
	"dormy/shared/cache"
	"dormy/shared/constant"
	"dormy/transport/http/response"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit counts requests per client in a fixed Redis window. A Redis
// outage lets traffic through rather than failing every request.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !a.config.App.RateLimiter.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if a.exceeded(w, r) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) exceeded(w http.ResponseWriter, r *http.Request) bool {
	maxReqs := a.config.App.RateLimiter.MaxRequests
	window := a.config.App.RateLimiter.WindowSeconds
	key := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

	count := 0

	err := a.cache.Get(r.Context(), key, &count)
	if err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("rate limiter unavailable")

		return false
	}

	count++
	if count > maxReqs {
		return true
	}

	if err := a.cache.Save(r.Context(), key, count, window); err != nil {
		log.Warn().Err(err).Msg("rate limiter unavailable")

		return false
	}

	w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
	w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
	w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(window))

	return false
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != constant.Empty {
		return ua
	}

	return unknownUserAgent
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the peer address without its port.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
