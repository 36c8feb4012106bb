package middleware_test

import (
	"dormy/config"
	"dormy/infras/jwt"
	otelMocks "dormy/infras/otel/mocks"
	"dormy/permissions"
	"dormy/shared/identity"
	"dormy/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPermissions = `{
  "endpoints": [
    {"path": "/v1/listings", "method": "GET", "skip": true},
    {"path": "/v1/listings", "method": "POST", "permissions": ["landlord"]},
    {"path": "/v1/listings/{id}", "method": "DELETE", "permissions": ["landlord"]},
    {"path": "/v1/likes", "method": "GET", "permissions": []}
  ]
}`

type fixture struct {
	router http.Handler
	tokens *jwt.Service
	seen   identity.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 5
	cfg.JWT.RefreshExpireMin = 60
	cfg.App.APIKey = "internal-key"

	perms, err := permissions.Parse([]byte(testPermissions))
	require.NoError(t, err)

	tokens := jwt.New(cfg).(*jwt.Service)
	mw := middleware.NewAuthRoleMiddleware(tokens, otelMocks.NewOtel(), perms, cfg)

	f := &fixture{tokens: tokens}
	record := func(w http.ResponseWriter, r *http.Request) {
		f.seen = identity.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Use(mw.APIKey, mw.Auth, mw.RBAC)
	router.Route("/v1", func(r chi.Router) {
		r.Route("/listings", func(r chi.Router) {
			r.Get("/", record)
			r.Post("/", record)
			r.Delete("/{id}", record)
		})
		r.Get("/likes", record)
	})

	f.router = router

	return f
}

func (f *fixture) do(t *testing.T, method, path string, headers map[string]string) int {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec.Code
}

func (f *fixture) bearer(t *testing.T, userID, role string) map[string]string {
	t.Helper()

	pair, err := f.tokens.GenerateTokenPair(userID, userID+"@dormy.test", role)
	require.NoError(t, err)

	return map[string]string{"Authorization": "Bearer " + pair.AccessToken}
}

func TestAuth_SkippedRouteNeedsNoToken(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/v1/listings", nil))
	assert.False(t, f.seen.Authenticated())
}

func TestAuth_MissingToken(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodPost, "/v1/listings", nil))
}

func TestAuth_MalformedToken(t *testing.T) {
	f := newFixture(t)

	code := f.do(t, http.MethodGet, "/v1/likes", map[string]string{"Authorization": "Bearer not-a-jwt"})

	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAuth_PlacesIdentityInContext(t *testing.T) {
	f := newFixture(t)

	code := f.do(t, http.MethodPost, "/v1/listings", f.bearer(t, "landlord-1", "landlord"))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "landlord-1", f.seen.UserID)
	assert.Equal(t, "landlord", f.seen.Role)
}

func TestRBAC_RejectsWrongRole(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodPost, "/v1/listings", f.bearer(t, "tenant-1", "tenant")))
	assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodDelete, "/v1/listings/l1", f.bearer(t, "tenant-1", "tenant")))
}

func TestRBAC_EmptyRoleListAdmitsAnyCaller(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/v1/likes", f.bearer(t, "tenant-1", "tenant")))
}

func TestAPIKey(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodDelete, "/v1/listings/l1", map[string]string{"X-API-Key": "internal-key"}))
	assert.Equal(t, "admin", f.seen.Role)

	assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodGet, "/v1/likes", map[string]string{"X-API-Key": "guess"}))
}

func TestAuth_UnknownRouteFallsThroughToNotFound(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/v1/nowhere", nil))
}
