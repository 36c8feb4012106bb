package middleware

import (
	"context"
	"dormy/config"
	"dormy/infras/jwt"
	"dormy/infras/otel"
	"dormy/permissions"
	"dormy/shared/constant"
	"dormy/shared/failure"
	"dormy/shared/identity"
	"dormy/transport/http/response"
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const skipAuth SkipAuthKey = "skip"

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Auth validates the bearer access token and places the caller's identity in
// the request context. Routes marked skip in permissions.json, and paths that
// match no route, pass through untouched.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		if skip, _ := ctx.Value(skipAuth).(bool); skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path := routeOf(request)
		if path == constant.Empty || m.endpoint(path, request.Method).Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		claims, err := m.claims(request)
		if err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		ctx = identity.WithIdentity(ctx, identity.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) claims(request *http.Request) (*jwt.Claims, error) {
	authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == constant.Empty {
		return nil, failure.Unauthorized("Missing authorization header") // nolint:wrapcheck
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format") // nolint:wrapcheck
	}

	claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			return nil, failure.Unauthorized("Token has expired") // nolint:wrapcheck
		case errors.Is(err, jwt.ErrInvalidToken):
			return nil, failure.Unauthorized("Invalid token") // nolint:wrapcheck
		case errors.Is(err, jwt.ErrInvalidClaim):
			return nil, failure.Unauthorized("Invalid token claims") // nolint:wrapcheck
		default:
			return nil, failure.Unauthorized("Token validation failed") // nolint:wrapcheck
		}
	}

	if claims.UserID == constant.Empty || claims.Email == constant.Empty {
		log.Error().Str("token_id", claims.TokenID).Msg("jwt claims missing user id or email")

		return nil, failure.Unauthorized("Invalid token claims") // nolint:wrapcheck
	}

	return claims, nil
}

// RBAC rejects callers whose role is not listed for the matched route.
// Requires prior authentication via Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if skip, _ := ctx.Value(skipAuth).(bool); skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		path := routeOf(request)
		if m.permission.Skip || path == constant.Empty {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		permission := m.permission.FindPermissions(path, request.Method)
		role := identity.FromContext(ctx).Role

		if !permission.Skip && len(permission.Permissions) > 0 && !slices.Contains(permission.Permissions, role) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal callers bypass user authentication with the shared key.
// A wrong key is refused outright instead of falling back to token auth.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == constant.Empty {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, skipAuth, false)))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || apiKey != m.cfg.App.APIKey {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, skipAuth, true)
		ctx = identity.WithIdentity(ctx, identity.Identity{UserID: constant.ContextSystem, Role: constant.RoleAdmin})

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) endpoint(path, method string) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	return m.permission.FindPermissions(path, method)
}

// routeOf resolves the request to its registered pattern, e.g.
// /v1/listings/{id}, or "" when nothing matches.
func routeOf(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return constant.Empty
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
