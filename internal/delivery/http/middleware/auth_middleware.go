// Package middleware contains the echo middleware used by the HTTP delivery.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"musea/internal/delivery/http/response"
	"musea/internal/domain/service"
	"musea/internal/errors"
)

var (
	errMissingAuthHeader = errors.New("Authorization header is missing")
	errNotBearerToken    = errors.New("Invalid token format, must be Bearer token")
	errInvalidToken      = errors.New("Invalid or expired token")
)

// Context keys set by the authentication middleware.
const (
	keyUserID  = "userID"
	keyIsAdmin = "isAdmin"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", err.Error())
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyIsAdmin, claims.IsAdmin)

		return next(c)
	}
}

// OptionalAuthenticate stores the caller's identity when a valid bearer token
// is present and lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := m.claimsFromRequest(c); err == nil {
			c.Set(keyUserID, claims.UserID)
			c.Set(keyIsAdmin, claims.IsAdmin)
		}

		return next(c)
	}
}

// RequireAdmin rejects non-admin callers. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if isAdmin, ok := c.Get(keyIsAdmin).(bool); !ok || !isAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Administrator access required")
		}

		return next(c)
	}
}

func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingAuthHeader
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, errNotBearerToken
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, errInvalidToken
	}

	return claims, nil
}

// GetUserID extracts the authenticated user's ID from the context. The second
// return value is false for anonymous requests.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(keyUserID).(int64)

	return userID, ok
}

// IsAdmin reports whether the authenticated caller is an administrator.
func IsAdmin(c echo.Context) bool {
	isAdmin, ok := c.Get(keyIsAdmin).(bool)

	return ok && isAdmin
}
