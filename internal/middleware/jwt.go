// Package middleware contains reusable HTTP middleware: bearer-token
// authentication, role gates, response caching and rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/complaint-portal/internal/auth"
)

// Context keys populated by JWTAuth for downstream middleware and handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// JWTAuth validates the Authorization bearer token and injects the caller's
// id and role into the request context. Per the API contract an absent
// token is 403 while a token that fails verification (bad signature,
// malformed, expired) is 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "No token provided"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			id, err := auth.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}
			c.Set(ContextUserID, id.UserID)
			c.Set(ContextRole, id.Role)
			return next(c)
		}
	}
}

// UserID returns the authenticated user's id stored by JWTAuth, or 0 when
// the request was not authenticated.
func UserID(c echo.Context) uint64 {
	if v, ok := c.Get(ContextUserID).(uint64); ok {
		return v
	}
	return 0
}

// UserRole returns the authenticated user's role stored by JWTAuth, or ""
// when the request was not authenticated.
func UserRole(c echo.Context) string {
	if v, ok := c.Get(ContextRole).(string); ok {
		return v
	}
	return ""
}
