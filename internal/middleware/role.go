package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole rejects with 403 unless the role stored by JWTAuth is one of
// the given values. It is used for route groups whose every endpoint shares
// the same role requirement; mixed-role endpoints consult the policy table
// in their handlers instead.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !allowed[UserRole(c)] {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
			}
			return next(c)
		}
	}
}
