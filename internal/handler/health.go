package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health handles GET /api/health. No auth; load balancers and uptime
// checks hit this.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Server is running"})
}
