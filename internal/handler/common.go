// Package handler implements the HTTP layer. Handlers assume JWTAuth has
// already run on protected routes; role decisions beyond the route group go
// through the policy table, and ownership predicates that need entity data
// are evaluated here after loading the row.
package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// pathID parses a numeric path parameter; zero is treated as invalid.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
