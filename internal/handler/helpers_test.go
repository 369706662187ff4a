package handler_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/complaint-portal/internal/middleware"
)

// newAuthedCtx builds an echo context carrying the identity values that
// JWTAuth would have injected on a protected route.
func newAuthedCtx(t *testing.T, method, target, body string, userID uint64, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextRole, role)
	return c, rec
}
