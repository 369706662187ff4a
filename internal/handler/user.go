package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/complaint-portal/internal/middleware"
	"github.com/civicdesk/complaint-portal/internal/repository"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	Users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

type updateProfileReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Profile handles GET /api/user/profile. The account may have been removed
// between token issuance and now, in which case this is a 404.
func (h *UserHandler) Profile(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}

// UpdateProfile handles PUT /api/user/profile. Only name and phone are
// mutable; email and role are fixed at signup.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Name and phone are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.UpdateProfile(ctx, middleware.UserID(c), req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Profile updated successfully", "user": u})
}
