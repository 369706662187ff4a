package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/complaint-portal/internal/auth"
	"github.com/civicdesk/complaint-portal/internal/config"
	"github.com/civicdesk/complaint-portal/internal/model"
	"github.com/civicdesk/complaint-portal/internal/repository"
)

// AuthHandler bundles dependencies for the signup and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	UserType string `json:"userType"` // user | agent | admin; defaults to user
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userSummary struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	UserType string `json:"userType"`
}

// Signup handles POST /api/auth/signup. A duplicate email yields 400; the
// response carries a summary of the new account but no token, so the
// client logs in afterwards.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Name, email, password and phone are required"})
	}
	role := strings.ToLower(strings.TrimSpace(req.UserType))
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user type"})
	}

	hash, err := auth.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	id, err := h.Users.Create(ctx, req.Name, req.Email, hash, req.Phone, role)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    userSummary{ID: id, Name: req.Name, Email: req.Email, UserType: role},
	})
}

// Login handles POST /api/auth/login. An unknown email is 404 and a wrong
// password 401, matching the published contract. On success the response
// carries a 24h access token and the user summary.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if !auth.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid password"})
	}

	token, err := auth.IssueAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token.Token,
		"user":    userSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, UserType: u.Role},
	})
}
