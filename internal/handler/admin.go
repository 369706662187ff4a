package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/complaint-portal/internal/model"
)

// AdminHandler serves user/agent listings and dashboard statistics. The
// whole /api/admin group is gated by RequireRole("admin") in the router,
// so these handlers do not recheck the role themselves.
type AdminHandler struct {
	Users      UserStore
	Complaints ComplaintStore
}

func NewAdminHandler(users UserStore, complaints ComplaintStore) *AdminHandler {
	return &AdminHandler{Users: users, Complaints: complaints}
}

// ListUsers handles GET /api/admin/users: citizen accounts, newest first.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	users, err := h.Users.ListByRole(ctx, model.RoleUser)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// ListAgents handles GET /api/admin/agents: agent accounts, newest first.
func (h *AdminHandler) ListAgents(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	agents, err := h.Users.ListByRole(ctx, model.RoleAgent)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"agents": agents})
}

// Stats handles GET /api/admin/stats with the dashboard counters.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	totalUsers, err := h.Users.CountByRole(ctx, model.RoleUser)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	totalAgents, err := h.Users.CountByRole(ctx, model.RoleAgent)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	totalComplaints, err := h.Complaints.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	pending, err := h.Complaints.CountByStatus(ctx, model.StatusPending)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	resolved, err := h.Complaints.CountByStatus(ctx, model.StatusResolved)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"stats": echo.Map{
			"totalUsers":         totalUsers,
			"totalAgents":        totalAgents,
			"totalComplaints":    totalComplaints,
			"pendingComplaints":  pending,
			"resolvedComplaints": resolved,
		},
	})
}
