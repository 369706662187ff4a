package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/complaint-portal/internal/middleware"
	"github.com/civicdesk/complaint-portal/internal/model"
	"github.com/civicdesk/complaint-portal/internal/policy"
	"github.com/civicdesk/complaint-portal/internal/repository"
)

// ComplaintHandler serves complaint filing, listing and status updates.
type ComplaintHandler struct {
	Policy     policy.Table
	Complaints ComplaintStore
}

func NewComplaintHandler(table policy.Table, complaints ComplaintStore) *ComplaintHandler {
	return &ComplaintHandler{Policy: table, Complaints: complaints}
}

type createComplaintReq struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Pincode string  `json:"pincode"`
	Comment string  `json:"comment"`
	Photo   *string `json:"photo"`
}

type statusReq struct {
	Status string `json:"status"`
}

// Create handles POST /api/complaints. Only citizens file complaints; the
// new record always starts at status pending.
func (h *ComplaintHandler) Create(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.CreateComplaint) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	var req createComplaintReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" ||
		strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.State) == "" ||
		strings.TrimSpace(req.Pincode) == "" || strings.TrimSpace(req.Comment) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All complaint fields are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	created, err := h.Complaints.Create(ctx, model.Complaint{
		UserID:  middleware.UserID(c),
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
		Comment: req.Comment,
		Photo:   req.Photo,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Complaint registered successfully",
		"complaint": created,
	})
}

// ListAll handles GET /api/complaints/all (admin), filer joined, newest first.
func (h *ComplaintHandler) ListAll(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.ReadAllComplaints) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	complaints, err := h.Complaints.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"complaints": complaints})
}

// ListMine handles GET /api/complaints/user: the requester's own
// complaints, all statuses, newest first.
func (h *ComplaintHandler) ListMine(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.ReadOwnComplaints) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	complaints, err := h.Complaints.ListByFiler(ctx, middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"complaints": complaints})
}

// GetByID handles GET /api/complaints/:id. Citizens may only read their
// own complaint; agents and admins may read any complaint by id. Agents
// are not limited to their assignments, see the known-limitations note
// in the README.
func (h *ComplaintHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid complaint id"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	detail, err := h.Complaints.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Complaint not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if middleware.UserRole(c) == model.RoleUser && detail.UserID != middleware.UserID(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	return c.JSON(http.StatusOK, echo.Map{"complaint": detail})
}

// UpdateStatus handles PUT /api/complaints/:id/status (agent or admin).
// This direct route moves only the complaint; it deliberately does not
// touch any assignment record.
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.UpdateComplaintStatus) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid complaint id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if !model.ValidComplaintStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid status"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	updated, err := h.Complaints.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Complaint not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Complaint status updated",
		"complaint": updated,
	})
}
