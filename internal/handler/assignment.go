package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/complaint-portal/internal/middleware"
	"github.com/civicdesk/complaint-portal/internal/model"
	"github.com/civicdesk/complaint-portal/internal/policy"
	"github.com/civicdesk/complaint-portal/internal/queue"
	"github.com/civicdesk/complaint-portal/internal/repository"
)

// AssignmentHandler serves complaint assignment and assignment status
// updates. Status updates propagate to the linked complaint inside the
// repository transaction; this handler additionally publishes an event for
// the audit consumer, ignoring broker failures.
type AssignmentHandler struct {
	Policy      policy.Table
	Assignments AssignmentStore
	Complaints  ComplaintStore
	Users       UserStore
	Events      EventPublisher
}

func NewAssignmentHandler(table policy.Table, assignments AssignmentStore,
	complaints ComplaintStore, users UserStore, events EventPublisher) *AssignmentHandler {
	return &AssignmentHandler{
		Policy:      table,
		Assignments: assignments,
		Complaints:  complaints,
		Users:       users,
		Events:      events,
	}
}

type assignReq struct {
	ComplaintID uint64 `json:"complaintId"`
	AgentID     uint64 `json:"agentId"`
}

// Assign handles POST /api/complaints/assign (admin). The complaint and
// the agent must exist, and a complaint can be assigned exactly once: a
// duplicate is a 400 regardless of how the requests interleave, because
// the store enforces uniqueness.
func (h *AssignmentHandler) Assign(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.CreateAssignment) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	var req assignReq
	if err := c.Bind(&req); err != nil || req.ComplaintID == 0 || req.AgentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "complaintId and agentId are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Complaints.GetByID(ctx, req.ComplaintID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Complaint not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	agent, err := h.Users.GetByID(ctx, req.AgentID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if errors.Is(err, repository.ErrNotFound) || agent.Role != model.RoleAgent {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Agent not found"})
	}

	created, err := h.Assignments.Assign(ctx, req.ComplaintID, req.AgentID, agent.Name)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyAssigned) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Complaint already assigned"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	_ = h.Events.Publish(ctx, queue.ComplaintEvent{
		Type:         queue.EventComplaintAssigned,
		AssignmentID: created.ID,
		ComplaintID:  created.ComplaintID,
		AgentID:      created.AgentID,
		AgentName:    created.AgentName,
		Status:       created.Status,
		ActorID:      middleware.UserID(c),
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Complaint assigned successfully",
		"assignment": created,
	})
}

// ListMine handles GET /api/complaints/assigned/agent: the requester's own
// assignments, each resolved with its complaint and the complaint's filer,
// newest first.
func (h *AssignmentHandler) ListMine(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.ReadOwnAssignments) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	assignments, err := h.Assignments.ListByAgent(ctx, middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"assignments": assignments})
}

// ListAll handles GET /api/complaints/assigned/all (admin), fully resolved.
func (h *AssignmentHandler) ListAll(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.ReadAllAssignments) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	assignments, err := h.Assignments.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"assignments": assignments})
}

// UpdateStatus handles PUT /api/complaints/assigned/:id/status (agent or
// admin). The repository moves the assignment and its complaint together,
// so re-fetching the complaint always shows the value set here.
func (h *AssignmentHandler) UpdateStatus(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.UpdateAssignment) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid assignment id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	current, err := h.Assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Assignment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if !model.ValidTransition(current.Status, req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid status"})
	}

	updated, err := h.Assignments.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Assignment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	_ = h.Events.Publish(ctx, queue.ComplaintEvent{
		Type:         queue.EventStatusChanged,
		AssignmentID: updated.ID,
		ComplaintID:  updated.ComplaintID,
		AgentID:      updated.AgentID,
		AgentName:    updated.AgentName,
		Status:       updated.Status,
		ActorID:      middleware.UserID(c),
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Status updated successfully",
		"assignment": updated,
	})
}
