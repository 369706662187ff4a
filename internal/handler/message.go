package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/civicdesk/complaint-portal/internal/middleware"
	"github.com/civicdesk/complaint-portal/internal/policy"
	"github.com/civicdesk/complaint-portal/internal/repository"
)

// MessageHandler serves the per-complaint conversation thread. The thread
// is append-only and poll-based; no access check ties a sender or reader
// to the complaint beyond authentication (a reproduced limitation, see the
// README).
type MessageHandler struct {
	Policy   policy.Table
	Messages MessageStore
	Users    UserStore
}

func NewMessageHandler(table policy.Table, messages MessageStore, users UserStore) *MessageHandler {
	return &MessageHandler{Policy: table, Messages: messages, Users: users}
}

type sendMessageReq struct {
	ComplaintID uint64 `json:"complaintId"`
	Message     string `json:"message"`
}

// Send handles POST /api/messages. The sender must still resolve to an
// existing account so the name snapshot can be taken.
func (h *MessageHandler) Send(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.UseMessages) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	var req sendMessageReq
	if err := c.Bind(&req); err != nil || req.ComplaintID == 0 || strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "complaintId and message are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	sender, err := h.Users.GetByID(ctx, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	msg, err := h.Messages.Create(ctx, req.ComplaintID, sender.ID, sender.Name, req.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Message sent successfully",
		"data":    msg,
	})
}

// ListByComplaint handles GET /api/messages/:complaintId, ascending by
// send time with each sender's role joined.
func (h *MessageHandler) ListByComplaint(c echo.Context) error {
	if !policy.Allow(h.Policy, middleware.UserRole(c), policy.UseMessages) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	}
	complaintID, ok := pathID(c, "complaintId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid complaint id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	messages, err := h.Messages.ListByComplaint(ctx, complaintID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": messages})
}
