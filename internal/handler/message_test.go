package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/complaint-portal/internal/handler"
	"github.com/civicdesk/complaint-portal/internal/model"
	"github.com/civicdesk/complaint-portal/internal/policy"
	"github.com/civicdesk/complaint-portal/internal/repository"
)

// TestMessageSendSnapshotsSenderName verifies the sender's current name is
// resolved and stored with the message.
func TestMessageSendSnapshotsSenderName(t *testing.T) {
	messages := new(MockMessageStore)
	users := new(MockUserStore)

	users.On("GetByID", mock.Anything, uint64(5)).
		Return(model.User{ID: 5, Name: "Asha", Role: model.RoleAgent}, nil)
	messages.On("Create", mock.Anything, uint64(7), uint64(5), "Asha", "any update?").
		Return(model.Message{ID: 1, ComplaintID: 7, SenderID: 5, SenderName: "Asha", Body: "any update?"}, nil)

	h := handler.NewMessageHandler(policy.Default(), messages, users)
	c, rec := newAuthedCtx(t, http.MethodPost, "/api/messages",
		`{"complaintId":7,"message":"any update?"}`, 5, model.RoleAgent)

	require.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	messages.AssertExpectations(t)
}

// TestMessageListPreservesThreadOrder verifies the handler serves the thread
// exactly as the store orders it, oldest first.
func TestMessageListPreservesThreadOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	thread := []repository.MessageDetail{
		{Message: model.Message{ID: 1, ComplaintID: 7, Body: "first", SentAt: base}},
		{Message: model.Message{ID: 2, ComplaintID: 7, Body: "second", SentAt: base.Add(time.Minute)}},
		{Message: model.Message{ID: 3, ComplaintID: 7, Body: "third", SentAt: base.Add(2 * time.Minute)}},
	}
	messages := new(MockMessageStore)
	messages.On("ListByComplaint", mock.Anything, uint64(7)).Return(thread, nil)

	h := handler.NewMessageHandler(policy.Default(), messages, new(MockUserStore))
	c, rec := newAuthedCtx(t, http.MethodGet, "/api/messages/7", "", 1, model.RoleUser)
	c.SetParamNames("complaintId")
	c.SetParamValues("7")

	require.NoError(t, h.ListByComplaint(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Messages []struct {
			ID   uint64 `json:"id"`
			Body string `json:"message"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 3)
	assert.Equal(t, "first", resp.Messages[0].Body)
	assert.Equal(t, "second", resp.Messages[1].Body)
	assert.Equal(t, "third", resp.Messages[2].Body)
}
