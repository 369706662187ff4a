package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/complaint-portal/internal/handler"
	"github.com/civicdesk/complaint-portal/internal/model"
	"github.com/civicdesk/complaint-portal/internal/policy"
	"github.com/civicdesk/complaint-portal/internal/repository"
)

// TestComplaintGetByIDForeignCitizen verifies that a citizen requesting
// somebody else's complaint is rejected with 403 even though the row exists.
func TestComplaintGetByIDForeignCitizen(t *testing.T) {
	store := new(MockComplaintStore)
	store.On("GetDetail", mock.Anything, uint64(7)).
		Return(repository.ComplaintDetail{Complaint: model.Complaint{ID: 7, UserID: 2}}, nil)
	h := handler.NewComplaintHandler(policy.Default(), store)

	c, rec := newAuthedCtx(t, http.MethodGet, "/api/complaints/7", "", 1, model.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied")
}

// TestComplaintGetByIDOwnCitizen verifies the owner reads their complaint.
func TestComplaintGetByIDOwnCitizen(t *testing.T) {
	store := new(MockComplaintStore)
	store.On("GetDetail", mock.Anything, uint64(7)).
		Return(repository.ComplaintDetail{Complaint: model.Complaint{ID: 7, UserID: 1}}, nil)
	h := handler.NewComplaintHandler(policy.Default(), store)

	c, rec := newAuthedCtx(t, http.MethodGet, "/api/complaints/7", "", 1, model.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestComplaintListMineAnyRole verifies that every authenticated role may
// list its own complaints; an agent with none filed simply gets an empty
// list, not a 403.
func TestComplaintListMineAnyRole(t *testing.T) {
	for _, role := range []string{model.RoleUser, model.RoleAgent, model.RoleAdmin} {
		store := new(MockComplaintStore)
		store.On("ListByFiler", mock.Anything, uint64(9)).Return([]model.Complaint{}, nil)
		h := handler.NewComplaintHandler(policy.Default(), store)

		c, rec := newAuthedCtx(t, http.MethodGet, "/api/complaints/user", "", 9, role)
		require.NoError(t, h.ListMine(c))
		assert.Equalf(t, http.StatusOK, rec.Code, "role %s", role)

		var resp struct {
			Complaints []model.Complaint `json:"complaints"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Complaints)
		store.AssertCalled(t, "ListByFiler", mock.Anything, uint64(9))
	}
}

// TestComplaintCreateDeniedForAgent verifies that only citizens file
// complaints; the store is never consulted on a deny.
func TestComplaintCreateDeniedForAgent(t *testing.T) {
	store := new(MockComplaintStore)
	h := handler.NewComplaintHandler(policy.Default(), store)

	body := `{"name":"A","address":"B","city":"C","state":"D","pincode":"560001","comment":"E"}`
	c, rec := newAuthedCtx(t, http.MethodPost, "/api/complaints", body, 4, model.RoleAgent)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestComplaintUpdateStatusRejectsUnknownValue verifies that a value outside
// the enumeration is a 400 before any write happens.
func TestComplaintUpdateStatusRejectsUnknownValue(t *testing.T) {
	store := new(MockComplaintStore)
	h := handler.NewComplaintHandler(policy.Default(), store)

	c, rec := newAuthedCtx(t, http.MethodPut, "/api/complaints/3/status", `{"status":"done"}`, 4, model.RoleAgent)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
