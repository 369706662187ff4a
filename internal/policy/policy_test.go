package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civicdesk/complaint-portal/internal/model"
	"github.com/civicdesk/complaint-portal/internal/policy"
)

// TestDefaultTableMatrix verifies the full role/action access matrix.
func TestDefaultTableMatrix(t *testing.T) {
	table := policy.Default()

	cases := []struct {
		role    string
		action  policy.Action
		allowed bool
	}{
		{model.RoleUser, policy.CreateComplaint, true},
		{model.RoleAgent, policy.CreateComplaint, false},
		{model.RoleAdmin, policy.CreateComplaint, false},

		{model.RoleUser, policy.ReadOwnComplaints, true},
		{model.RoleAgent, policy.ReadOwnComplaints, true},
		{model.RoleAdmin, policy.ReadOwnComplaints, true},

		{model.RoleUser, policy.ReadAllComplaints, false},
		{model.RoleAgent, policy.ReadAllComplaints, false},
		{model.RoleAdmin, policy.ReadAllComplaints, true},

		{model.RoleUser, policy.UpdateComplaintStatus, false},
		{model.RoleAgent, policy.UpdateComplaintStatus, true},
		{model.RoleAdmin, policy.UpdateComplaintStatus, true},

		{model.RoleUser, policy.CreateAssignment, false},
		{model.RoleAgent, policy.CreateAssignment, false},
		{model.RoleAdmin, policy.CreateAssignment, true},

		{model.RoleUser, policy.ReadOwnAssignments, false},
		{model.RoleAgent, policy.ReadOwnAssignments, true},
		{model.RoleAdmin, policy.ReadOwnAssignments, true},

		{model.RoleUser, policy.ReadAllAssignments, false},
		{model.RoleAgent, policy.ReadAllAssignments, false},
		{model.RoleAdmin, policy.ReadAllAssignments, true},

		{model.RoleUser, policy.UpdateAssignment, false},
		{model.RoleAgent, policy.UpdateAssignment, true},
		{model.RoleAdmin, policy.UpdateAssignment, true},

		{model.RoleUser, policy.UseMessages, true},
		{model.RoleAgent, policy.UseMessages, true},
		{model.RoleAdmin, policy.UseMessages, true},

		{model.RoleUser, policy.ReadAdminReports, false},
		{model.RoleAgent, policy.ReadAdminReports, false},
		{model.RoleAdmin, policy.ReadAdminReports, true},
	}

	for _, tc := range cases {
		got := policy.Allow(table, tc.role, tc.action)
		assert.Equalf(t, tc.allowed, got, "role=%s action=%s", tc.role, tc.action)
	}
}

// TestAllowUnknownRoleOrAction verifies that absent entries deny.
func TestAllowUnknownRoleOrAction(t *testing.T) {
	table := policy.Default()

	assert.False(t, policy.Allow(table, "superuser", policy.ReadAllComplaints))
	assert.False(t, policy.Allow(table, "", policy.UseMessages))
	assert.False(t, policy.Allow(table, model.RoleAdmin, policy.Action("complaint:delete")))
}

// TestAllowEmptyTable verifies a zero-value table denies everything.
func TestAllowEmptyTable(t *testing.T) {
	assert.False(t, policy.Allow(policy.Table{}, model.RoleAdmin, policy.ReadAllComplaints))
	assert.False(t, policy.Allow(nil, model.RoleUser, policy.CreateComplaint))
}
