// Package policy holds the role/action access matrix. The table is a plain
// value built once at startup and passed into handlers explicitly; there is
// no ambient or mutable policy state. Ownership predicates (a citizen may
// only read their own complaint) need entity data and therefore live with
// the handlers, layered on top of the table decision.
package policy

import "github.com/civicdesk/complaint-portal/internal/model"

// Action names a gated operation. Route middleware handles authentication;
// the table decides whether an authenticated role may perform the action.
type Action string

const (
	CreateComplaint       Action = "complaint:create"
	ReadOwnComplaints     Action = "complaint:read_own"
	ReadAllComplaints     Action = "complaint:read_all"
	UpdateComplaintStatus Action = "complaint:update_status"
	CreateAssignment      Action = "assignment:create"
	ReadOwnAssignments    Action = "assignment:read_own"
	ReadAllAssignments    Action = "assignment:read_all"
	UpdateAssignment      Action = "assignment:update_status"
	UseMessages           Action = "message:use"
	ReadAdminReports      Action = "admin:read_reports"
)

// Table maps role -> action -> allowed. Absent entries deny.
type Table map[string]map[Action]bool

// Default returns the access matrix for the three built-in roles.
func Default() Table {
	return Table{
		model.RoleUser: {
			CreateComplaint:   true,
			ReadOwnComplaints: true,
			UseMessages:       true,
		},
		model.RoleAgent: {
			ReadOwnComplaints:     true,
			UpdateComplaintStatus: true,
			ReadOwnAssignments:    true,
			UpdateAssignment:      true,
			UseMessages:           true,
		},
		model.RoleAdmin: {
			ReadOwnComplaints:     true,
			ReadAllComplaints:     true,
			UpdateComplaintStatus: true,
			CreateAssignment:      true,
			ReadOwnAssignments:    true,
			ReadAllAssignments:    true,
			UpdateAssignment:      true,
			UseMessages:           true,
			ReadAdminReports:      true,
		},
	}
}

// Allow reports whether role may perform action under t. Decisions are
// binary; a deny always surfaces to the caller as 403, never as a
// filtered result.
func Allow(t Table, role string, action Action) bool {
	return t[role][action]
}
