package model

// Complaint and assignment status values. A complaint starts at
// StatusPending; assignments are created at StatusAssigned and the two
// records share the remaining lifecycle.
const (
	StatusPending    = "pending"
	StatusAssigned   = "assigned"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// ValidComplaintStatus reports whether s is an enumerated complaint status.
func ValidComplaintStatus(s string) bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// ValidAssignmentStatus reports whether s is an enumerated assignment
// status. "pending" exists only on complaints that have no assignment yet.
func ValidAssignmentStatus(s string) bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// ValidTransition reports whether a status update from `from` to `to` is
// accepted. The lifecycle is deliberately permissive: any enumerated value
// may follow any other, including moving a closed record back to assigned.
// Every status write in the system goes through this function, so a
// stricter ordering policy only needs to change here.
func ValidTransition(from, to string) bool {
	_ = from
	return ValidAssignmentStatus(to)
}
