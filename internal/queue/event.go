// Package queue defines the payloads exchanged over the message broker and
// the background consumer that turns them into an audit log.
package queue

// Event types carried on the complaint.events queue.
const (
	EventComplaintAssigned = "complaint.assigned"
	EventStatusChanged     = "complaint.status_changed"
)

// ComplaintEvent is published after an assignment is created or an
// assignment status update propagates to its complaint. It carries enough
// context for downstream consumers to log or notify without querying the
// primary database.
type ComplaintEvent struct {
	Type         string `json:"type"`
	AssignmentID uint64 `json:"assignment_id"`
	ComplaintID  uint64 `json:"complaint_id"`
	AgentID      uint64 `json:"agent_id"`
	AgentName    string `json:"agent_name"`
	Status       string `json:"status"`
	ActorID      uint64 `json:"actor_id"`
	OccurredAt   string `json:"occurred_at"`
}
