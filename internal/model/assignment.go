package model

import "time"

// Assignment mirrors the `assignments` table. At most one assignment exists
// per complaint, enforced by a unique key on complaint_id. AgentName is a
// denormalized snapshot taken when the assignment is created.
type Assignment struct {
	ID          uint64    `json:"id"`
	ComplaintID uint64    `json:"complaintId"`
	AgentID     uint64    `json:"agentId"`
	AgentName   string    `json:"agentName"`
	Status      string    `json:"status"`
	AssignedAt  time.Time `json:"assignedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
