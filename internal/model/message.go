package model

import "time"

// Message mirrors the `messages` table. Messages are append-only: there is
// no edit or delete path anywhere in the system. SenderName is snapshotted
// at send time so the thread stays readable if the sender renames later.
type Message struct {
	ID          uint64    `json:"id"`
	ComplaintID uint64    `json:"complaintId"`
	SenderID    uint64    `json:"senderId"`
	SenderName  string    `json:"name"`
	Body        string    `json:"message"`
	SentAt      time.Time `json:"timestamp"`
}
