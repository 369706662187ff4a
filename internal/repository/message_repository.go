package repository

import (
	"context"
	"database/sql"

	"github.com/civicdesk/complaint-portal/internal/model"
)

type MessageRepo struct{ DB *sql.DB }

func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{DB: db} }

// MessageDetail is a message with the sender's current role joined, for
// rendering the conversation thread.
type MessageDetail struct {
	model.Message
	SenderRole string `json:"senderType"`
}

// Create appends a message to a complaint's thread and returns the stored
// row. There is no update or delete counterpart.
func (r *MessageRepo) Create(ctx context.Context, complaintID, senderID uint64, senderName, body string) (model.Message, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO messages (complaint_id, sender_id, sender_name, body) VALUES (?,?,?,?)",
		complaintID, senderID, senderName, body)
	if err != nil {
		return model.Message{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Message{}, err
	}
	var m model.Message
	err = r.DB.QueryRowContext(ctx,
		"SELECT id,complaint_id,sender_id,sender_name,body,sent_at FROM messages WHERE id=? LIMIT 1",
		id).Scan(&m.ID, &m.ComplaintID, &m.SenderID, &m.SenderName, &m.Body, &m.SentAt)
	return m, err
}

// ListByComplaint returns a complaint's messages in ascending send order,
// with each sender's role joined. The id tiebreak keeps messages sharing a
// timestamp in insertion order.
func (r *MessageRepo) ListByComplaint(ctx context.Context, complaintID uint64) ([]MessageDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT m.id, m.complaint_id, m.sender_id, m.sender_name, m.body, m.sent_at, u.user_type
		 FROM messages m JOIN users u ON u.id = m.sender_id
		 WHERE m.complaint_id=? ORDER BY m.sent_at ASC, m.id ASC`, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MessageDetail, 0)
	for rows.Next() {
		var d MessageDetail
		if err := rows.Scan(&d.ID, &d.ComplaintID, &d.SenderID, &d.SenderName, &d.Body, &d.SentAt, &d.SenderRole); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
