package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/civicdesk/complaint-portal/internal/model"
)

type AssignmentRepo struct{ DB *sql.DB }

func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{DB: db} }

const assignmentCols = "id,complaint_id,agent_id,agent_name,status,assigned_at,updated_at"

// AssignmentDetail is an assignment resolved with its complaint and that
// complaint's filer, as served by the agent and admin listing endpoints.
type AssignmentDetail struct {
	model.Assignment
	AgentEmail string          `json:"agentEmail"`
	Complaint  ComplaintDetail `json:"complaint"`
}

func (r *AssignmentRepo) getTx(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, id uint64) (model.Assignment, error) {
	var a model.Assignment
	err := q.QueryRowContext(ctx,
		"SELECT "+assignmentCols+" FROM assignments WHERE id=? LIMIT 1", id).Scan(
		&a.ID, &a.ComplaintID, &a.AgentID, &a.AgentName, &a.Status, &a.AssignedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return a, ErrNotFound
	}
	return a, err
}

// GetByID fetches an assignment by id.
func (r *AssignmentRepo) GetByID(ctx context.Context, id uint64) (model.Assignment, error) {
	return r.getTx(ctx, r.DB, id)
}

// Assign creates the assignment and flips the complaint to `assigned` in a
// single transaction, so the two records can never diverge on this path.
// The unique key on complaint_id turns a concurrent duplicate into
// ErrAlreadyAssigned instead of a second row.
func (r *AssignmentRepo) Assign(ctx context.Context, complaintID, agentID uint64, agentName string) (model.Assignment, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Assignment{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO assignments (complaint_id, agent_id, agent_name, status) VALUES (?,?,?,?)",
		complaintID, agentID, agentName, model.StatusAssigned)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Assignment{}, ErrAlreadyAssigned
		}
		return model.Assignment{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Assignment{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE complaints SET status=?, updated_at=NOW() WHERE id=?",
		model.StatusAssigned, complaintID); err != nil {
		return model.Assignment{}, err
	}
	a, err := r.getTx(ctx, tx, uint64(id))
	if err != nil {
		return model.Assignment{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Assignment{}, err
	}
	committed = true
	return a, nil
}

// UpdateStatus sets the assignment status and propagates the same value to
// the linked complaint inside one transaction. The assignment is the
// source of truth for the pair on this path.
func (r *AssignmentRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Assignment, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Assignment{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	a, err := r.getTx(ctx, tx, id)
	if err != nil {
		return model.Assignment{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE assignments SET status=?, updated_at=NOW() WHERE id=?", status, id); err != nil {
		return model.Assignment{}, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE complaints SET status=?, updated_at=NOW() WHERE id=?", status, a.ComplaintID); err != nil {
		return model.Assignment{}, err
	}
	a, err = r.getTx(ctx, tx, id)
	if err != nil {
		return model.Assignment{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Assignment{}, err
	}
	committed = true
	return a, nil
}

const assignmentDetailQuery = `
SELECT a.id, a.complaint_id, a.agent_id, a.agent_name, a.status, a.assigned_at, a.updated_at,
       ag.email,
       c.id, c.user_id, c.name, c.address, c.city, c.state, c.pincode, c.comment,
       c.photo, c.status, c.created_at, c.updated_at,
       u.id, u.name, u.email, u.phone
FROM assignments a
JOIN users ag ON ag.id = a.agent_id
JOIN complaints c ON c.id = a.complaint_id
JOIN users u ON u.id = c.user_id`

func (r *AssignmentRepo) listDetails(ctx context.Context, query string, args ...any) ([]AssignmentDetail, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AssignmentDetail, 0)
	for rows.Next() {
		var d AssignmentDetail
		var photo sql.NullString
		if err := rows.Scan(
			&d.ID, &d.ComplaintID, &d.AgentID, &d.AgentName, &d.Status, &d.AssignedAt, &d.UpdatedAt,
			&d.AgentEmail,
			&d.Complaint.ID, &d.Complaint.UserID, &d.Complaint.Name, &d.Complaint.Address,
			&d.Complaint.City, &d.Complaint.State, &d.Complaint.Pincode, &d.Complaint.Comment,
			&photo, &d.Complaint.Status, &d.Complaint.CreatedAt, &d.Complaint.UpdatedAt,
			&d.Complaint.Filer.ID, &d.Complaint.Filer.Name, &d.Complaint.Filer.Email, &d.Complaint.Filer.Phone); err != nil {
			return nil, err
		}
		if photo.Valid {
			p := photo.String
			d.Complaint.Photo = &p
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListByAgent returns an agent's assignments fully resolved, newest first.
func (r *AssignmentRepo) ListByAgent(ctx context.Context, agentID uint64) ([]AssignmentDetail, error) {
	return r.listDetails(ctx,
		assignmentDetailQuery+" WHERE a.agent_id=? ORDER BY a.assigned_at DESC", agentID)
}

// ListAll returns every assignment fully resolved, newest first.
func (r *AssignmentRepo) ListAll(ctx context.Context) ([]AssignmentDetail, error) {
	return r.listDetails(ctx, assignmentDetailQuery+" ORDER BY a.assigned_at DESC")
}
