package repository

import (
	"context"
	"database/sql"

	"github.com/civicdesk/complaint-portal/internal/model"
)

type ComplaintRepo struct{ DB *sql.DB }

func NewComplaintRepo(db *sql.DB) *ComplaintRepo { return &ComplaintRepo{DB: db} }

const complaintCols = "id,user_id,name,address,city,state,pincode,comment,photo,status,created_at,updated_at"

// Filer is the subset of the filer's account attached to joined complaint
// listings, mirroring what admin and detail views need.
type Filer struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ComplaintDetail is a complaint with its filer resolved.
type ComplaintDetail struct {
	model.Complaint
	Filer Filer `json:"filedBy"`
}

func scanComplaint(sc interface{ Scan(...any) error }, c *model.Complaint) error {
	var photo sql.NullString
	err := sc.Scan(&c.ID, &c.UserID, &c.Name, &c.Address, &c.City, &c.State,
		&c.Pincode, &c.Comment, &photo, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}
	if photo.Valid {
		p := photo.String
		c.Photo = &p
	}
	return nil
}

// Create inserts a complaint with status pending and returns the stored row.
func (r *ComplaintRepo) Create(ctx context.Context, c model.Complaint) (model.Complaint, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO complaints (user_id, name, address, city, state, pincode, comment, photo, status)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		c.UserID, c.Name, c.Address, c.City, c.State, c.Pincode, c.Comment, c.Photo, model.StatusPending)
	if err != nil {
		return model.Complaint{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Complaint{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a complaint by id.
func (r *ComplaintRepo) GetByID(ctx context.Context, id uint64) (model.Complaint, error) {
	var c model.Complaint
	err := scanComplaint(r.DB.QueryRowContext(ctx,
		"SELECT "+complaintCols+" FROM complaints WHERE id=? LIMIT 1", id), &c)
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// GetDetail fetches a complaint with its filer joined.
func (r *ComplaintRepo) GetDetail(ctx context.Context, id uint64) (ComplaintDetail, error) {
	var d ComplaintDetail
	var photo sql.NullString
	err := r.DB.QueryRowContext(ctx,
		`SELECT c.id, c.user_id, c.name, c.address, c.city, c.state, c.pincode, c.comment,
		        c.photo, c.status, c.created_at, c.updated_at,
		        u.id, u.name, u.email, u.phone
		 FROM complaints c JOIN users u ON u.id = c.user_id
		 WHERE c.id=? LIMIT 1`, id).Scan(
		&d.ID, &d.UserID, &d.Name, &d.Address, &d.City, &d.State, &d.Pincode, &d.Comment,
		&photo, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&d.Filer.ID, &d.Filer.Name, &d.Filer.Email, &d.Filer.Phone)
	if err == sql.ErrNoRows {
		return d, ErrNotFound
	}
	if err != nil {
		return d, err
	}
	if photo.Valid {
		p := photo.String
		d.Photo = &p
	}
	return d, nil
}

// ListByFiler returns a filer's complaints regardless of status, newest first.
func (r *ComplaintRepo) ListByFiler(ctx context.Context, filerID uint64) ([]model.Complaint, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+complaintCols+" FROM complaints WHERE user_id=? ORDER BY created_at DESC", filerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Complaint, 0)
	for rows.Next() {
		var c model.Complaint
		if err := scanComplaint(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListAll returns every complaint with its filer joined, newest first.
func (r *ComplaintRepo) ListAll(ctx context.Context) ([]ComplaintDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT c.id, c.user_id, c.name, c.address, c.city, c.state, c.pincode, c.comment,
		        c.photo, c.status, c.created_at, c.updated_at,
		        u.id, u.name, u.email, u.phone
		 FROM complaints c JOIN users u ON u.id = c.user_id
		 ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ComplaintDetail, 0)
	for rows.Next() {
		var d ComplaintDetail
		var photo sql.NullString
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Name, &d.Address, &d.City, &d.State, &d.Pincode, &d.Comment,
			&photo, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.Filer.ID, &d.Filer.Name, &d.Filer.Email, &d.Filer.Phone); err != nil {
			return nil, err
		}
		if photo.Valid {
			p := photo.String
			d.Photo = &p
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status and refreshes updated_at, returning the
// updated row. This is the direct complaint-status route: it does not
// touch any assignment record.
func (r *ComplaintRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Complaint, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE complaints SET status=?, updated_at=NOW() WHERE id=?", status, id)
	if err != nil {
		return model.Complaint{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Complaint{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Count returns the total number of complaints.
func (r *ComplaintRepo) Count(ctx context.Context) (uint64, error) {
	var n uint64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM complaints").Scan(&n)
	return n, err
}

// CountByStatus returns the number of complaints with the given status.
func (r *ComplaintRepo) CountByStatus(ctx context.Context, status string) (uint64, error) {
	var n uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM complaints WHERE status=?", status).Scan(&n)
	return n, err
}
