package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/civicdesk/complaint-portal/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "id,name,email,password_hash,phone,user_type,created_at"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, ErrNotFound
	}
	return u, err
}

// Create inserts a user and returns its ID. The email is normalized to
// lower case; a duplicate maps to ErrEmailExists via MySQL error 1062.
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash, phone, role string) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, phone, user_type) VALUES (?,?,?,?,?)",
		name, email, passwordHash, phone, role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id=? LIMIT 1", id))
}

// UpdateProfile sets name and phone and returns the updated user. The role
// is immutable after creation: no statement in this repository touches
// user_type on existing rows.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, name, phone string) (model.User, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=?, phone=? WHERE id=?", name, phone, id)
	if err != nil {
		return model.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Distinguish "missing row" from "no change" before reporting 404.
		var exists bool
		if err := r.DB.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM users WHERE id=?)", id).Scan(&exists); err != nil {
			return model.User{}, err
		}
		if !exists {
			return model.User{}, ErrNotFound
		}
	}
	return r.GetByID(ctx, id)
}

// ListByRole returns users with the given role, newest first.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userCols+" FROM users WHERE user_type=? ORDER BY created_at DESC", role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountByRole returns the number of users with the given role.
func (r *UserRepo) CountByRole(ctx context.Context, role string) (uint64, error) {
	var n uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE user_type=?", role).Scan(&n)
	return n, err
}
