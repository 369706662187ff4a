package model

import "time"

// Role values stored in users.user_type. The wire values follow the
// frontend contract: regular citizens are "user".
const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// ValidRole reports whether s is one of the known role values.
func ValidRole(s string) bool {
	switch s {
	case RoleUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// User mirrors the `users` table. PasswordHash is never serialized;
// handlers expose users through dedicated response types.
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Role         string    `json:"userType"`
	CreatedAt    time.Time `json:"createdAt"`
}
