package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Name         string    `db:"name"`          // Display name
	Email        string    `db:"email"`         // Unique, stored lower-cased
	PasswordHash string    `db:"password_hash"` // bcrypt hash
	Bio          string    `db:"bio"`
	Location     string    `db:"location"`
	CreatedAt    time.Time `db:"created_at"` // Set once on registration
}

// User is the public view of a user, safe to return to clients.
// The password hash never leaves the service layer.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public converts a database record into its client-facing view.
func (u *UserDB) Public() *User {
	return &User{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
	}
}
