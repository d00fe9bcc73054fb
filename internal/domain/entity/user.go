// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns tasks and sessions.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // Normalized (trimmed, lower-cased) login identifier. Unique.
	PasswordHash string    // bcrypt hash of the password. Never leaves the service.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Identity is the authenticated principal carried by both token kinds.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Identity returns the token payload for the user.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Email: u.Email}
}
