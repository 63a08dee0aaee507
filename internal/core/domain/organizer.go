package domain

import "time"

// RoleAdmin is the only role the current deployment provisions; the field is
// an open string to leave room for future roles.
const RoleAdmin = "admin"

// Organizer is the admin principal managing the wedding's logistics.
type Organizer struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
