package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// RegisterOrganizerInput carries an organizer registration request. Name
// defaults to the email local part, Role to "admin".
type RegisterOrganizerInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// UpdateProfileInput carries a partial profile update; nil fields are left
// untouched.
type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

// AuthService implements organizer registration, login and profile
// management.
type AuthService interface {
	Register(ctx context.Context, in RegisterOrganizerInput) (*domain.Organizer, error)
	Login(ctx context.Context, email, password string) (string, *domain.Organizer, error)
	Profile(ctx context.Context, id int64) (*domain.Organizer, error)
	UpdateProfile(ctx context.Context, id int64, in UpdateProfileInput) (*domain.Organizer, error)
}
