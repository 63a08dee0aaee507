package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// PublicRegistrationInput is the anonymous guest registration: profile fields
// only, never credentials, never a token.
type PublicRegistrationInput struct {
	Email     string
	FirstName string
	LastName  string
	Profile   GuestProfileInput
}

// UpdateGuestInput carries an organizer's partial update of a guest record;
// nil fields are left untouched.
type UpdateGuestInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Profile   GuestProfileInput
}

// GuestService implements public registration and the organizer-facing guest
// management. All guests are globally visible to every organizer.
type GuestService interface {
	// RegisterPublic upserts by email. The bool result is true when a new
	// record was created, false when an existing one was updated.
	RegisterPublic(ctx context.Context, in PublicRegistrationInput) (*domain.Guest, bool, error)
	List(ctx context.Context, f GuestFilter) ([]domain.Guest, error)
	Get(ctx context.Context, id int64) (*domain.Guest, error)
	Update(ctx context.Context, id int64, in UpdateGuestInput) (*domain.Guest, error)
	Delete(ctx context.Context, id int64) error
}
