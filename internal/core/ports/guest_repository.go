package ports

import (
	"context"
	"time"

	"github.com/everafter/planner-api/internal/core/domain"
)

// GuestFilter narrows guest listings. Empty fields match everything.
type GuestFilter struct {
	RSVPStatus     string
	AttendanceType string
}

// CredentialAttachment carries the fields the credentialed-registration merge
// writes onto an existing guest row matched by email. Phone is kept as-is
// when empty.
type CredentialAttachment struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	At           time.Time
}

// GuestRepository persists guest records and their optional credentials.
type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error)
	FindByID(ctx context.Context, id int64) (*domain.Guest, error)
	FindByEmail(ctx context.Context, email string) (*domain.Guest, error)
	FindByUsername(ctx context.Context, username string) (*domain.Guest, error)
	Update(ctx context.Context, g *domain.Guest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f GuestFilter) ([]domain.Guest, error)

	// AttachCredentials atomically claims the guest row matching email,
	// attaching username, password hash and refreshed profile fields in a
	// single transactional unit. Returns domain.ErrGuestNotFound when no row
	// matches and domain.ErrUsernameTaken when the username is already
	// claimed at commit time.
	AttachCredentials(ctx context.Context, email string, attach CredentialAttachment) (*domain.Guest, error)

	// TouchLastAccessed records a successful guest login. Deliberately a
	// separate write from token verification: it is an audit signal, not a
	// side effect of resolution.
	TouchLastAccessed(ctx context.Context, id int64, at time.Time) error
}
