package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// GuestProfileInput carries the optional RSVP/profile fields shared by the
// registration flows. Nil fields leave the existing value untouched on merge
// and take the documented default on create.
type GuestProfileInput struct {
	Phone               *string
	RSVPStatus          *string
	AttendanceType      *string
	NumberOfGuests      *int
	DietaryRestrictions *string
	Allergies           *string
	SpecialRequests     *string
	Address             *string
	Notes               *string
}

// CredentialedRegistrationInput is a guest self-registration with login
// credentials. Username, Password, Email, FirstName and LastName are
// required.
type CredentialedRegistrationInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Profile   GuestProfileInput
}

// GuestRegistrationResult reports the outcome of a credentialed
// registration. Created is false on the merge path, where an existing
// email-matched record was claimed.
type GuestRegistrationResult struct {
	Guest   *domain.Guest
	Token   string
	Created bool
}

// GuestAuthService implements the guest login and the credentialed
// registration reconciler.
type GuestAuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Guest, error)
	Register(ctx context.Context, in CredentialedRegistrationInput) (*GuestRegistrationResult, error)
}
