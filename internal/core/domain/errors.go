package domain

import (
	"errors"
	"fmt"
)

// Authentication failures. ErrInvalidToken and ErrPrincipalNotFound are
// surfaced to callers with one indistinguishable message so a malformed
// token cannot be told apart from a token pointing at a deleted principal.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Not-found failures. Ownership misses map to the same sentinel as genuine
// absence so existence never leaks across organizers.
var (
	ErrOrganizerNotFound = errors.New("organizer not found")
	ErrGuestNotFound     = errors.New("guest not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrCostNotFound      = errors.New("cost not found")
	ErrContentNotFound   = errors.New("content not found")
)

// Uniqueness conflicts.
var (
	ErrEmailTaken      = errors.New("email already in use")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrContentKeyTaken = errors.New("content key already exists")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// MissingField returns a ValidationError for an absent required field.
func MissingField(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

// MalformedDate returns a ValidationError for a date outside YYYY-MM-DD.
func MalformedDate(field string) error {
	return &ValidationError{Field: field, Reason: "must be a date in YYYY-MM-DD format"}
}

// IsConflict reports whether err is one of the uniqueness conflict sentinels.
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrContentKeyTaken)
}
