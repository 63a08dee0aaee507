package domain

import "time"

// RSVP statuses. Unknown strings are tolerated by storage but only these are
// recognized by analytics.
const (
	RSVPPending   = "pending"
	RSVPConfirmed = "confirmed"
	RSVPDeclined  = "declined"
)

// Attendance types. Empty means the guest has not chosen yet.
const (
	AttendCeremony  = "ceremony"
	AttendReception = "reception"
	AttendBoth      = "both"
)

// Guest is a guest record, optionally upgraded with login credentials.
// Invariant: Username and PasswordHash are either both set (credentialed)
// or both empty (anonymous, profile-only).
type Guest struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`

	Username     string `json:"username,omitempty"`
	PasswordHash string `json:"-"`

	RSVPStatus     string `json:"rsvp_status"`
	AttendanceType string `json:"attendance_type,omitempty"`
	NumberOfGuests int    `json:"number_of_guests"`

	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	Allergies           string `json:"allergies,omitempty"`
	SpecialRequests     string `json:"special_requests,omitempty"`
	Address             string `json:"address,omitempty"`
	Notes               string `json:"notes,omitempty"`

	RegisteredAt time.Time  `json:"registered_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
}

// Credentialed reports whether the guest can log in.
func (g *Guest) Credentialed() bool {
	return g.Username != "" && g.PasswordHash != ""
}
