package ports

import "context"

// AttendanceSplit breaks confirmed guests down by attendance type.
type AttendanceSplit struct {
	CeremonyOnly  int `json:"ceremony_only"`
	ReceptionOnly int `json:"reception_only"`
	BothEvents    int `json:"both_events"`
}

// GuestOverview summarizes RSVP state across all guests.
type GuestOverview struct {
	Total               int             `json:"total"`
	Confirmed           int             `json:"confirmed"`
	Pending             int             `json:"pending"`
	Declined            int             `json:"declined"`
	TotalAttendance     int             `json:"total_attendance"`
	AttendanceBreakdown AttendanceSplit `json:"attendance_breakdown"`
}

// OverviewReport is the response of the overview endpoint.
type OverviewReport struct {
	Guests GuestOverview `json:"guests"`
}

// DietaryReport summarizes dietary requirements for catering.
type DietaryReport struct {
	Summary struct {
		GuestsWithRestrictions    int `json:"guests_with_restrictions"`
		GuestsWithAllergies       int `json:"guests_with_allergies"`
		GuestsWithSpecialRequests int `json:"guests_with_special_requests"`
	} `json:"summary"`
	Details struct {
		Restrictions []string `json:"restrictions"`
		Allergies    []string `json:"allergies"`
	} `json:"details"`
}

// AttendanceReport breaks attendance down by raw status values, recognized
// or not.
type AttendanceReport struct {
	RSVPBreakdown       map[string]int `json:"rsvp_breakdown"`
	AttendanceBreakdown map[string]int `json:"attendance_breakdown"`
	RecentRegistrations int            `json:"recent_registrations"`
}

// BudgetReport aggregates one organizer's costs and tasks.
type BudgetReport struct {
	Costs struct {
		TotalPlanned float64            `json:"total_planned"`
		TotalPaid    float64            `json:"total_paid"`
		TotalPending float64            `json:"total_pending"`
		ByCategory   map[string]float64 `json:"by_category"`
	} `json:"costs"`
	Tasks struct {
		Total          int     `json:"total"`
		Completed      int     `json:"completed"`
		InProgress     int     `json:"in_progress"`
		CompletionRate float64 `json:"completion_rate"`
	} `json:"tasks"`
}

// AnalyticsService assembles the reporting endpoints. Guest reports are
// global; the budget report is scoped to the calling organizer.
type AnalyticsService interface {
	Overview(ctx context.Context) (*OverviewReport, error)
	Dietary(ctx context.Context) (*DietaryReport, error)
	Attendance(ctx context.Context) (*AttendanceReport, error)
	Budget(ctx context.Context, ownerID int64) (*BudgetReport, error)
}
