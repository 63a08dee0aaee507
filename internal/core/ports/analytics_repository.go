package ports

import (
	"context"
	"time"
)

// TaskCounts aggregates an organizer's tasks by recognized status.
// Unrecognized statuses contribute to Total only.
type TaskCounts struct {
	Total      int
	Completed  int
	InProgress int
}

// DietarySummary counts guests with non-empty dietary fields.
type DietarySummary struct {
	WithRestrictions    int
	WithAllergies       int
	WithSpecialRequests int
}

// DietaryDetails lists the raw free-text entries for caterer review.
type DietaryDetails struct {
	Restrictions []string
	Allergies    []string
}

// AnalyticsRepository runs the aggregate queries behind the reporting
// endpoints. Guest aggregates are global; cost and task aggregates are scoped
// to the owning organizer.
type AnalyticsRepository interface {
	RSVPCounts(ctx context.Context) (map[string]int, error)
	ConfirmedAttendance(ctx context.Context) (int, error)
	ConfirmedAttendanceByType(ctx context.Context) (map[string]int, error)
	RecentRegistrations(ctx context.Context, since time.Time) (int, error)
	Dietary(ctx context.Context) (DietarySummary, DietaryDetails, error)

	CostTotalsByStatus(ctx context.Context, ownerID int64) (map[string]float64, error)
	CostTotalsByCategory(ctx context.Context, ownerID int64) (map[string]float64, error)
	TaskCounts(ctx context.Context, ownerID int64) (TaskCounts, error)
}
