package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everafter/planner-api/internal/core/ports"
)

// AnalyticsRepository runs the aggregate queries behind the reporting
// endpoints. Guest aggregates span all rows; cost and task aggregates filter
// by the owning organizer.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) RSVPCounts(ctx context.Context) (map[string]int, error) {
	return r.countGroups(ctx, `SELECT rsvp_status, COUNT(*) FROM guests GROUP BY rsvp_status`)
}

func (r *AnalyticsRepository) ConfirmedAttendance(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(number_of_guests), 0)
		FROM guests WHERE rsvp_status = 'confirmed'`).Scan(&n)
	return n, err
}

func (r *AnalyticsRepository) ConfirmedAttendanceByType(ctx context.Context) (map[string]int, error) {
	return r.countGroups(ctx, `
		SELECT attendance_type, COUNT(*)
		FROM guests
		WHERE rsvp_status = 'confirmed' AND attendance_type <> ''
		GROUP BY attendance_type`)
}

func (r *AnalyticsRepository) RecentRegistrations(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM guests WHERE registered_at >= $1`, since).Scan(&n)
	return n, err
}

func (r *AnalyticsRepository) Dietary(ctx context.Context) (ports.DietarySummary, ports.DietaryDetails, error) {
	var summary ports.DietarySummary
	var details ports.DietaryDetails

	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE dietary_restrictions <> ''),
			COUNT(*) FILTER (WHERE allergies <> ''),
			COUNT(*) FILTER (WHERE special_requests <> '')
		FROM guests`).Scan(
		&summary.WithRestrictions, &summary.WithAllergies, &summary.WithSpecialRequests)
	if err != nil {
		return summary, details, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT dietary_restrictions, allergies
		FROM guests WHERE dietary_restrictions <> ''`)
	if err != nil {
		return summary, details, err
	}
	defer rows.Close()

	for rows.Next() {
		var restrictions, allergies string
		if err := rows.Scan(&restrictions, &allergies); err != nil {
			return summary, details, err
		}
		details.Restrictions = append(details.Restrictions, restrictions)
		if allergies != "" {
			details.Allergies = append(details.Allergies, allergies)
		}
	}
	return summary, details, rows.Err()
}

func (r *AnalyticsRepository) CostTotalsByStatus(ctx context.Context, ownerID int64) (map[string]float64, error) {
	return r.sumGroups(ctx, `
		SELECT status, COALESCE(SUM(amount), 0)
		FROM costs WHERE user_id = $1 GROUP BY status`, ownerID)
}

func (r *AnalyticsRepository) CostTotalsByCategory(ctx context.Context, ownerID int64) (map[string]float64, error) {
	return r.sumGroups(ctx, `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM costs WHERE user_id = $1 GROUP BY category`, ownerID)
}

func (r *AnalyticsRepository) TaskCounts(ctx context.Context, ownerID int64) (ports.TaskCounts, error) {
	var counts ports.TaskCounts
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'in_progress')
		FROM tasks WHERE user_id = $1`, ownerID).Scan(
		&counts.Total, &counts.Completed, &counts.InProgress)
	return counts, err
}

func (r *AnalyticsRepository) countGroups(ctx context.Context, query string, args ...any) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		result[key] = n
	}
	return result, rows.Err()
}

func (r *AnalyticsRepository) sumGroups(ctx context.Context, query string, args ...any) (map[string]float64, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]float64)
	for rows.Next() {
		var key string
		var sum float64
		if err := rows.Scan(&key, &sum); err != nil {
			return nil, err
		}
		result[key] = sum
	}
	return result, rows.Err()
}
