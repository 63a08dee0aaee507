package service

import (
	"context"
	"time"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// recentWindow is how far back the attendance report counts registrations.
const recentWindow = 7 * 24 * time.Hour

// AnalyticsService assembles the reporting endpoints from aggregate queries.
type AnalyticsService struct {
	repo ports.AnalyticsRepository
}

func NewAnalyticsService(repo ports.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) Overview(ctx context.Context) (*ports.OverviewReport, error) {
	rsvp, err := s.repo.RSVPCounts(ctx)
	if err != nil {
		return nil, err
	}
	attendance, err := s.repo.ConfirmedAttendance(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.repo.ConfirmedAttendanceByType(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range rsvp {
		total += n
	}

	report := &ports.OverviewReport{}
	report.Guests = ports.GuestOverview{
		Total:           total,
		Confirmed:       rsvp[domain.RSVPConfirmed],
		Pending:         rsvp[domain.RSVPPending],
		Declined:        rsvp[domain.RSVPDeclined],
		TotalAttendance: attendance,
		AttendanceBreakdown: ports.AttendanceSplit{
			CeremonyOnly:  byType[domain.AttendCeremony],
			ReceptionOnly: byType[domain.AttendReception],
			BothEvents:    byType[domain.AttendBoth],
		},
	}
	return report, nil
}

func (s *AnalyticsService) Dietary(ctx context.Context) (*ports.DietaryReport, error) {
	summary, details, err := s.repo.Dietary(ctx)
	if err != nil {
		return nil, err
	}

	report := &ports.DietaryReport{}
	report.Summary.GuestsWithRestrictions = summary.WithRestrictions
	report.Summary.GuestsWithAllergies = summary.WithAllergies
	report.Summary.GuestsWithSpecialRequests = summary.WithSpecialRequests
	report.Details.Restrictions = details.Restrictions
	report.Details.Allergies = details.Allergies
	return report, nil
}

func (s *AnalyticsService) Attendance(ctx context.Context) (*ports.AttendanceReport, error) {
	rsvp, err := s.repo.RSVPCounts(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.repo.ConfirmedAttendanceByType(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentRegistrations(ctx, time.Now().UTC().Add(-recentWindow))
	if err != nil {
		return nil, err
	}

	return &ports.AttendanceReport{
		RSVPBreakdown:       rsvp,
		AttendanceBreakdown: byType,
		RecentRegistrations: recent,
	}, nil
}

func (s *AnalyticsService) Budget(ctx context.Context, ownerID int64) (*ports.BudgetReport, error) {
	byStatus, err := s.repo.CostTotalsByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.repo.CostTotalsByCategory(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.repo.TaskCounts(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	report := &ports.BudgetReport{}
	report.Costs.TotalPlanned = byStatus[domain.CostPlanned]
	report.Costs.TotalPaid = byStatus[domain.CostPaid]
	report.Costs.TotalPending = byStatus[domain.CostPending]
	report.Costs.ByCategory = byCategory
	report.Tasks.Total = tasks.Total
	report.Tasks.Completed = tasks.Completed
	report.Tasks.InProgress = tasks.InProgress
	if tasks.Total > 0 {
		report.Tasks.CompletionRate = float64(tasks.Completed) / float64(tasks.Total) * 100
	}
	return report, nil
}
