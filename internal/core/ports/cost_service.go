package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// CreateCostInput carries a new budget line item. Amount is a pointer so a
// missing amount can be told apart from zero. PaymentDate is an ISO calendar
// date (YYYY-MM-DD) or empty for none.
type CreateCostInput struct {
	Name        string
	Description string
	Category    string
	Amount      *float64
	Status      string
	PaymentDate string
	Vendor      string
	Notes       string
}

// UpdateCostInput carries a partial cost update; nil fields are untouched.
// A non-nil empty PaymentDate clears the date.
type UpdateCostInput struct {
	Name        *string
	Description *string
	Category    *string
	Amount      *float64
	Status      *string
	PaymentDate *string
	Vendor      *string
	Notes       *string
}

// CostService implements owner-scoped budget management.
type CostService interface {
	Create(ctx context.Context, ownerID int64, in CreateCostInput) (*domain.Cost, error)
	List(ctx context.Context, ownerID int64, f CostFilter) ([]domain.Cost, error)
	Update(ctx context.Context, ownerID, costID int64, in UpdateCostInput) (*domain.Cost, error)
	Delete(ctx context.Context, ownerID, costID int64) error
}
