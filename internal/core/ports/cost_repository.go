package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// CostFilter narrows cost listings. Empty fields match everything.
type CostFilter struct {
	Category string
	Status   string
}

// CostRepository persists budget line items, owner-scoped like tasks.
type CostRepository interface {
	Create(ctx context.Context, c *domain.Cost) (*domain.Cost, error)
	FindOwned(ctx context.Context, ownerID, id int64) (*domain.Cost, error)
	Update(ctx context.Context, c *domain.Cost) error
	DeleteOwned(ctx context.Context, ownerID, id int64) error
	List(ctx context.Context, ownerID int64, f CostFilter) ([]domain.Cost, error)
}
