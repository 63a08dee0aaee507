package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// TaskFilter narrows task listings. Empty fields match everything.
type TaskFilter struct {
	Status   string
	Priority string
	Category string
}

// TaskRepository persists tasks. Every read and write is scoped to the owning
// organizer; a row owned by someone else behaves exactly like an absent row.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindOwned(ctx context.Context, ownerID, id int64) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	DeleteOwned(ctx context.Context, ownerID, id int64) error
	List(ctx context.Context, ownerID int64, f TaskFilter) ([]domain.Task, error)
}
