package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// CreateTaskInput carries a new task. DueDate is an ISO calendar date
// (YYYY-MM-DD) or empty for none.
type CreateTaskInput struct {
	Title         string
	Description   string
	Priority      string
	Status        string
	Category      string
	AssignedTo    string
	DueDate       string
	EstimatedCost *float64
	ActualCost    *float64
}

// UpdateTaskInput carries a partial task update; nil fields are untouched.
// A non-nil empty DueDate clears the date.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	Priority      *string
	Status        *string
	Category      *string
	AssignedTo    *string
	DueDate       *string
	EstimatedCost *float64
	ActualCost    *float64
}

// TaskService implements owner-scoped task management.
type TaskService interface {
	Create(ctx context.Context, ownerID int64, in CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, ownerID int64, f TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, ownerID, taskID int64, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID int64) error
}
