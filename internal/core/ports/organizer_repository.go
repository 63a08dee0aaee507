package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// OrganizerRepository persists organizer principals.
type OrganizerRepository interface {
	Create(ctx context.Context, o *domain.Organizer) (*domain.Organizer, error)
	FindByID(ctx context.Context, id int64) (*domain.Organizer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Organizer, error)
	Update(ctx context.Context, o *domain.Organizer) error
}
