package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// ContentRepository persists publishable content blocks.
type ContentRepository interface {
	Create(ctx context.Context, c *domain.Content) (*domain.Content, error)
	FindByID(ctx context.Context, id int64) (*domain.Content, error)
	FindByKey(ctx context.Context, key string) (*domain.Content, error)
	Update(ctx context.Context, c *domain.Content) error
	Delete(ctx context.Context, id int64) error

	// ListPublic returns is_public rows ordered by "order" ascending.
	ListPublic(ctx context.Context) ([]domain.Content, error)
	// ListAll returns every row in the same order, public or not.
	ListAll(ctx context.Context) ([]domain.Content, error)
}

// ContentCache is a best-effort cache for the public listing. Misses and
// cache failures fall through to the repository.
type ContentCache interface {
	GetPublic(ctx context.Context) ([]domain.Content, bool)
	SetPublic(ctx context.Context, items []domain.Content)
	Invalidate(ctx context.Context)
}
