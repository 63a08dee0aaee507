package ports

import (
	"context"

	"github.com/everafter/planner-api/internal/core/domain"
)

// CreateContentInput carries a new content block. Key and Body are required;
// IsPublic defaults to true when nil.
type CreateContentInput struct {
	Key         string
	Title       string
	Body        string
	ContentType string
	IsPublic    *bool
	Order       int
}

// UpdateContentInput carries a partial content update; nil fields are
// untouched. Changing Key re-checks key uniqueness.
type UpdateContentInput struct {
	Key         *string
	Title       *string
	Body        *string
	ContentType *string
	IsPublic    *bool
	Order       *int
}

// ContentService implements the public/admin content split. ListAll and the
// admin view of GetByKey take the resolved organizer so the authorization
// decision is a single explicit check, not an implicit fallthrough.
type ContentService interface {
	ListPublic(ctx context.Context) ([]domain.Content, error)
	ListAll(ctx context.Context, organizer *domain.Organizer) ([]domain.Content, error)
	GetByKey(ctx context.Context, key string, organizer *domain.Organizer) (*domain.Content, error)
	Create(ctx context.Context, in CreateContentInput) (*domain.Content, error)
	Update(ctx context.Context, id int64, in UpdateContentInput) (*domain.Content, error)
	Delete(ctx context.Context, id int64) error
}
