package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/everafter/planner-api/internal/api/metrics"
	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// ContentService implements the public/private content split. The admin view
// requires a resolved organizer passed explicitly: the authorization decision
// is this one check, nothing implicit.
type ContentService struct {
	repo   ports.ContentRepository
	cache  ports.ContentCache
	logger zerolog.Logger
}

// NewContentService builds a ContentService. cache may be nil, in which case
// every public listing hits the repository.
func NewContentService(repo ports.ContentRepository, cache ports.ContentCache, logger zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, cache: cache, logger: logger}
}

func (s *ContentService) ListPublic(ctx context.Context) ([]domain.Content, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetPublic(ctx); ok {
			metrics.ContentCacheTotal.WithLabelValues("hit").Inc()
			return items, nil
		}
		metrics.ContentCacheTotal.WithLabelValues("miss").Inc()
	}

	items, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetPublic(ctx, items)
	}
	return items, nil
}

func (s *ContentService) ListAll(ctx context.Context, organizer *domain.Organizer) ([]domain.Content, error) {
	if organizer == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ListAll(ctx)
}

// GetByKey returns the content block for key. Non-public rows require an
// organizer; anonymous callers get an authorization failure, matching the
// listing behavior.
func (s *ContentService) GetByKey(ctx context.Context, key string, organizer *domain.Organizer) (*domain.Content, error) {
	content, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if !content.IsPublic && organizer == nil {
		return nil, domain.ErrUnauthorized
	}
	return content, nil
}

func (s *ContentService) Create(ctx context.Context, in ports.CreateContentInput) (*domain.Content, error) {
	if in.Key == "" {
		return nil, domain.MissingField("key")
	}
	if in.Body == "" {
		return nil, domain.MissingField("content")
	}

	if _, err := s.repo.FindByKey(ctx, in.Key); err == nil {
		return nil, domain.ErrContentKeyTaken
	} else if !errors.Is(err, domain.ErrContentNotFound) {
		return nil, err
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = domain.ContentTypeText
	}
	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Content{
		Key:         in.Key,
		Title:       in.Title,
		Body:        in.Body,
		ContentType: contentType,
		IsPublic:    isPublic,
		Order:       in.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("key", created.Key).Bool("is_public", created.IsPublic).Msg("content created")
	return created, nil
}

func (s *ContentService) Update(ctx context.Context, id int64, in ports.UpdateContentInput) (*domain.Content, error) {
	content, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Key != nil && *in.Key != content.Key {
		existing, err := s.repo.FindByKey(ctx, *in.Key)
		switch {
		case err == nil && existing.ID != id:
			return nil, domain.ErrContentKeyTaken
		case err != nil && !errors.Is(err, domain.ErrContentNotFound):
			return nil, err
		}
		content.Key = *in.Key
	}
	if in.Title != nil {
		content.Title = *in.Title
	}
	if in.Body != nil {
		content.Body = *in.Body
	}
	if in.ContentType != nil {
		content.ContentType = *in.ContentType
	}
	if in.IsPublic != nil {
		content.IsPublic = *in.IsPublic
	}
	if in.Order != nil {
		content.Order = *in.Order
	}

	content.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, content); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return content, nil
}

func (s *ContentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ContentService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
