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

// GuestService implements the public registration form and the
// organizer-facing guest management.
type GuestService struct {
	repo   ports.GuestRepository
	logger zerolog.Logger
}

func NewGuestService(repo ports.GuestRepository, logger zerolog.Logger) *GuestService {
	return &GuestService{repo: repo, logger: logger}
}

// RegisterPublic upserts a guest by email. The anonymous path only ever
// touches profile fields; credentials are the reconciler's business.
func (s *GuestService) RegisterPublic(ctx context.Context, in ports.PublicRegistrationInput) (*domain.Guest, bool, error) {
	switch {
	case in.Email == "":
		return nil, false, domain.MissingField("email")
	case in.FirstName == "":
		return nil, false, domain.MissingField("first_name")
	case in.LastName == "":
		return nil, false, domain.MissingField("last_name")
	}

	now := time.Now().UTC()

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err == nil {
		existing.FirstName = in.FirstName
		existing.LastName = in.LastName
		applyProfile(existing, in.Profile)
		existing.UpdatedAt = now
		existing.LastAccessed = &now
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		metrics.GuestRegistrationsTotal.WithLabelValues("public", "merged").Inc()
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrGuestNotFound) {
		return nil, false, err
	}

	created, err := s.repo.Create(ctx, newGuestFromProfile(in.Email, in.FirstName, in.LastName, in.Profile, now))
	if err != nil {
		return nil, false, err
	}

	s.logger.Info().Int64("guest_id", created.ID).Msg("guest registered via public form")
	metrics.GuestRegistrationsTotal.WithLabelValues("public", "created").Inc()
	return created, true, nil
}

func (s *GuestService) List(ctx context.Context, f ports.GuestFilter) ([]domain.Guest, error) {
	return s.repo.List(ctx, f)
}

func (s *GuestService) Get(ctx context.Context, id int64) (*domain.Guest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GuestService) Update(ctx context.Context, id int64, in ports.UpdateGuestInput) (*domain.Guest, error) {
	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		guest.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		guest.LastName = *in.LastName
	}
	if in.Email != nil {
		guest.Email = *in.Email
	}
	applyProfile(guest, in.Profile)
	guest.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *GuestService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
