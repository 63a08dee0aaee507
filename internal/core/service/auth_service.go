package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/everafter/planner-api/internal/api/metrics"
	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// AuthService implements organizer registration, login and profile updates.
type AuthService struct {
	repo   ports.OrganizerRepository
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.OrganizerRepository, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterOrganizerInput) (*domain.Organizer, error) {
	if in.Email == "" {
		return nil, domain.MissingField("email")
	}
	if in.Password == "" {
		return nil, domain.MissingField("password")
	}

	// Fast-path uniqueness check; the unique index is the authoritative
	// guard and a commit-time collision also maps to ErrEmailTaken.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrOrganizerNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := in.Name
	if name == "" {
		name, _, _ = strings.Cut(in.Email, "@")
	}
	role := in.Role
	if role == "" {
		role = domain.RoleAdmin
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Organizer{
		Email:        in.Email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("organizer_id", created.ID).Str("email", created.Email).Msg("organizer registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Organizer, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	org, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizerNotFound) {
			metrics.LoginsTotal.WithLabelValues("organizer", "failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(org.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("organizer", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.OrganizerRef(org.ID))
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("organizer", "success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("organizer").Inc()
	return token, org, nil
}

func (s *AuthService) Profile(ctx context.Context, id int64) (*domain.Organizer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthService) UpdateProfile(ctx context.Context, id int64, in ports.UpdateProfileInput) (*domain.Organizer, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		org.Name = *in.Name
	}
	if in.Email != nil && *in.Email != org.Email {
		existing, err := s.repo.FindByEmail(ctx, *in.Email)
		switch {
		case err == nil && existing.ID != id:
			return nil, domain.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrOrganizerNotFound):
			return nil, err
		}
		org.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		org.PasswordHash = string(hash)
	}

	org.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}
