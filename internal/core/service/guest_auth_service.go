package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/everafter/planner-api/internal/api/metrics"
	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// GuestAuthService implements guest login and the credentialed registration
// reconciler: an incoming username/password registration either claims an
// existing email-matched guest record or creates a new one.
type GuestAuthService struct {
	repo   ports.GuestRepository
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewGuestAuthService(repo ports.GuestRepository, tokens ports.TokenIssuer, logger zerolog.Logger) *GuestAuthService {
	return &GuestAuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login authenticates a credentialed guest. An unknown username fails exactly
// like a wrong password. A successful login records last_accessed.
func (s *GuestAuthService) Login(ctx context.Context, username, password string) (string, *domain.Guest, error) {
	if username == "" {
		return "", nil, domain.MissingField("username")
	}
	if password == "" {
		return "", nil, domain.MissingField("password")
	}

	guest, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrGuestNotFound) {
			metrics.LoginsTotal.WithLabelValues("guest", "failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !guest.Credentialed() ||
		bcrypt.CompareHashAndPassword([]byte(guest.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("guest", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastAccessed(ctx, guest.ID, now); err != nil {
		return "", nil, err
	}
	guest.LastAccessed = &now

	token, err := s.tokens.Issue(domain.GuestRef(guest.ID))
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("guest", "success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("guest").Inc()
	return token, guest, nil
}

// Register runs the credentialed registration reconciler. Guests are often
// pre-seeded anonymously through the public form before they ever set a
// password, so an email match claims the existing record instead of creating
// a duplicate. The username namespace is global and immutable once claimed.
func (s *GuestAuthService) Register(ctx context.Context, in ports.CredentialedRegistrationInput) (*ports.GuestRegistrationResult, error) {
	switch {
	case in.Email == "":
		return nil, domain.MissingField("email")
	case in.FirstName == "":
		return nil, domain.MissingField("first_name")
	case in.LastName == "":
		return nil, domain.MissingField("last_name")
	case in.Username == "":
		return nil, domain.MissingField("username")
	case in.Password == "":
		return nil, domain.MissingField("password")
	}

	// Fast-path username check. The unique index remains the authoritative
	// guard: a concurrent claim surfaces as ErrUsernameTaken from the write.
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrGuestNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var phone string
	if in.Profile.Phone != nil {
		phone = *in.Profile.Phone
	}

	merged, err := s.repo.AttachCredentials(ctx, in.Email, ports.CredentialAttachment{
		Username:     in.Username,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        phone,
		At:           now,
	})
	if err == nil {
		token, err := s.tokens.Issue(domain.GuestRef(merged.ID))
		if err != nil {
			return nil, err
		}
		s.logger.Info().Int64("guest_id", merged.ID).Str("username", in.Username).Msg("guest claimed existing record")
		metrics.GuestRegistrationsTotal.WithLabelValues("credentialed", "merged").Inc()
		metrics.TokensIssuedTotal.WithLabelValues("guest").Inc()
		return &ports.GuestRegistrationResult{Guest: merged, Token: token, Created: false}, nil
	}
	if !errors.Is(err, domain.ErrGuestNotFound) {
		return nil, err
	}

	guest := newGuestFromProfile(in.Email, in.FirstName, in.LastName, in.Profile, now)
	guest.Username = in.Username
	guest.PasswordHash = string(hash)

	created, err := s.repo.Create(ctx, guest)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(domain.GuestRef(created.ID))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("guest_id", created.ID).Str("username", in.Username).Msg("guest registered")
	metrics.GuestRegistrationsTotal.WithLabelValues("credentialed", "created").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("guest").Inc()
	return &ports.GuestRegistrationResult{Guest: created, Token: token, Created: true}, nil
}

// newGuestFromProfile builds a fresh guest record from registration input,
// applying the documented defaults for omitted profile fields.
func newGuestFromProfile(email, firstName, lastName string, p ports.GuestProfileInput, now time.Time) *domain.Guest {
	g := &domain.Guest{
		Email:          email,
		FirstName:      firstName,
		LastName:       lastName,
		RSVPStatus:     domain.RSVPPending,
		NumberOfGuests: 1,
		RegisteredAt:   now,
		UpdatedAt:      now,
	}
	applyProfile(g, p)
	return g
}

// applyProfile copies the provided profile fields onto g, leaving nil fields
// untouched.
func applyProfile(g *domain.Guest, p ports.GuestProfileInput) {
	if p.Phone != nil {
		g.Phone = *p.Phone
	}
	if p.RSVPStatus != nil {
		g.RSVPStatus = *p.RSVPStatus
	}
	if p.AttendanceType != nil {
		g.AttendanceType = *p.AttendanceType
	}
	if p.NumberOfGuests != nil {
		g.NumberOfGuests = *p.NumberOfGuests
	}
	if p.DietaryRestrictions != nil {
		g.DietaryRestrictions = *p.DietaryRestrictions
	}
	if p.Allergies != nil {
		g.Allergies = *p.Allergies
	}
	if p.SpecialRequests != nil {
		g.SpecialRequests = *p.SpecialRequests
	}
	if p.Address != nil {
		g.Address = *p.Address
	}
	if p.Notes != nil {
		g.Notes = *p.Notes
	}
}
