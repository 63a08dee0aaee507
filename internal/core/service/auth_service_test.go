package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

type stubOrganizerRepo struct {
	byID   map[int64]*domain.Organizer
	nextID int64
}

func newStubOrganizerRepo() *stubOrganizerRepo {
	return &stubOrganizerRepo{byID: make(map[int64]*domain.Organizer), nextID: 1}
}

func cloneOrganizer(o *domain.Organizer) *domain.Organizer {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}

func (r *stubOrganizerRepo) Create(_ context.Context, o *domain.Organizer) (*domain.Organizer, error) {
	for _, existing := range r.byID {
		if existing.Email == o.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneOrganizer(o)
	copy.ID = r.nextID
	r.nextID++
	r.byID[copy.ID] = cloneOrganizer(copy)
	return cloneOrganizer(copy), nil
}

func (r *stubOrganizerRepo) FindByID(_ context.Context, id int64) (*domain.Organizer, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrganizerNotFound
	}
	return cloneOrganizer(o), nil
}

func (r *stubOrganizerRepo) FindByEmail(_ context.Context, email string) (*domain.Organizer, error) {
	for _, o := range r.byID {
		if o.Email == email {
			return cloneOrganizer(o), nil
		}
	}
	return nil, domain.ErrOrganizerNotFound
}

func (r *stubOrganizerRepo) Update(_ context.Context, o *domain.Organizer) error {
	if _, ok := r.byID[o.ID]; !ok {
		return domain.ErrOrganizerNotFound
	}
	r.byID[o.ID] = cloneOrganizer(o)
	return nil
}

// stubIssuer records issued refs and mints predictable tokens.
type stubIssuer struct {
	issued []domain.PrincipalRef
}

func (s *stubIssuer) Issue(ref domain.PrincipalRef) (string, error) {
	s.issued = append(s.issued, ref)
	return "token-" + ref.String(), nil
}

func newAuthService(repo ports.OrganizerRepository) (*AuthService, *stubIssuer) {
	issuer := &stubIssuer{}
	return NewAuthService(repo, issuer, zerolog.Nop()), issuer
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newAuthService(newStubOrganizerRepo())

	org, err := svc.Register(context.Background(), ports.RegisterOrganizerInput{
		Email:    "alice@example.com",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if org.Name != "alice" {
		t.Fatalf("expected name defaulted from email local part, got %q", org.Name)
	}
	if org.Role != domain.RoleAdmin {
		t.Fatalf("expected default role admin, got %q", org.Role)
	}
	if org.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(org.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _ := newAuthService(newStubOrganizerRepo())

	tests := []struct {
		in    ports.RegisterOrganizerInput
		field string
	}{
		{ports.RegisterOrganizerInput{Password: "x"}, "email"},
		{ports.RegisterOrganizerInput{Email: "a@b.com"}, "password"},
	}
	for _, tt := range tests {
		_, err := svc.Register(context.Background(), tt.in)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) || verr.Field != tt.field {
			t.Fatalf("expected ValidationError on %q, got %v", tt.field, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(newStubOrganizerRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterOrganizerInput{Email: "bob@example.com", Password: "pass"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterOrganizerInput{Email: "bob@example.com", Password: "pass2"}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubOrganizerRepo()
	svc, issuer := newAuthService(repo)

	org, err := svc.Register(context.Background(), ports.RegisterOrganizerInput{Email: "carol@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, logged, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if logged.ID != org.ID {
		t.Fatalf("login resolved wrong organizer: %+v", logged)
	}
	if len(issuer.issued) != 1 || issuer.issued[0] != domain.OrganizerRef(org.ID) {
		t.Fatalf("expected an organizer-kind ref issued, got %+v", issuer.issued)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _ := newAuthService(newStubOrganizerRepo())

	_, _ = svc.Register(context.Background(), ports.RegisterOrganizerInput{Email: "dave@example.com", Password: "goodpass"})
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(newStubOrganizerRepo())

	// An absent account must fail exactly like a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, _ := newAuthService(newStubOrganizerRepo())

	org, err := svc.Register(context.Background(), ports.RegisterOrganizerInput{Email: "erin@example.com", Password: "pass"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name := "Erin"
	email := "erin@wedding.example"
	updated, err := svc.UpdateProfile(context.Background(), org.ID, ports.UpdateProfileInput{Name: &name, Email: &email})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Erin" || updated.Email != "erin@wedding.example" {
		t.Fatalf("update not applied: %+v", updated)
	}

	// Password change must re-hash.
	pw := "newpass"
	updated, err = svc.UpdateProfile(context.Background(), org.ID, ports.UpdateProfileInput{Password: &pw})
	if err != nil {
		t.Fatalf("password update returned error: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")) != nil {
		t.Fatalf("new password not hashed into profile")
	}
}

func TestAuthService_UpdateProfile_EmailConflict(t *testing.T) {
	svc, _ := newAuthService(newStubOrganizerRepo())

	first, _ := svc.Register(context.Background(), ports.RegisterOrganizerInput{Email: "one@example.com", Password: "pass"})
	_, _ = svc.Register(context.Background(), ports.RegisterOrganizerInput{Email: "two@example.com", Password: "pass"})

	taken := "two@example.com"
	if _, err := svc.UpdateProfile(context.Background(), first.ID, ports.UpdateProfileInput{Email: &taken}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Re-submitting your own email is not a conflict.
	own := "one@example.com"
	if _, err := svc.UpdateProfile(context.Background(), first.ID, ports.UpdateProfileInput{Email: &own}); err != nil {
		t.Fatalf("own email rejected: %v", err)
	}
}
