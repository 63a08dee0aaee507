package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

type stubGuestRepo struct {
	byID   map[int64]*domain.Guest
	nextID int64
}

func newStubGuestRepo() *stubGuestRepo {
	return &stubGuestRepo{byID: make(map[int64]*domain.Guest), nextID: 1}
}

func cloneGuest(g *domain.Guest) *domain.Guest {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

func (r *stubGuestRepo) Create(_ context.Context, g *domain.Guest) (*domain.Guest, error) {
	for _, existing := range r.byID {
		if existing.Email == g.Email {
			return nil, domain.ErrEmailTaken
		}
		if g.Username != "" && existing.Username == g.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	copy := cloneGuest(g)
	copy.ID = r.nextID
	r.nextID++
	r.byID[copy.ID] = cloneGuest(copy)
	return cloneGuest(copy), nil
}

func (r *stubGuestRepo) FindByID(_ context.Context, id int64) (*domain.Guest, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrGuestNotFound
	}
	return cloneGuest(g), nil
}

func (r *stubGuestRepo) FindByEmail(_ context.Context, email string) (*domain.Guest, error) {
	for _, g := range r.byID {
		if g.Email == email {
			return cloneGuest(g), nil
		}
	}
	return nil, domain.ErrGuestNotFound
}

func (r *stubGuestRepo) FindByUsername(_ context.Context, username string) (*domain.Guest, error) {
	for _, g := range r.byID {
		if g.Username != "" && g.Username == username {
			return cloneGuest(g), nil
		}
	}
	return nil, domain.ErrGuestNotFound
}

func (r *stubGuestRepo) Update(_ context.Context, g *domain.Guest) error {
	if _, ok := r.byID[g.ID]; !ok {
		return domain.ErrGuestNotFound
	}
	r.byID[g.ID] = cloneGuest(g)
	return nil
}

func (r *stubGuestRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrGuestNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubGuestRepo) List(_ context.Context, f ports.GuestFilter) ([]domain.Guest, error) {
	var out []domain.Guest
	for _, g := range r.byID {
		if f.RSVPStatus != "" && g.RSVPStatus != f.RSVPStatus {
			continue
		}
		if f.AttendanceType != "" && g.AttendanceType != f.AttendanceType {
			continue
		}
		out = append(out, *cloneGuest(g))
	}
	return out, nil
}

func (r *stubGuestRepo) AttachCredentials(_ context.Context, email string, attach ports.CredentialAttachment) (*domain.Guest, error) {
	var match *domain.Guest
	for _, g := range r.byID {
		if g.Username == attach.Username {
			return nil, domain.ErrUsernameTaken
		}
		if g.Email == email {
			match = g
		}
	}
	if match == nil {
		return nil, domain.ErrGuestNotFound
	}
	match.Username = attach.Username
	match.PasswordHash = attach.PasswordHash
	match.FirstName = attach.FirstName
	match.LastName = attach.LastName
	if attach.Phone != "" {
		match.Phone = attach.Phone
	}
	match.UpdatedAt = attach.At
	at := attach.At
	match.LastAccessed = &at
	return cloneGuest(match), nil
}

func (r *stubGuestRepo) TouchLastAccessed(_ context.Context, id int64, at time.Time) error {
	g, ok := r.byID[id]
	if !ok {
		return domain.ErrGuestNotFound
	}
	ts := at
	g.LastAccessed = &ts
	return nil
}

func newGuestAuthService(repo ports.GuestRepository) (*GuestAuthService, *stubIssuer) {
	issuer := &stubIssuer{}
	return NewGuestAuthService(repo, issuer, zerolog.Nop()), issuer
}

func registerInput(username, email string) ports.CredentialedRegistrationInput {
	return ports.CredentialedRegistrationInput{
		Username:  username,
		Password:  "pass123",
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestGuestAuthService_Register_Create(t *testing.T) {
	svc, issuer := newGuestAuthService(newStubGuestRepo())

	result, err := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !result.Created {
		t.Fatalf("expected a fresh record")
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	g := result.Guest
	if g.RSVPStatus != domain.RSVPPending || g.NumberOfGuests != 1 {
		t.Fatalf("defaults not applied: %+v", g)
	}
	if bcrypt.CompareHashAndPassword([]byte(g.PasswordHash), []byte("pass123")) != nil {
		t.Fatalf("stored hash does not match password")
	}
	if len(issuer.issued) != 1 || issuer.issued[0].Kind != domain.KindGuest {
		t.Fatalf("expected guest-kind token issued, got %+v", issuer.issued)
	}
}

func TestGuestAuthService_Register_MergesByEmail(t *testing.T) {
	repo := newStubGuestRepo()
	svc, _ := newGuestAuthService(repo)

	// Pre-seeded anonymously through the public form, with RSVP answers
	// that must survive the credential claim.
	seeded, err := repo.Create(context.Background(), &domain.Guest{
		Email:               "ada@example.com",
		FirstName:           "A.",
		LastName:            "L.",
		RSVPStatus:          domain.RSVPConfirmed,
		AttendanceType:      domain.AttendBoth,
		NumberOfGuests:      3,
		DietaryRestrictions: "vegetarian",
	})
	if err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	result, err := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Created {
		t.Fatalf("expected the existing record to be claimed, not a new one")
	}
	g := result.Guest
	if g.ID != seeded.ID {
		t.Fatalf("claimed wrong record: got id %d, want %d", g.ID, seeded.ID)
	}
	if g.Username != "ada" || !g.Credentialed() {
		t.Fatalf("credentials not attached: %+v", g)
	}
	if g.RSVPStatus != domain.RSVPConfirmed || g.AttendanceType != domain.AttendBoth || g.NumberOfGuests != 3 {
		t.Fatalf("merge lost RSVP answers: %+v", g)
	}
	if g.FirstName != "Ada" || g.LastName != "Lovelace" {
		t.Fatalf("merge should refresh names: %+v", g)
	}
}

func TestGuestAuthService_Register_UsernameTaken(t *testing.T) {
	repo := newStubGuestRepo()
	svc, _ := newGuestAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("ada", "ada@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("ada", "other@example.com")); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// The losing registration must not have created a record.
	if _, err := repo.FindByEmail(context.Background(), "other@example.com"); !errors.Is(err, domain.ErrGuestNotFound) {
		t.Fatalf("conflicting registration mutated the store: %v", err)
	}
}

func TestGuestAuthService_Register_MissingFields(t *testing.T) {
	svc, _ := newGuestAuthService(newStubGuestRepo())

	tests := []struct {
		mutate func(*ports.CredentialedRegistrationInput)
		field  string
	}{
		{func(in *ports.CredentialedRegistrationInput) { in.Email = "" }, "email"},
		{func(in *ports.CredentialedRegistrationInput) { in.FirstName = "" }, "first_name"},
		{func(in *ports.CredentialedRegistrationInput) { in.LastName = "" }, "last_name"},
		{func(in *ports.CredentialedRegistrationInput) { in.Username = "" }, "username"},
		{func(in *ports.CredentialedRegistrationInput) { in.Password = "" }, "password"},
	}
	for _, tt := range tests {
		in := registerInput("ada", "ada@example.com")
		tt.mutate(&in)
		_, err := svc.Register(context.Background(), in)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) || verr.Field != tt.field {
			t.Fatalf("expected ValidationError on %q, got %v", tt.field, err)
		}
	}
}

func TestGuestAuthService_Login_Success(t *testing.T) {
	repo := newStubGuestRepo()
	svc, issuer := newGuestAuthService(repo)

	result, err := svc.Register(context.Background(), registerInput("ada", "ada@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, guest, err := svc.Login(context.Background(), "ada", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if guest.ID != result.Guest.ID {
		t.Fatalf("login resolved wrong guest: %+v", guest)
	}
	if guest.LastAccessed == nil {
		t.Fatalf("login must record last_accessed")
	}

	stored, _ := repo.FindByID(context.Background(), guest.ID)
	if stored.LastAccessed == nil {
		t.Fatalf("last_accessed not persisted")
	}
	if issuer.issued[len(issuer.issued)-1].Kind != domain.KindGuest {
		t.Fatalf("expected guest-kind token on login")
	}
}

func TestGuestAuthService_Login_UnknownUsername(t *testing.T) {
	svc, _ := newGuestAuthService(newStubGuestRepo())

	// An unknown username must fail exactly like a wrong password, never
	// as a not-found.
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGuestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newGuestAuthService(newStubGuestRepo())

	_, _ = svc.Register(context.Background(), registerInput("ada", "ada@example.com"))
	if _, _, err := svc.Login(context.Background(), "ada", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGuestAuthService_Login_AnonymousGuest(t *testing.T) {
	repo := newStubGuestRepo()
	svc, _ := newGuestAuthService(repo)

	// A profile-only record has no credentials even if a username probe
	// matches nothing; seed one with a username-less row and make sure no
	// amount of guessing logs in.
	_, _ = repo.Create(context.Background(), &domain.Guest{Email: "anon@example.com", FirstName: "An", LastName: "On"})

	if _, _, err := svc.Login(context.Background(), "anon@example.com", "anything"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
