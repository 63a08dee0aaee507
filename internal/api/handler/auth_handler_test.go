package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/everafter/planner-api/internal/api/middleware"
	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn      func(ctx context.Context, in ports.RegisterOrganizerInput) (*domain.Organizer, error)
	loginFn         func(ctx context.Context, email, password string) (string, *domain.Organizer, error)
	updateProfileFn func(ctx context.Context, id int64, in ports.UpdateProfileInput) (*domain.Organizer, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterOrganizerInput) (*domain.Organizer, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Organizer, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Profile(ctx context.Context, id int64) (*domain.Organizer, error) {
	return nil, domain.ErrOrganizerNotFound
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, id int64, in ports.UpdateProfileInput) (*domain.Organizer, error) {
	return s.updateProfileFn(ctx, id, in)
}

// newTestContext builds an echo context with the request validator wired in,
// the way the router does it.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterOrganizerInput) (*domain.Organizer, error) {
			if in.Email != "alice@example.com" || in.Password != "secret" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Organizer{ID: 1, Email: in.Email, Name: "alice", Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/auth/register", `{"email":"alice@example.com","password":"secret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked into response")
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterOrganizerInput) (*domain.Organizer, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/auth/register", `{"email":"alice@example.com"}`)
	err := h.Register(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "password" {
		t.Fatalf("expected ValidationError on password, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/auth/register", "not-json")
	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterOrganizerInput) (*domain.Organizer, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/auth/register", `{"email":"bob@example.com","password":"x"}`)
	if err := h.Register(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken passed through, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.Organizer, error) {
			return "token123", &domain.Organizer{ID: 1, Email: email, Name: "alice"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("expected access_token, got %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Organizer, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"bad"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials passed through, got %v", err)
	}
}

func TestAuthHandler_Profile_RequiresMiddleware(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	// Without the auth middleware having run, the handler must refuse.
	c, _ := newTestContext(http.MethodGet, "/api/auth/profile", "")
	if err := h.Profile(c); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthHandler_Profile_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(http.MethodGet, "/api/auth/profile", "")
	c.Set(middleware.OrganizerKey, &domain.Organizer{ID: 9, Email: "org@example.com"})

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	stub := &stubAuthService{
		updateProfileFn: func(_ context.Context, id int64, in ports.UpdateProfileInput) (*domain.Organizer, error) {
			if id != 9 {
				t.Fatalf("update targeted wrong organizer: %d", id)
			}
			if in.Name == nil || *in.Name != "New Name" {
				t.Fatalf("name not forwarded: %+v", in)
			}
			if in.Email != nil {
				t.Fatalf("absent fields must stay nil: %+v", in)
			}
			return &domain.Organizer{ID: 9, Name: *in.Name}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/api/auth/profile", `{"name":"New Name"}`)
	c.Set(middleware.OrganizerKey, &domain.Organizer{ID: 9})

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
