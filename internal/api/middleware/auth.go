package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// Context keys for the resolved principal.
const (
	OrganizerKey = "organizer"
	GuestKey     = "guest"
)

// bearerToken extracts the token from the Authorization header. Empty when
// the header is absent or not a bearer scheme.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// resolveOrganizer verifies the bearer token, requires an organizer-kind
// reference, and resolves it against the store. A guest token never resolves
// here, even when the numeric ids collide. The distinct failure causes all
// surface as the same authorization error.
func resolveOrganizer(c echo.Context, tokens ports.TokenVerifier, repo ports.OrganizerRepository) (*domain.Organizer, error) {
	token := bearerToken(c)
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	ref, err := tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if ref.Kind != domain.KindOrganizer {
		return nil, domain.ErrInvalidToken
	}

	org, err := repo.FindByID(c.Request().Context(), ref.ID)
	if errors.Is(err, domain.ErrOrganizerNotFound) {
		// Deleted after token issuance.
		return nil, domain.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, err
	}
	return org, nil
}

// RequireOrganizer gates admin-only endpoints. The resolved organizer is
// stored on the request context for handlers.
func RequireOrganizer(tokens ports.TokenVerifier, repo ports.OrganizerRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			org, err := resolveOrganizer(c, tokens, repo)
			if err != nil {
				return err
			}
			c.Set(OrganizerKey, org)
			return next(c)
		}
	}
}

// RequireGuest gates guest-only endpoints, mirroring RequireOrganizer for
// the guest principal kind.
func RequireGuest(tokens ports.TokenVerifier, repo ports.GuestRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return domain.ErrUnauthorized
			}

			ref, err := tokens.Verify(token)
			if err != nil || ref.Kind != domain.KindGuest {
				return domain.ErrInvalidToken
			}

			guest, err := repo.FindByID(c.Request().Context(), ref.ID)
			if errors.Is(err, domain.ErrGuestNotFound) {
				return domain.ErrPrincipalNotFound
			}
			if err != nil {
				return err
			}

			c.Set(GuestKey, guest)
			return next(c)
		}
	}
}

// OptionalOrganizer resolves the organizer when a bearer token is presented
// and continues anonymously when it is not. A token that is present but does
// not resolve is still an error: content endpoints must never silently
// downgrade a failed admin request to the public view.
func OptionalOrganizer(tokens ports.TokenVerifier, repo ports.OrganizerRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if bearerToken(c) == "" {
				return next(c)
			}
			org, err := resolveOrganizer(c, tokens, repo)
			if err != nil {
				return err
			}
			c.Set(OrganizerKey, org)
			return next(c)
		}
	}
}
