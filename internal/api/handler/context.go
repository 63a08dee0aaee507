package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/everafter/planner-api/internal/api/middleware"
	"github.com/everafter/planner-api/internal/core/domain"
)

// currentOrganizer extracts the organizer resolved by the auth middleware.
// A miss means the middleware did not run on this route; surface it as an
// authorization failure rather than panicking.
func currentOrganizer(c echo.Context) (*domain.Organizer, error) {
	org, ok := c.Get(middleware.OrganizerKey).(*domain.Organizer)
	if !ok || org == nil {
		return nil, domain.ErrUnauthorized
	}
	return org, nil
}

// maybeOrganizer returns the resolved organizer or nil for anonymous
// callers. Used by content reads, where identity is optional.
func maybeOrganizer(c echo.Context) *domain.Organizer {
	org, _ := c.Get(middleware.OrganizerKey).(*domain.Organizer)
	return org
}

// currentGuest extracts the guest resolved by the auth middleware.
func currentGuest(c echo.Context) (*domain.Guest, error) {
	guest, ok := c.Get(middleware.GuestKey).(*domain.Guest)
	if !ok || guest == nil {
		return nil, domain.ErrUnauthorized
	}
	return guest, nil
}
