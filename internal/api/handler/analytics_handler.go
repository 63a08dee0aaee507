package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/everafter/planner-api/internal/core/ports"
)

// AnalyticsHandler exposes read-only planning reports to organizers.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Overview returns the guest and task dashboard summary.
//
// @Summary      Dashboard overview
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.OverviewReport
// @Failure      401  {object}  map[string]string
// @Router       /api/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	if _, err := currentOrganizer(c); err != nil {
		return err
	}
	report, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Dietary returns dietary restriction and allergy breakdowns.
//
// @Summary      Dietary report
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DietaryReport
// @Failure      401  {object}  map[string]string
// @Router       /api/analytics/dietary [get]
func (h *AnalyticsHandler) Dietary(c echo.Context) error {
	if _, err := currentOrganizer(c); err != nil {
		return err
	}
	report, err := h.service.Dietary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Attendance returns confirmed attendance broken down by event part.
//
// @Summary      Attendance report
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AttendanceReport
// @Failure      401  {object}  map[string]string
// @Router       /api/analytics/attendance [get]
func (h *AnalyticsHandler) Attendance(c echo.Context) error {
	if _, err := currentOrganizer(c); err != nil {
		return err
	}
	report, err := h.service.Attendance(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Budget returns the calling organizer's cost totals.
//
// @Summary      Budget report
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.BudgetReport
// @Failure      401  {object}  map[string]string
// @Router       /api/analytics/budget [get]
func (h *AnalyticsHandler) Budget(c echo.Context) error {
	org, err := currentOrganizer(c)
	if err != nil {
		return err
	}
	report, err := h.service.Budget(c.Request().Context(), org.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
