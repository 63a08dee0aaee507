package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// CostHandler handles owner-scoped budget entries.
type CostHandler struct {
	service ports.CostService
}

func NewCostHandler(service ports.CostService) *CostHandler {
	return &CostHandler{service: service}
}

type createCostRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount" validate:"required"`
	Vendor      string   `json:"vendor"`
	Status      string   `json:"status"`
	PaymentDate string   `json:"payment_date"`
	Notes       string   `json:"notes"`
}

type updateCostRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Vendor      *string  `json:"vendor"`
	Status      *string  `json:"status"`
	PaymentDate *string  `json:"payment_date"`
	Notes       *string  `json:"notes"`
}

// List returns the calling organizer's cost entries.
//
// @Summary      List own costs
// @Tags         costs
// @Produce      json
// @Security     BearerAuth
// @Param        category  query  string  false  "Filter by category"
// @Param        status    query  string  false  "Filter by status"
// @Success      200  {array}   domain.Cost
// @Failure      401  {object}  map[string]string
// @Router       /api/costs [get]
func (h *CostHandler) List(c echo.Context) error {
	org, err := currentOrganizer(c)
	if err != nil {
		return err
	}

	costs, err := h.service.List(c.Request().Context(), org.ID, ports.CostFilter{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	if costs == nil {
		costs = []domain.Cost{}
	}
	return c.JSON(http.StatusOK, costs)
}

// Create adds a cost entry owned by the calling organizer.
//
// @Summary      Create a cost entry
// @Tags         costs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.Cost
// @Failure      400  {object}  map[string]string
// @Router       /api/costs [post]
func (h *CostHandler) Create(c echo.Context) error {
	org, err := currentOrganizer(c)
	if err != nil {
		return err
	}

	var req createCostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cost, err := h.service.Create(c.Request().Context(), org.ID, ports.CreateCostInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Vendor:      req.Vendor,
		Status:      req.Status,
		PaymentDate: req.PaymentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cost)
}

// Update applies a partial update to an owned cost entry.
//
// @Summary      Update a cost entry
// @Tags         costs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Cost
// @Failure      404  {object}  map[string]string
// @Router       /api/costs/{id} [put]
func (h *CostHandler) Update(c echo.Context) error {
	org, err := currentOrganizer(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req updateCostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	cost, err := h.service.Update(c.Request().Context(), org.ID, id, ports.UpdateCostInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Vendor:      req.Vendor,
		Status:      req.Status,
		PaymentDate: req.PaymentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cost)
}

// Delete removes an owned cost entry.
//
// @Summary      Delete a cost entry
// @Tags         costs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/costs/{id} [delete]
func (h *CostHandler) Delete(c echo.Context) error {
	org, err := currentOrganizer(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), org.ID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Cost deleted successfully"})
}
