package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// GuestHandler handles the public registration form and the organizer-facing
// guest management endpoints.
type GuestHandler struct {
	service ports.GuestService
}

func NewGuestHandler(service ports.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

type publicRegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	guestProfileFields
}

type updateGuestRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	guestProfileFields
}

type guestMessageResponse struct {
	Message string        `json:"message"`
	Guest   *domain.Guest `json:"guest,omitempty"`
}

// RegisterPublic upserts a guest by email from the public RSVP form. No
// authentication, no credentials, no token in the response.
//
// @Summary      Public guest registration
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        body  body      publicRegisterRequest  true  "Guest details"
// @Success      200   {object}  guestMessageResponse
// @Success      201   {object}  guestMessageResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/guests/register [post]
func (h *GuestHandler) RegisterPublic(c echo.Context) error {
	var req publicRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	guest, created, err := h.service.RegisterPublic(c.Request().Context(), ports.PublicRegistrationInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Profile:   req.toInput(),
	})
	if err != nil {
		return err
	}

	if created {
		return c.JSON(http.StatusCreated, guestMessageResponse{
			Message: "Guest registered successfully", Guest: guest,
		})
	}
	return c.JSON(http.StatusOK, guestMessageResponse{
		Message: "Guest information updated", Guest: guest,
	})
}

// List returns all guests, optionally filtered by RSVP status and attendance
// type.
//
// @Summary      List guests
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Param        rsvp_status      query  string  false  "Filter by RSVP status"
// @Param        attendance_type  query  string  false  "Filter by attendance type"
// @Success      200  {array}   domain.Guest
// @Failure      401  {object}  map[string]string
// @Router       /api/guests [get]
func (h *GuestHandler) List(c echo.Context) error {
	guests, err := h.service.List(c.Request().Context(), ports.GuestFilter{
		RSVPStatus:     c.QueryParam("rsvp_status"),
		AttendanceType: c.QueryParam("attendance_type"),
	})
	if err != nil {
		return err
	}
	if guests == nil {
		guests = []domain.Guest{}
	}
	return c.JSON(http.StatusOK, guests)
}

// Get returns one guest by id.
//
// @Summary      Get a guest
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Guest
// @Failure      404  {object}  map[string]string
// @Router       /api/guests/{id} [get]
func (h *GuestHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	guest, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guest)
}

// Update applies a partial update to a guest record.
//
// @Summary      Update a guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Guest
// @Failure      404  {object}  map[string]string
// @Router       /api/guests/{id} [put]
func (h *GuestHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req updateGuestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	guest, err := h.service.Update(c.Request().Context(), id, ports.UpdateGuestInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Profile:   req.toInput(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guest)
}

// Delete removes a guest record.
//
// @Summary      Delete a guest
// @Tags         guests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  guestMessageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/guests/{id} [delete]
func (h *GuestHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guestMessageResponse{Message: "Guest deleted successfully"})
}

// paramID parses the numeric :id route parameter.
func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
