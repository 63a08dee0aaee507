package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/everafter/planner-api/internal/core/domain"
	"github.com/everafter/planner-api/internal/core/ports"
)

// GuestAuthHandler handles guest login and credentialed self-registration.
type GuestAuthHandler struct {
	service ports.GuestAuthService
}

func NewGuestAuthHandler(service ports.GuestAuthService) *GuestAuthHandler {
	return &GuestAuthHandler{service: service}
}

type guestLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// guestProfileFields are the optional RSVP fields shared by the registration
// payloads; nil fields keep defaults or existing values.
type guestProfileFields struct {
	Phone               *string `json:"phone"`
	RSVPStatus          *string `json:"rsvp_status" validate:"omitempty,oneof=pending confirmed declined"`
	AttendanceType      *string `json:"attendance_type" validate:"omitempty,oneof=ceremony reception both"`
	NumberOfGuests      *int    `json:"number_of_guests" validate:"omitempty,gte=1"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
	Allergies           *string `json:"allergies"`
	SpecialRequests     *string `json:"special_requests"`
	Address             *string `json:"address"`
	Notes               *string `json:"notes"`
}

func (f guestProfileFields) toInput() ports.GuestProfileInput {
	return ports.GuestProfileInput{
		Phone:               f.Phone,
		RSVPStatus:          f.RSVPStatus,
		AttendanceType:      f.AttendanceType,
		NumberOfGuests:      f.NumberOfGuests,
		DietaryRestrictions: f.DietaryRestrictions,
		Allergies:           f.Allergies,
		SpecialRequests:     f.SpecialRequests,
		Address:             f.Address,
		Notes:               f.Notes,
	}
}

type guestRegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	guestProfileFields
}

type guestAuthResponse struct {
	Message string        `json:"message,omitempty"`
	Token   string        `json:"access_token"`
	Guest   *domain.Guest `json:"guest"`
}

// Login authenticates a credentialed guest.
//
// @Summary      Guest login
// @Tags         guest-auth
// @Accept       json
// @Produce      json
// @Param        body  body      guestLoginRequest  true  "Guest credentials"
// @Success      200   {object}  guestAuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/guest-auth/login [post]
func (h *GuestAuthHandler) Login(c echo.Context) error {
	var req guestLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, guest, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, guestAuthResponse{Token: token, Guest: guest})
}

// Register runs the credentialed registration reconciler: it creates a new
// guest or claims an email-matched record seeded through the public form.
// The merge path responds 200, a fresh record 201.
//
// @Summary      Guest self-registration
// @Tags         guest-auth
// @Accept       json
// @Produce      json
// @Param        body  body      guestRegisterRequest  true  "Registration details"
// @Success      200   {object}  guestAuthResponse
// @Success      201   {object}  guestAuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/guest-auth/register [post]
func (h *GuestAuthHandler) Register(c echo.Context) error {
	var req guestRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Register(c.Request().Context(), ports.CredentialedRegistrationInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Profile:   req.toInput(),
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	message := "Guest account created"
	if result.Created {
		status = http.StatusCreated
		message = "Guest registered successfully"
	}
	return c.JSON(status, guestAuthResponse{
		Message: message,
		Token:   result.Token,
		Guest:   result.Guest,
	})
}

// Me returns the profile of the authenticated guest.
//
// @Summary      Current guest profile
// @Tags         guest-auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Guest
// @Failure      401  {object}  map[string]string
// @Router       /api/guest-auth/me [get]
func (h *GuestAuthHandler) Me(c echo.Context) error {
	guest, err := currentGuest(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guest)
}
