package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/everafter/planner-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. The first failing field is
// reported as a domain.ValidationError so the central error handler renders
// it with the field named.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fieldError(ve[0])
	}
	return err
}

// fieldError converts a single ValidationError into a domain validation
// failure with a human-readable reason.
func fieldError(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.MissingField(field)
	case "email":
		return &domain.ValidationError{Field: field, Reason: "must be a valid email"}
	case "gte":
		return &domain.ValidationError{Field: field, Reason: "must be at least " + fe.Param()}
	case "oneof":
		return &domain.ValidationError{Field: field, Reason: "must be one of: " + fe.Param()}
	default:
		return &domain.ValidationError{Field: field, Reason: "failed validation (" + fe.Tag() + ")"}
	}
}
