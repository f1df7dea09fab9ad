package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/movecar/internal/pkg/i18n"
)

// RequestValidator adapts validator/v10 to echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator with the "plate" rule registered
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	// registration only fails for malformed tags
	_ = v.RegisterValidation("plate", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &RequestValidator{validate: v}
}

// Validate validates a request DTO
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}

// messageKey maps the first failed field of a validation error to a
// user-facing message key.
func messageKey(err error) i18n.Key {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return i18n.ErrInvalidBody
	}
	switch verrs[0].Field() {
	case "License":
		return i18n.ErrPlateRequired
	case "Lat", "Lng":
		return i18n.ErrInvalidLocation
	default:
		return i18n.ErrInvalidBody
	}
}
