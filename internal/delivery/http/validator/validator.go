// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "musea/internal/domain/errors"
)

// RequestValidator validates bound request structs by their validate tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator for echo's Validator hook.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Tag violations surface as a
// VALIDATION_FAILED application error carrying the validator's description.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
