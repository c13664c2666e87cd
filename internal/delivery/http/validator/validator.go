// Package validator adapts go-playground/validator to echo.
package validator

import (
	"net/http"
	"reflect"
	"strings"

	domainerrors "portal/internal/domain/errors"
	"portal/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate returns a 400 AppError naming the first offending field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	details := err.Error()
	if fieldErrs, ok := errors.AsType[validator.ValidationErrors](err); ok && len(fieldErrs) > 0 {
		details = fieldErrs[0].Field() + " failed on " + fieldErrs[0].Tag()
	}

	return domainerrors.NewBaseError(http.StatusBadRequest, domainerrors.CodeValidationFailed, "Invalid request", details)
}
