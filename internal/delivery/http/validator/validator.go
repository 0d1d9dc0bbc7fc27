// Package validator adapts go-playground/validator to echo.
package validator

import (
	"haven/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New registers the marketplace-specific tags on top of the defaults.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = validate.RegisterValidation("category", validateCategory)

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validate.Struct(i))
}

func validateCategory(fl validator.FieldLevel) bool {
	return entity.Category(fl.Field().String()).Valid()
}

// FieldErrors lists the failing fields of a validation error by their struct field name.
func FieldErrors(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field())
	}

	return fields
}
