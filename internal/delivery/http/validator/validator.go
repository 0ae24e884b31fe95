// Package validator plugs go-playground/validator into echo.
package validator

import (
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator satisfies echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that checks `validate` struct tags.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate reports the first failing field as ErrValidationFailed.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]

		return domainerrors.ErrValidationFailed.WrapMessage(fe.Field() + " failed on " + fe.Tag())
	}

	return errors.Wrap(err, "validate struct")
}
