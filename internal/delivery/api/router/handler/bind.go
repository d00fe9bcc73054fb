package handler

import (
	"taskflow/internal/delivery/api/validator"
	domainerrors "taskflow/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// bindingError turns a failed query conversion into a field message.
func bindingError(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return domainerrors.NewValidationError(map[string]string{
			bindErr.Field: validator.Label(bindErr.Field) + " must be a number",
		})
	}

	return errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
}
