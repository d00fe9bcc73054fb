// Package validator adapts go-playground/validator to echo and renders its
// failures as per-field messages.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	domainerrors "taskflow/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// fieldMessages overrides the generated message for a field and tag.
//
//nolint:gochecknoglobals
var fieldMessages = map[string]string{
	"description.max": "Description too long",
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON (or query) name.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
	// maxbytes bounds the encoded length; bcrypt only reads the first 72 bytes.
	_ = validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}

		return len(fl.Field().String()) <= limit
	})

	return &CustomValidator{validate: validate}
}

// Validate checks i and returns a *domainerrors.ValidationError holding the
// first failing message per field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}

	return domainerrors.NewValidationError(fields)
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return fld.Name
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	label := Label(fe.Field())
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must not exceed %s characters", label, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must not exceed %s bytes", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

// Label turns a wire field name into the label used in messages: "title" becomes "Title".
func Label(field string) string {
	if field == "" {
		return field
	}

	return strings.ToUpper(field[:1]) + field[1:]
}
