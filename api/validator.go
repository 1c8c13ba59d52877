package api

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/dieticians/errors"
)

const contactNumberTag = "contact_number"

var contactNumberRegexp = regexp.MustCompile(`^[0-9+\-() ]{7,20}$`)

// RequestValidator checks request bodies against the constraints declared in their validate tags.
// Violations are reported by json attribute name.
type RequestValidator struct {
	validate *validator.Validate
}

var _ echo.Validator = &RequestValidator{}

func NewRequestValidator() (*RequestValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation(contactNumberTag, func(fl validator.FieldLevel) bool {
		return contactNumberRegexp.MatchString(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	return &RequestValidator{validate: validate}, nil
}

func (r *RequestValidator) Validate(i interface{}) error {
	err := r.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stdErrors.As(err, &fieldErrs) {
		return err
	}

	validationErr := errors.NewValidationError()
	for _, fieldErr := range fieldErrs {
		validationErr.Add(fieldErr.Field(), reason(fieldErr))
	}
	return validationErr
}

func reason(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case contactNumberTag:
		return "must be a valid contact number"
	default:
		return "is invalid"
	}
}
