// Package validation runs the declarative per-request schemas declared as
// `validate` struct tags and turns failures into the structured detail list
// the controllers return to clients.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "parcelo/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names so details match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Check validates req against its struct tags. It returns nil when the
// payload passes, a *errors.ValidationError with one detail per failing
// field otherwise. Check is pure: it never touches persistence.
func Check(req interface{}) *apperrors.ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: req was not a struct. Programmer error,
		// surface it as a single opaque detail.
		return apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "body",
			Message: err.Error(),
		})
	}

	details := make([]apperrors.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperrors.ValidationDetail{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return apperrors.NewValidationError("validation failed", details...)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "min":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed on %s:%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
