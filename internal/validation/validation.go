// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules (like required fields or
// length bounds) defined in struct tags, and extracts validation failures
// into the field-error format clients understand. Invalid input is
// rejected here, before any store access happens.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"itemsvc/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves. The usual pattern is a struct with validator tags
// whose Validate method runs validator.Struct on itself.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue that cannot
// be expressed through validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Echo's default binder only binds query parameters for GET and DELETE
// requests; write endpoints here also accept query parameters (the create
// endpoint takes related_update_id as one), so those are bound explicitly
// for the remaining methods. payload must be a pointer so binding can
// populate it.
//
// All failures map to a 422 HTTPError: malformed payloads and
// out-of-range parameters are both validation problems from the client's
// point of view.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewUnprocessableEntityError(bindErrorMessage(err), nil)
	}

	if m := c.Request().Method; m != http.MethodGet && m != http.MethodDelete {
		if err := (&echo.DefaultBinder{}).BindQueryParams(c, payload); err != nil {
			return errs.NewUnprocessableEntityError(bindErrorMessage(err), nil)
		}
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewUnprocessableEntityError(msg, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts a readable message from an Echo bind error.
// Echo wraps bind failures in *echo.HTTPError with the cause in Message.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request payload"
}

// validateStruct calls v.Validate() and extracts field errors on failure.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		customValidationErrors, ok := err.(CustomValidationErrors)
		if !ok {
			// Unknown validation error type; surface the message as-is.
			return err.Error(), []errs.FieldError{}
		}
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means minimum length for strings, minimum value for numbers.
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
