package errs

import "strings"

// FieldError represents a single field-level validation error.
//
// Example:
//
//	{ "field": "title", "error": "must not exceed 200 characters" }
type FieldError struct {
	// Field is the lowercased field name the error relates to.
	Field string `json:"field"`

	// Error is the human-readable message for that field.
	Error string `json:"error"`
}

// HTTPError is the error shape serialized to API clients.
//
// It implements the error interface, so handlers and services return it
// directly and let the global error handler write the response.
type HTTPError struct {
	// Code is a stable machine-friendly identifier (e.g. "NOT_FOUND",
	// "ITEM_ALREADY_EXISTS").
	Code string `json:"code"`

	// Detail is the human-readable message shown to the client.
	Detail string `json:"detail"`

	// Status is the HTTP status code the response carries.
	Status int `json:"status"`

	// Errors holds field-level validation errors, when applicable.
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// Is reports whether target is also an *HTTPError. It only matches on
// type, not on Code or Status, so errors.Is(err, &HTTPError{}) answers
// "is this one of ours" rather than "is this the same error".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithDetail returns a copy of the error with Detail replaced. The
// receiver is left untouched so shared error templates stay immutable.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	return &HTTPError{
		Code:   e.Code,
		Detail: detail,
		Status: e.Status,
		Errors: e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a status text into a stable error
// code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
