package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code optionally overrides the default "BAD_REQUEST" code; the sqlerr
// package uses this to emit constraint-specific codes such as
// "ITEM_ALREADY_EXISTS". errors optionally carries field-level detail.
func NewBadRequestError(detail string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:   formattedCode,
		Detail: detail,
		Status: http.StatusBadRequest,
		Errors: errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(detail string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:   formattedCode,
		Detail: detail,
		Status: http.StatusNotFound,
	}
}

// NewUnprocessableEntityError creates a 422 Unprocessable Entity HTTPError.
//
// This is the shape for request validation failures: malformed payloads
// and out-of-range parameters are rejected with it before any store
// access happens.
func NewUnprocessableEntityError(detail string, errors []FieldError) *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)),
		Detail: detail,
		Status: http.StatusUnprocessableEntity,
		Errors: errors,
	}
}

// NewInternalServerError creates a sanitized 500 HTTPError.
//
// The detail is the generic status text on purpose: internal failures are
// logged server-side with their real cause and never leaked to clients.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Detail: http.StatusText(http.StatusInternalServerError),
		Status: http.StatusInternalServerError,
	}
}
