package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores("Unprocessable Entity"))
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("duplicate title", nil, nil)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "duplicate title", err.Detail)
	assert.Equal(t, "duplicate title", err.Error())
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "ITEM_ALREADY_EXISTS"
	err := NewBadRequestError("already exists", &code, nil)

	assert.Equal(t, "ITEM_ALREADY_EXISTS", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Item not found", nil)

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "Item not found", err.Detail)
}

func TestNewUnprocessableEntityError(t *testing.T) {
	fieldErrors := []FieldError{{Field: "limit", Error: "must not exceed 100"}}
	err := NewUnprocessableEntityError("Validation failed", fieldErrors)

	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", err.Code)
	assert.Equal(t, fieldErrors, err.Errors)
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	// Sanitized on purpose: clients never see internal causes.
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Detail)
}

func TestHTTPErrorIsMatchesOnType(t *testing.T) {
	err := NewNotFoundError("gone", nil)

	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), err))
}

func TestWithDetailCopies(t *testing.T) {
	base := NewNotFoundError("Resource not found", nil)
	custom := base.WithDetail("Item not found")

	assert.Equal(t, "Resource not found", base.Detail)
	assert.Equal(t, "Item not found", custom.Detail)
	assert.Equal(t, base.Code, custom.Code)
	assert.Equal(t, base.Status, custom.Status)
}
