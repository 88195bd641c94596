package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"itemsvc/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidate = validator.New()

type createPayload struct {
	Title           string  `json:"title" validate:"required,min=1,max=200"`
	Description     *string `json:"description"`
	RelatedUpdateID *int64  `query:"related_update_id"`
}

func (p *createPayload) Validate() error {
	return testValidate.Struct(p)
}

type listPayload struct {
	Limit  *int   `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset *int   `query:"offset" validate:"omitempty,min=0"`
	Title  string `query:"title"`
}

func (p *listPayload) Validate() error {
	return testValidate.Struct(p)
}

func newContext(t *testing.T, method, target, body string) echo.Context {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(t, http.MethodPost, "/items/", `{"title":"alpha","description":"first"}`)

	payload := &createPayload{}
	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, "alpha", payload.Title)
	require.NotNil(t, payload.Description)
	assert.Equal(t, "first", *payload.Description)
	assert.Nil(t, payload.RelatedUpdateID)
}

func TestBindAndValidateBindsQueryOnPost(t *testing.T) {
	c := newContext(t, http.MethodPost, "/items/?related_update_id=7", `{"title":"alpha"}`)

	payload := &createPayload{}
	require.NoError(t, BindAndValidate(c, payload))

	require.NotNil(t, payload.RelatedUpdateID)
	assert.Equal(t, int64(7), *payload.RelatedUpdateID)
}

func TestBindAndValidateMissingTitle(t *testing.T) {
	c := newContext(t, http.MethodPost, "/items/", `{"description":"no title"}`)

	err := BindAndValidate(c, &createPayload{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "title", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestBindAndValidateTitleTooLong(t *testing.T) {
	c := newContext(t, http.MethodPost, "/items/", `{"title":"`+strings.Repeat("x", 201)+`"}`)

	err := BindAndValidate(c, &createPayload{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "must not exceed 200 characters", httpErr.Errors[0].Error)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(t, http.MethodPost, "/items/", `{"title":`)

	err := BindAndValidate(c, &createPayload{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
}

func TestBindAndValidateListDefaults(t *testing.T) {
	c := newContext(t, http.MethodGet, "/items/", "")

	payload := &listPayload{}
	require.NoError(t, BindAndValidate(c, payload))

	// Absent parameters stay nil; defaulting belongs to the handler.
	assert.Nil(t, payload.Limit)
	assert.Nil(t, payload.Offset)
}

func TestBindAndValidateListBounds(t *testing.T) {
	tests := []struct {
		name   string
		target string
		valid  bool
	}{
		{"limit lower bound", "/items/?limit=1", true},
		{"limit upper bound", "/items/?limit=100", true},
		{"limit zero", "/items/?limit=0", false},
		{"limit above range", "/items/?limit=101", false},
		{"offset zero", "/items/?offset=0", true},
		{"offset negative", "/items/?offset=-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(t, http.MethodGet, tt.target, "")

			err := BindAndValidate(c, &listPayload{})
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		})
	}
}
