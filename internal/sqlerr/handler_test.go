package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"itemsvc/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, Other, MapCode("42P01"))
}

func TestConvertPgError(t *testing.T) {
	src := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "items",
		ConstraintName: "items_title_key",
	}

	converted := ConvertPgError(src)

	assert.Equal(t, UniqueViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, "23505", converted.DatabaseCode)
	assert.Equal(t, "items", converted.TableName)

	// The original driver error stays reachable through Unwrap.
	var pgerr *pgconn.PgError
	assert.True(t, errors.As(converted, &pgerr))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23503"})

	assert.Equal(t, ForeignKeyViolation, ErrCode(converted))
	assert.Equal(t, ForeignKeyViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("unrelated")))
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "items",
		ConstraintName: "items_title_key",
	})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ITEM_ALREADY_EXISTS", httpErr.Code)
	// The column inferred from the constraint name lands in the message.
	assert.Equal(t, "A Item with this Title already exists", httpErr.Detail)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "items",
		ColumnName: "item_id",
	})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ITEM_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Item does not exist", httpErr.Detail)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "items",
		ColumnName: "title",
	})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ITEM_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "title", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestHandleErrorCheckViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23514",
		Severity:   "ERROR",
		TableName:  "items",
		ColumnName: "title",
	})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ITEM_INVALID", httpErr.Code)
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorUnknownBecomes500(t *testing.T) {
	err := HandleError(errors.New("connection reset by peer"))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	// The underlying cause must not leak to clients.
	assert.NotContains(t, httpErr.Detail, "connection reset")
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Item not found", nil)

	assert.Same(t, original, HandleError(original).(*errs.HTTPError))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "title", extractColumnForUniqueViolation("items_title_key"))
	assert.Equal(t, "title", extractColumnForUniqueViolation("items_title_ukey"))
	assert.Equal(t, "title", extractColumnForUniqueViolation("unique_items_title"))
	assert.Equal(t, "", extractColumnForUniqueViolation("some_random_constraint"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestGenerateErrorCode(t *testing.T) {
	assert.Equal(t, "ITEM_ALREADY_EXISTS", generateErrorCode("items", UniqueViolation))
	assert.Equal(t, "ITEM_NOT_FOUND", generateErrorCode("items", ForeignKeyViolation))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
}
