package sqlerr

import "github.com/jackc/pgx/v5/pgconn"

// Code is the application-level category of a database error.
type Code int

const (
	// Other covers any error that has no dedicated mapping.
	Other Code = iota

	// UniqueViolation maps SQLSTATE 23505.
	UniqueViolation

	// ForeignKeyViolation maps SQLSTATE 23503.
	ForeignKeyViolation

	// NotNullViolation maps SQLSTATE 23502.
	NotNullViolation

	// CheckViolation maps SQLSTATE 23514.
	CheckViolation
)

// Severity mirrors the severity field of a Postgres error.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
	SeverityPanic
	SeverityOther
)

// MapCode maps a SQLSTATE code string to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// MapSeverity maps a Postgres severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityOther
	}
}

// Error is the normalized form of a Postgres server error. It keeps the
// original SQLSTATE and constraint metadata so callers can generate
// precise client messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying driver error for errors.As chains.
func (e *Error) Unwrap() error {
	if e.driverErr == nil {
		return nil
	}
	return e.driverErr
}
