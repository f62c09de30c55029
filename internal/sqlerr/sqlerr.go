// Package sqlerr normalizes constraint errors from the PostgreSQL (pgx and
// lib/pq), MySQL and SQLite drivers into a single Code so callers can react
// to, say, a uniqueness violation without knowing which database they talk to.
package sqlerr

import "fmt"

// Code is the driver-independent category of a database error.
type Code string

const (
	Other               Code = "other"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	NotNullViolation    Code = "not_null_violation"
)

// Error is a classified driver error. The original error stays reachable
// through Unwrap.
type Error struct {
	Code           Code
	DatabaseCode   string
	Message        string
	TableName      string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	if e.ConstraintName != "" {
		return fmt.Sprintf("%s on constraint %s: %s", e.Code, e.ConstraintName, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
