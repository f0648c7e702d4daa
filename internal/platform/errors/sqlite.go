package errors

import (
	"database/sql"
	stderrs "errors"
	"strings"
)

// SQLite error translation. The modernc driver surfaces engine errors as
// formatted strings, so classification is by constraint message rather than
// numeric code.

// IsNoRows reports whether err is sql.ErrNoRows at any wrap depth
func IsNoRows(err error) bool { return stderrs.Is(err, sql.ErrNoRows) }

// IsDuplicate reports whether err is a unique-constraint violation
func IsDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsBusy reports whether err is a transient lock conflict worth retrying
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "database is locked") || strings.Contains(s, "database table is locked")
}

// FromSQLite maps a raw driver error into a project error with a stable code
func FromSQLite(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case IsNoRows(err):
		return Wrap(err, ErrorCodeNotFound, op+": not found")
	case IsDuplicate(err):
		return Wrap(err, ErrorCodeDuplicateKey, op+": duplicate")
	case IsBusy(err):
		return Wrap(err, ErrorCodeUnavailable, op+": database busy")
	default:
		return Wrap(err, ErrorCodeDB, op+": database error")
	}
}
