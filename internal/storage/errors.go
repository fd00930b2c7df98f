package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when an operation requires a record that does
	// not exist. Maybe-lookups (GetXByID) return nil instead.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when input violates field constraints.
	// Rejected before any store mutation.
	ErrValidation = errors.New("invalid input")

	// ErrIntegrity is returned when a mutation would violate a foreign-key
	// relationship.
	ErrIntegrity = errors.New("integrity violation")
)

// invalid wraps a validation failure so callers can errors.Is it.
func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// mapStoreErr translates driver-level failures into the error taxonomy.
// Foreign-key violations become ErrIntegrity; unique violations can only come
// from the sibling-position constraints and so become ErrValidation.
func mapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %v", ErrIntegrity, err)
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: duplicate position among siblings", ErrValidation)
		}
	}
	return err
}
