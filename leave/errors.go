/*
errors.go - Centralized error types for the leave engine

PURPOSE:

	All error types in one place for consistency and discoverability.
	Store implementations and the HTTP layer wrap or classify these.

ERROR CATEGORIES:
 1. Date errors - Malformed or impossible calendar dates (fail fast,
    never let invalid dates flow into arithmetic)
 2. Entry errors - Invalid append payloads, rejected before any mutation
 3. Lookup errors - Missing employee records

USAGE:

	The HTTP layer maps errors to status codes:

	  if leave.IsNotFound(err) { ... 404 ... }
	  if leave.IsClientError(err) { ... 400 ... }
*/
package leave

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmployeeNotFound is returned when an append targets an id with no
	// matching employee record. No data is written in that case.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrMalformedDate is returned for input that is not YYYY-MM-DD shaped.
	ErrMalformedDate = errors.New("malformed date")

	// ErrImpossibleDate is returned for well-shaped input naming a calendar
	// date that does not exist (February 30, month 13).
	ErrImpossibleDate = errors.New("impossible calendar date")

	// ErrInvalidEntry is returned when a leave entry fails validation.
	ErrInvalidEntry = errors.New("invalid leave entry")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DateError reports why a date string was rejected.
type DateError struct {
	Value  string
	Reason string
	Err    error // ErrMalformedDate or ErrImpossibleDate
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

func (e *DateError) Unwrap() error { return e.Err }

// InvalidEntryError reports which field of a leave entry failed validation.
type InvalidEntryError struct {
	Field  string
	Reason string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid leave entry: %s %s", e.Field, e.Reason)
}

func (e *InvalidEntryError) Unwrap() error { return ErrInvalidEntry }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMalformedDate) ||
		errors.Is(err, ErrImpossibleDate) ||
		errors.Is(err, ErrInvalidEntry)
}

// IsNotFound returns true if the error indicates a missing employee record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}
