/*
errors.go - Centralized error types for the shift core

PURPOSE:
  All sentinel errors in one place for consistency and discoverability.
  Validation failures are rejected before any record mutation - a bad
  clock string never causes a partial write.

USAGE:
  if errors.Is(err, shift.ErrInvalidClock) {
      // 400, not 500
  }

SEE ALSO:
  - payroll: returns ErrInvalidClock from time parsing
  - api: maps client errors to HTTP status codes
*/
package shift

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidClock is returned when a time-of-day string is not a
	// parseable "HH:MM" value. Local validation failure: nothing is written.
	ErrInvalidClock = errors.New("invalid clock time")

	// ErrInvalidDate is returned for a malformed ISO day key.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNotFound is returned when no record exists for the requested day.
	ErrNotFound = errors.New("shift not found")

	// ErrShiftAlreadyStarted is returned when starting a day that already
	// has an activation time.
	ErrShiftAlreadyStarted = errors.New("shift already started")

	// ErrShiftNotStarted is returned when ending a day with no activation.
	ErrShiftNotStarted = errors.New("shift not started")

	// ErrShiftAlreadyEnded is returned when ending a day twice.
	ErrShiftAlreadyEnded = errors.New("shift already ended")

	// ErrInvalidHalf is returned when a pay-period half is not 1 or 2.
	ErrInvalidHalf = errors.New("invalid half-month period: want 1 or 2")
)

// IsClientError reports whether the error is due to invalid caller input
// rather than a storage or internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidClock) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrShiftAlreadyStarted) ||
		errors.Is(err, ErrShiftNotStarted) ||
		errors.Is(err, ErrShiftAlreadyEnded) ||
		errors.Is(err, ErrInvalidHalf)
}

// IsNotFound reports whether the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
