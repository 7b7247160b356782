/*
store.go - Persistence contracts for shift records and settings

PURPOSE:
  Defines the interface between the calculation core and the record store.
  The core is storage-agnostic: any keyed row store that can upsert by day
  and scan a day range satisfies this contract.

PERSISTED LAYOUT:
  One table keyed by ISO calendar date string plus a flat settings table.
  Save is a full-field replace, not a patch - callers load, modify, save.

CONCURRENCY:
  Single user, single process, short serially-ordered read/modify/write
  sequences per record. No locking or retry logic beyond what a single
  statement naturally provides.

IMPLEMENTATIONS:
  - store/sqlite: production SQLite store
  - shift/store: in-memory store for tests/dev

SEE ALSO:
  - ledger: iterates and commits per-record through this interface
  - payroll: consumes Settings via payroll.LoadConfig
*/
package shift

import (
	"context"
	"time"
)

// =============================================================================
// STORE - Day-keyed shift records
// =============================================================================

// Store persists shift records keyed by calendar day.
type Store interface {
	// Load returns the record for the day, or ok=false if none exists.
	Load(ctx context.Context, day Date) (Record, bool, error)

	// Save upserts the record by day key, replacing every field.
	Save(ctx context.Context, rec Record) error

	// Delete removes the record for the day. Deleting a missing day is not
	// an error.
	Delete(ctx context.Context, day Date) error

	// ListBetween returns records with Start <= Day <= End, ascending by day.
	ListBetween(ctx context.Context, period Period) ([]Record, error)

	// FindPendingOvertime returns days with OvertimeMin > 0 and no recorded
	// overtime pay, ascending by day. A zero year returns all pending days;
	// otherwise results are limited to the given year+month.
	FindPendingOvertime(ctx context.Context, year int, month time.Month) ([]PendingOvertime, error)
}

// =============================================================================
// SETTINGS - Flat key/value pairs, last write wins
// =============================================================================

// Settings persists named configuration values. No history, no versioning.
type Settings interface {
	// LoadSetting returns the stored value, or def if the key is absent.
	LoadSetting(ctx context.Context, key, def string) (string, error)

	// SaveSetting stores the value, replacing any previous one.
	SaveSetting(ctx context.Context, key, value string) error
}
