/*
Package sqlite provides the SQLite-backed implementation of the storage
contracts.

PURPOSE:
  Implements shift.Store and shift.Settings over a single-file database.
  The persisted layout is exactly the external contract: one shifts table
  keyed by ISO calendar date string plus a flat settings table.

KEY TABLES:
  shifts:    one row per calendar day, full-field upsert on save
  settings:  key/value pairs, last write wins

CONCURRENCY:
  One user, one process. A sync.RWMutex serializes writers; WAL mode keeps
  readers from blocking. No transaction isolation is needed beyond the
  atomicity of a single statement - the redistribution ledger deliberately
  commits per record.

USAGE:
  store, err := sqlite.New("./profiles/self.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - shift/store.go: interface definitions
  - shift/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/shift-ledger/shift"
)

// Store implements shift.Store and shift.Settings using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at dbPath. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Shift records, one per calendar day. "end" is a keyword and must
	-- stay quoted, but it is the column name the data format promises.
	CREATE TABLE IF NOT EXISTS shifts (
		day TEXT PRIMARY KEY,
		activation TEXT,
		"end" TEXT,
		duration_min INTEGER,
		undertime_min INTEGER,
		overtime_min INTEGER,
		day_pay_cents INTEGER,
		overtime_pay_cents INTEGER,
		notes TEXT
	);

	-- Pending-overtime scans filter on these two columns
	CREATE INDEX IF NOT EXISTS idx_shifts_overtime
		ON shifts(overtime_min, overtime_pay_cents);

	-- Settings, flat key/value
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SHIFT RECORDS (shift.Store interface)
// =============================================================================

const shiftColumns = `day, activation, "end", duration_min, undertime_min,
	overtime_min, day_pay_cents, overtime_pay_cents, notes`

// Load returns the record for a day, if any.
func (s *Store) Load(ctx context.Context, day shift.Date) (shift.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE day = ?`, day.String())

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return shift.Record{}, false, nil
	}
	if err != nil {
		return shift.Record{}, false, fmt.Errorf("failed to load shift %s: %w", day, err)
	}
	return rec, true, nil
}

// Save upserts a record by day key, replacing every field.
func (s *Store) Save(ctx context.Context, rec shift.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			activation = excluded.activation,
			"end" = excluded."end",
			duration_min = excluded.duration_min,
			undertime_min = excluded.undertime_min,
			overtime_min = excluded.overtime_min,
			day_pay_cents = excluded.day_pay_cents,
			overtime_pay_cents = excluded.overtime_pay_cents,
			notes = excluded.notes
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.Day.String(),
		nullString(rec.Activation),
		nullString(rec.End),
		rec.DurationMin,
		rec.UndertimeMin,
		rec.OvertimeMin,
		rec.DayPayCents,
		rec.OvertimePayCents,
		rec.Notes.Encode(),
	)
	if err != nil {
		return fmt.Errorf("failed to save shift %s: %w", rec.Day, err)
	}
	return nil
}

// Delete removes a day's record. Missing days are not an error.
func (s *Store) Delete(ctx context.Context, day shift.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE day = ?`, day.String()); err != nil {
		return fmt.Errorf("failed to delete shift %s: %w", day, err)
	}
	return nil
}

// ListBetween returns records in the period, ascending by day. ISO day
// strings sort chronologically, so BETWEEN on the text key is exact.
func (s *Store) ListBetween(ctx context.Context, period shift.Period) ([]shift.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE day BETWEEN ? AND ? ORDER BY day ASC`,
		period.Start.String(), period.End.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var records []shift.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// FindPendingOvertime returns days with unpaid surplus minutes, ascending.
func (s *Store) FindPendingOvertime(ctx context.Context, year int, month time.Month) ([]shift.PendingOvertime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT day, overtime_min FROM shifts
		WHERE overtime_min > 0
		  AND (overtime_pay_cents IS NULL OR overtime_pay_cents = 0)
	`
	var args []any
	if year != 0 {
		query += ` AND strftime('%Y', day) = ? AND strftime('%m', day) = ?`
		args = append(args, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", int(month)))
	}
	query += ` ORDER BY day ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending overtime: %w", err)
	}
	defer rows.Close()

	var pending []shift.PendingOvertime
	for rows.Next() {
		var dayKey string
		var minutes int
		if err := rows.Scan(&dayKey, &minutes); err != nil {
			return nil, fmt.Errorf("failed to scan pending overtime: %w", err)
		}
		day, err := shift.ParseDate(dayKey)
		if err != nil {
			return nil, err
		}
		pending = append(pending, shift.PendingOvertime{Day: day, OvertimeMin: minutes})
	}
	return pending, rows.Err()
}

// =============================================================================
// SETTINGS (shift.Settings interface)
// =============================================================================

// LoadSetting returns the stored value or the default if absent.
func (s *Store) LoadSetting(ctx context.Context, key, def string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load setting %q: %w", key, err)
	}
	return value, nil
}

// SaveSetting stores a value, replacing any previous one.
func (s *Store) SaveSetting(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}
	return nil
}

// =============================================================================
// ROW SCANNING
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (shift.Record, error) {
	var (
		dayKey           string
		activation, end  sql.NullString
		duration         sql.NullInt64
		undertime        sql.NullInt64
		overtime         sql.NullInt64
		dayPayCents      sql.NullInt64
		overtimePayCents sql.NullInt64
		notes            sql.NullString
	)
	err := row.Scan(&dayKey, &activation, &end, &duration, &undertime,
		&overtime, &dayPayCents, &overtimePayCents, &notes)
	if err != nil {
		return shift.Record{}, err
	}

	day, err := shift.ParseDate(dayKey)
	if err != nil {
		return shift.Record{}, fmt.Errorf("failed to parse day key %q: %w", dayKey, err)
	}

	return shift.Record{
		Day:              day,
		Activation:       activation.String,
		End:              end.String,
		DurationMin:      int(duration.Int64),
		UndertimeMin:     int(undertime.Int64),
		OvertimeMin:      int(overtime.Int64),
		DayPayCents:      dayPayCents.Int64,
		OvertimePayCents: overtimePayCents.Int64,
		Notes:            shift.DecodeNotes(notes.String),
	}, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
