/*
Package shift defines the persistent data model of the work-shift tracker
and the narrow contracts the calculation core uses to reach storage.

PURPOSE:
  One Record per calendar day is the whole data model. The core never owns
  a database handle - it receives loaded Records and hands updated ones
  back through the Store interface for the caller to persist.

KEY CONCEPTS IN THIS FILE (types.go):
  - Record: one day's shift with derived minute and cent fields
  - PendingOvertime: a day whose surplus minutes have not been paid out
  - Settings keys and defaults

INVARIANTS:
  - DurationMin = End - Activation in minutes (mod 24h) when both are set,
    otherwise 0.
  - UndertimeMin and OvertimeMin are only meaningful on regular working
    days; weekend/holiday days carry 0 in both.
  - Cent fields are never negative.
  - Notes only grow; redistribution and manual payouts append, never edit.

SEE ALSO:
  - store.go: persistence contracts
  - notes.go: the audit note log
  - payroll: fills the derived fields
  - ledger: moves minutes between Records
*/
package shift

// =============================================================================
// RECORD - One calendar day's shift
// =============================================================================

// Record is a single day's recorded work interval plus everything derived
// from it. Day is the unique key.
type Record struct {
	Day Date

	// Activation and End are "HH:MM" times of day. Empty string means the
	// shift has not started / not ended yet - a valid in-progress state.
	Activation string
	End        string

	DurationMin  int
	UndertimeMin int
	OvertimeMin  int

	DayPayCents      int64
	OvertimePayCents int64

	Notes NoteLog
}

// Started reports whether the shift has an activation time.
func (r *Record) Started() bool { return r.Activation != "" }

// Ended reports whether the shift has an end time.
func (r *Record) Ended() bool { return r.End != "" }

// TotalPayCents is what the day contributes to a pay period.
func (r *Record) TotalPayCents() int64 { return r.DayPayCents + r.OvertimePayCents }

// PendingOvertime is a day whose overtime minutes have not yet been paid
// out: OvertimeMin > 0 and no recorded overtime pay.
type PendingOvertime struct {
	Day         Date
	OvertimeMin int
}

// =============================================================================
// SETTINGS - Flat key/value configuration, last write wins
// =============================================================================

const (
	// SettingSalary is the fixed base monthly salary, stored as a decimal
	// string.
	SettingSalary = "salary"

	// SettingLunchMin is the unpaid lunch break in minutes, stored as an
	// integer string.
	SettingLunchMin = "lunch_min"

	DefaultSalary   = "90610.5"
	DefaultLunchMin = "60"
)
