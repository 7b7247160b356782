package payroll

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-ledger/money"
	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// SHIFT REPRICING - From clock times to minutes and cents
// =============================================================================

const minutesPerDay = 24 * 60

// RequiredMinutes is the length of the shift window on a regular day:
// 8 working hours plus the configured lunch break. Lunch is unpaid but
// still clocks against the window.
func RequiredMinutes(lunchMin int) int {
	return NominalDayHours*60 + lunchMin
}

// Duration computes worked minutes between two "HH:MM" times of day.
// An end before the activation crosses midnight and adds 24h. Either side
// absent yields 0 - an in-progress shift has no duration yet.
func Duration(activation, end string) (int, error) {
	if activation == "" || end == "" {
		return 0, nil
	}
	start, err := money.ParseClock(activation)
	if err != nil {
		return 0, fmt.Errorf("activation: %w", errors.Join(shift.ErrInvalidClock, err))
	}
	stop, err := money.ParseClock(end)
	if err != nil {
		return 0, fmt.Errorf("end: %w", errors.Join(shift.ErrInvalidClock, err))
	}
	if stop < start {
		stop += minutesPerDay
	}
	return stop - start, nil
}

// ValidateClock rejects a malformed time-of-day before anything is written.
// Empty is valid: it means "not yet".
func ValidateClock(s string) error {
	if s == "" {
		return nil
	}
	if _, err := money.ParseClock(s); err != nil {
		return errors.Join(shift.ErrInvalidClock, err)
	}
	return nil
}

// ExpectedEnd predicts when a started shift will complete: activation plus
// the nominal 8 hours plus lunch, wrapped at midnight.
func ExpectedEnd(activation string, lunchMin int) (string, error) {
	start, err := money.ParseClock(activation)
	if err != nil {
		return "", errors.Join(shift.ErrInvalidClock, err)
	}
	end := (start + NominalDayHours*60 + lunchMin) % minutesPerDay
	return money.FormatClockPadded(end), nil
}

// Reprice recomputes every derived field of a record from its clock times.
//
// Regular days earn the fixed day base pay plus tiered overtime, and track
// undertime/overtime minutes against the required window. Weekend and
// holiday days are priced entirely as flat-rate premium into DayPayCents;
// both minute counters are forced to 0 there, because weekend overtime is
// paid immediately and never becomes redistributable surplus.
//
// Notes are preserved; only derived fields change.
func Reprice(rec shift.Record, cal *Calendar, hourlyRate decimal.Decimal, lunchMin int) (shift.Record, error) {
	duration, err := Duration(rec.Activation, rec.End)
	if err != nil {
		return rec, err
	}
	rec.DurationMin = duration

	if cal.NonWorking(rec.Day) {
		rec.UndertimeMin = 0
		rec.OvertimeMin = 0
		rec.DayPayCents = WeekendPay(duration, hourlyRate, lunchMin)
		rec.OvertimePayCents = 0
		return rec, nil
	}

	required := RequiredMinutes(lunchMin)
	rec.UndertimeMin = max(0, required-duration)
	rec.OvertimeMin = max(0, duration-required)
	rec.DayPayCents = DayBasePay(hourlyRate)
	rec.OvertimePayCents = OvertimePay(rec.OvertimeMin, hourlyRate, false)
	return rec, nil
}
