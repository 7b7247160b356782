package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// PERIOD EARNINGS - The two half-month payday figures
// =============================================================================

// PeriodEarnings sums day pay plus overtime pay over a period, in cents.
func (l *Ledger) PeriodEarnings(ctx context.Context, period shift.Period) (int64, error) {
	records, err := l.store.ListBetween(ctx, period)
	if err != nil {
		return 0, fmt.Errorf("list period %s: %w", period, err)
	}
	var total int64
	for _, rec := range records {
		total += rec.TotalPayCents()
	}
	return total, nil
}

// HalfMonthEarnings is PeriodEarnings for the given half of a month.
// The 29th payday covers half 1 of the current month; the 14th payday
// covers half 2 of the previous month.
func (l *Ledger) HalfMonthEarnings(ctx context.Context, year int, month time.Month, half int) (int64, error) {
	period, err := shift.HalfMonth(year, month, half)
	if err != nil {
		return 0, err
	}
	return l.PeriodEarnings(ctx, period)
}

// WeekWorkedMinutes totals worked minutes over a week's records, with the
// lunch break deducted from any day longer than the nominal 8 hours.
func WeekWorkedMinutes(records []shift.Record, lunchMin int) int {
	total := 0
	for _, rec := range records {
		work := rec.DurationMin
		if work > 8*60 {
			work -= lunchMin
		}
		total += work
	}
	return total
}
