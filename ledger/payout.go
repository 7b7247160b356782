package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/warp/shift-ledger/money"
	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// MANUAL OVERTIME PAYOUT
// =============================================================================

// AddOvertimePay records a manual payout of cents against a day. Amounts
// of zero or less are a no-op. If the day has no record yet, a
// zero-duration record is created carrying only the payout and its note.
func (l *Ledger) AddOvertimePay(ctx context.Context, day shift.Date, cents int64) error {
	if cents <= 0 {
		return nil
	}

	note := fmt.Sprintf("manual overtime payout: %s", money.FromCents(cents))

	rec, ok, err := l.store.Load(ctx, day)
	if err != nil {
		return fmt.Errorf("load %s: %w", day, err)
	}
	if !ok {
		rec = shift.Record{Day: day}
	}
	rec.OvertimePayCents += cents
	rec.Notes = rec.Notes.Append(note)

	if err := l.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("save %s: %w", day, err)
	}
	return nil
}

// =============================================================================
// PENDING OVERTIME
// =============================================================================

// PendingOvertime lists days whose surplus minutes have not been paid out.
// A zero year lists all of them; otherwise the given month only.
func (l *Ledger) PendingOvertime(ctx context.Context, year int, month time.Month) ([]shift.PendingOvertime, error) {
	return l.store.FindPendingOvertime(ctx, year, month)
}

// PendingTotalMinutes sums the month's unpaid surplus.
func (l *Ledger) PendingTotalMinutes(ctx context.Context, year int, month time.Month) (int, error) {
	pending, err := l.PendingOvertime(ctx, year, month)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range pending {
		total += p.OvertimeMin
	}
	return total, nil
}

// DistributeAllPending redistributes every pending source day of the
// month within the half-month period that contains it. Returns the total
// minutes reassigned.
func (l *Ledger) DistributeAllPending(ctx context.Context, year int, month time.Month) (int, error) {
	pending, err := l.PendingOvertime(ctx, year, month)
	if err != nil {
		return 0, err
	}

	reassigned := 0
	for _, p := range pending {
		if p.OvertimeMin <= 0 {
			continue
		}
		remaining, _, err := l.DistributeOvertime(ctx, year, month, shift.HalfOf(p.Day), p.Day, p.OvertimeMin)
		if err != nil {
			return reassigned, err
		}
		reassigned += p.OvertimeMin - remaining
	}
	return reassigned, nil
}
