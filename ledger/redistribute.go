/*
Package ledger reassigns unpaid overtime minutes and records manual
overtime payouts.

PURPOSE:
  A regular day's surplus overtime can "fill in" an undertime deficit on
  another regular day within the same half-month pay period. This is a
  bookkeeping reassignment, not a payment: no new money is created and
  pay already recorded is never clawed back.

ORDERING CONTRACT:
  Earliest-dated deficit is filled first. FIFO over ascending date - not
  proportional, not largest-first.

ATOMICITY:
  Deliberately incremental. Each candidate record is committed as it is
  filled; the source day's overtime is decremented once, after the loop.
  A crash mid-iteration therefore leaves a valid but partially
  redistributed state: some candidates filled, the source still showing
  full overtime. This non-atomic window is a known, accepted property of
  the operation.

SEE ALSO:
  - payout.go: manual payouts and the pending-overtime queries
  - summary.go: half-month earnings totals
*/
package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/warp/shift-ledger/shift"
)

// Ledger runs redistribution and payout operations over the record store.
type Ledger struct {
	store shift.Store
}

func New(store shift.Store) *Ledger {
	return &Ledger{store: store}
}

// =============================================================================
// OVERTIME REDISTRIBUTION
// =============================================================================

// DistributeOvertime reassigns up to availableMin minutes of the source
// day's surplus overtime to undertime deficits in the given half-month
// period, earliest deficit first.
//
// It returns the minutes left unconsumed and a map of candidate day key ->
// minutes applied there. Each filled candidate gets an audit note naming
// the source day; the source day gets one summary note and its OvertimeMin
// reduced by the total used, floored at 0. OvertimePayCents is never
// touched - redistribution only changes which minutes remain pending.
//
// Candidates are committed one by one; see the package comment for the
// non-atomic window this implies.
func (l *Ledger) DistributeOvertime(ctx context.Context, year int, month time.Month, half int, sourceDay shift.Date, availableMin int) (int, map[string]int, error) {
	used := make(map[string]int)
	if availableMin <= 0 {
		return availableMin, used, nil
	}

	period, err := shift.HalfMonth(year, month, half)
	if err != nil {
		return availableMin, used, err
	}

	records, err := l.store.ListBetween(ctx, period)
	if err != nil {
		return availableMin, used, fmt.Errorf("list period %s: %w", period, err)
	}

	for _, rec := range records {
		if availableMin <= 0 {
			break
		}
		if rec.Day.Equal(sourceDay) || rec.UndertimeMin <= 0 {
			continue
		}

		take := min(rec.UndertimeMin, availableMin)
		rec.UndertimeMin -= take
		rec.Notes = rec.Notes.Append(fmt.Sprintf(
			"closed %d min of undertime from surplus on %s", take, sourceDay))
		if err := l.store.Save(ctx, rec); err != nil {
			// Per-candidate commit: earlier fills stay applied, and used
			// reflects only completed updates.
			return availableMin, used, fmt.Errorf("save candidate %s: %w", rec.Day, err)
		}

		used[rec.Day.String()] = take
		availableMin -= take
	}

	if len(used) > 0 {
		if err := l.consumeSourceOvertime(ctx, sourceDay, used); err != nil {
			return availableMin, used, err
		}
	}
	return availableMin, used, nil
}

// consumeSourceOvertime decrements the source day once for the whole run
// and appends a single summary note listing every fill.
func (l *Ledger) consumeSourceOvertime(ctx context.Context, sourceDay shift.Date, used map[string]int) error {
	src, ok, err := l.store.Load(ctx, sourceDay)
	if err != nil {
		return fmt.Errorf("load source %s: %w", sourceDay, err)
	}
	if !ok {
		return nil
	}

	total := 0
	for _, take := range used {
		total += take
	}
	src.OvertimeMin = max(0, src.OvertimeMin-total)
	src.Notes = src.Notes.Append("surplus consumed for: " + summarizeFills(used))
	if err := l.store.Save(ctx, src); err != nil {
		return fmt.Errorf("save source %s: %w", sourceDay, err)
	}
	return nil
}

func summarizeFills(used map[string]int) string {
	days := make([]string, 0, len(used))
	for day := range used {
		days = append(days, day)
	}
	sort.Strings(days)
	parts := make([]string, 0, len(days))
	for _, day := range days {
		parts = append(parts, fmt.Sprintf("%s:%dmin", day, used[day]))
	}
	return strings.Join(parts, "; ")
}
