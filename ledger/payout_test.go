package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-ledger/ledger"
	"github.com/warp/shift-ledger/payroll"
	"github.com/warp/shift-ledger/shift"
	"github.com/warp/shift-ledger/shift/store"
)

// =============================================================================
// MANUAL PAYOUT
// =============================================================================

func TestAddOvertimePay_CreatesRecordIfAbsent(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	require.NoError(t, ledger.New(mem).AddOvertimePay(ctx, day(14), 15000))

	rec := mustLoad(t, mem, day(14))
	assert.Equal(t, int64(15000), rec.OvertimePayCents)
	assert.Equal(t, 0, rec.DurationMin, "created record carries no shift times")
	assert.Empty(t, rec.Activation)
	require.Len(t, rec.Notes, 1)
	assert.Equal(t, "manual overtime payout: 150", rec.Notes[0].Text)
}

func TestAddOvertimePay_Accumulates(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	saveAll(t, mem, shift.Record{Day: day(10), OvertimeMin: 60, OvertimePayCents: 10000})

	l := ledger.New(mem)
	require.NoError(t, l.AddOvertimePay(ctx, day(10), 5000))

	rec := mustLoad(t, mem, day(10))
	assert.Equal(t, int64(15000), rec.OvertimePayCents)
	assert.Equal(t, 60, rec.OvertimeMin, "minutes untouched by payout")
	assert.Len(t, rec.Notes, 1)
}

func TestAddOvertimePay_IgnoresNonPositive(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	l := ledger.New(mem)

	require.NoError(t, l.AddOvertimePay(ctx, day(14), 0))
	require.NoError(t, l.AddOvertimePay(ctx, day(14), -500))

	_, ok, err := mem.Load(ctx, day(14))
	require.NoError(t, err)
	assert.False(t, ok, "no record should be created for a no-op payout")
}

// =============================================================================
// PENDING OVERTIME
// =============================================================================

func TestPendingOvertime_UnpaidSurplusOnly(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	saveAll(t, mem,
		shift.Record{Day: day(3), OvertimeMin: 30},
		shift.Record{Day: day(5), OvertimeMin: 45, OvertimePayCents: 8000}, // already paid
		shift.Record{Day: day(7), UndertimeMin: 20},                        // no surplus
		shift.Record{Day: shift.NewDate(2026, time.April, 2), OvertimeMin: 15},
	)
	l := ledger.New(mem)

	pending, err := l.PendingOvertime(ctx, 2026, time.March)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, day(3), pending[0].Day)
	assert.Equal(t, 30, pending[0].OvertimeMin)

	// Zero year lists every month.
	all, err := l.PendingOvertime(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	total, err := l.PendingTotalMinutes(ctx, 2026, time.March)
	require.NoError(t, err)
	assert.Equal(t, 30, total)
}

func TestPendingOvertime_ExcludesRepricedDays(t *testing.T) {
	// Repricing a regular day records its overtime pay immediately, so a
	// saved overtime shift is already paid out and never shows as pending.
	ctx := context.Background()
	mem := store.NewMemory()

	rec, err := payroll.Reprice(
		shift.Record{Day: day(6), Activation: "09:00", End: "19:00"},
		payroll.NewCalendar(nil), decimal.RequireFromString("539.35"), 60)
	require.NoError(t, err)
	require.Equal(t, 60, rec.OvertimeMin)
	require.Positive(t, rec.OvertimePayCents)
	require.NoError(t, mem.Save(ctx, rec))

	total, err := ledger.New(mem).PendingTotalMinutes(ctx, 2026, time.March)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestDistributeAllPending_RespectsHalfBoundaries(t *testing.T) {
	// GIVEN pending surplus in both halves of March with deficits in each
	// WHEN distributing everything pending
	// THEN each source only fills deficits within its own half
	ctx := context.Background()
	mem := store.NewMemory()
	saveAll(t, mem,
		shift.Record{Day: day(4), UndertimeMin: 25},
		shift.Record{Day: day(10), OvertimeMin: 40},
		shift.Record{Day: day(18), UndertimeMin: 90},
		shift.Record{Day: day(24), OvertimeMin: 50},
	)

	reassigned, err := ledger.New(mem).DistributeAllPending(ctx, 2026, time.March)
	require.NoError(t, err)

	// First half: 25 of 40 consumed. Second half: all 50 consumed.
	assert.Equal(t, 75, reassigned)
	assert.Equal(t, 0, mustLoad(t, mem, day(4)).UndertimeMin)
	assert.Equal(t, 15, mustLoad(t, mem, day(10)).OvertimeMin)
	assert.Equal(t, 40, mustLoad(t, mem, day(18)).UndertimeMin)
	assert.Equal(t, 0, mustLoad(t, mem, day(24)).OvertimeMin)
}

func TestDistributeAllPending_NothingPending(t *testing.T) {
	reassigned, err := ledger.New(store.NewMemory()).DistributeAllPending(
		context.Background(), 2026, time.March)
	require.NoError(t, err)
	assert.Equal(t, 0, reassigned)
}
