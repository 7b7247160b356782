package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-ledger/ledger"
	"github.com/warp/shift-ledger/shift"
	"github.com/warp/shift-ledger/shift/store"
)

func TestHalfMonthEarnings(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	saveAll(t, mem,
		shift.Record{Day: day(3), DayPayCents: 431480},
		shift.Record{Day: day(5), DayPayCents: 431480, OvertimePayCents: 80903},
		shift.Record{Day: day(20), DayPayCents: 431480}, // second half
	)
	l := ledger.New(mem)

	first, err := l.HalfMonthEarnings(ctx, 2026, time.March, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(431480+431480+80903), first)

	second, err := l.HalfMonthEarnings(ctx, 2026, time.March, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(431480), second)

	_, err = l.HalfMonthEarnings(ctx, 2026, time.March, 5)
	assert.ErrorIs(t, err, shift.ErrInvalidHalf)
}

func TestPeriodEarnings_EmptyPeriod(t *testing.T) {
	total, err := ledger.New(store.NewMemory()).PeriodEarnings(
		context.Background(), shift.WholeMonth(2026, time.March))
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestWeekWorkedMinutes(t *testing.T) {
	// Lunch is deducted only from days that ran past the nominal 8 hours.
	records := []shift.Record{
		{DurationMin: 540}, // 9h, lunch deducted -> 480
		{DurationMin: 480}, // exactly 8h, kept as is
		{DurationMin: 300}, // short day, kept as is
		{DurationMin: 0},   // not worked
	}
	assert.Equal(t, 1260, ledger.WeekWorkedMinutes(records, 60))
	assert.Equal(t, 1320, ledger.WeekWorkedMinutes(records, 0))
}
