package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/shift-ledger/money"
)

// =============================================================================
// CENTS CODEC
// =============================================================================

func TestToCents_RoundsHalfUp(t *testing.T) {
	cases := []struct {
		amount string
		want   int64
	}{
		{"0", 0},
		{"0.01", 1},
		{"1.00", 100},
		{"539.35", 53935},
		{"809.025", 80903}, // half rounds up
		{"809.024", 80902},
		{"90610.5", 9061050},
	}
	for _, tc := range cases {
		got := money.ToCents(decimal.RequireFromString(tc.amount))
		assert.Equal(t, tc.want, got, "amount %s", tc.amount)
	}
}

func TestFromCents_TwoDecimalPlaces(t *testing.T) {
	assert.Equal(t, "539.35", money.FromCents(53935).StringFixed(2))
	assert.Equal(t, "0.01", money.FromCents(1).StringFixed(2))
	assert.Equal(t, "0.00", money.FromCents(0).StringFixed(2))
}

func TestCents_RoundTrip(t *testing.T) {
	// For all integer cents c, ToCents(FromCents(c)) == c.
	for _, c := range []int64{0, 1, 7, 99, 100, 101, 53935, 9061050, 123456789} {
		assert.Equal(t, c, money.ToCents(money.FromCents(c)), "cents %d", c)
	}
}

// =============================================================================
// CLOCK FORMATTING
// =============================================================================

func TestFormatClock(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{60, "1:00"},
		{95, "1:35"},
		{-95, "-1:35"},
		{600, "10:00"},
		{1505, "25:05"}, // hours are not wrapped
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.FormatClock(tc.minutes))
	}
}

func TestFormatClockPadded(t *testing.T) {
	assert.Equal(t, "01:00", money.FormatClockPadded(60))
	assert.Equal(t, "09:05", money.FormatClockPadded(545))
	assert.Equal(t, "00:00", money.FormatClockPadded(-10))
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:30", 570, false},
		{"9:30", 570, false},
		{"0:00", 0, false},
		{"23:59", 1439, false},
		{" 8:15 ", 495, false},
		{"", 0, true},
		{"9", 0, true},
		{"9:60", 0, true},
		{"24:00", 0, true},
		{"-1:00", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tc := range cases {
		got, err := money.ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
