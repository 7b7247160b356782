/*
Package money converts between decimal currency, integer minor units, and
clock-style minute strings.

PURPOSE:
  Every other package prices work in integer cents and integer minutes.
  This package is the only place those representations are converted, so
  rounding policy lives in exactly one spot.

ROUNDING POLICY:
  Half-up, applied once per conversion. All arithmetic goes through
  decimal.Decimal - binary floats never touch a money value.

USAGE:
  cents := money.ToCents(decimal.RequireFromString("539.35"))  // 53935
  money.FormatClock(-95)                                       // "-1:35"

SEE ALSO:
  - payroll: uses ToCents after summing pay tiers
  - shift: stores cents and minutes on the Record
*/
package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToCents converts a decimal currency amount to integer cents,
// rounding half-up.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromCents converts integer cents back to a decimal currency amount
// quantized to two decimal places.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred).Round(2)
}

// FormatClock renders minutes as [-]H:MM. Only the minutes field is
// zero-padded; hours grow without limit.
func FormatClock(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}

// FormatClockPadded renders non-negative minutes as HH:MM. Used for
// settings values that round-trip through ParseClock.
func FormatClockPadded(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseClock parses a time of day, "H:MM" or "HH:MM", into minutes
// since midnight. Hours must be 0-23, minutes 0-59.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("parse clock %q: want H:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("parse clock %q: bad hours", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: bad minutes", s)
	}
	return h*60 + m, nil
}
