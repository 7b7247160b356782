package payroll

import (
	"time"

	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// HOLIDAY CALENDAR - Immutable, built once at startup
// =============================================================================

// Calendar is a precomputed set of public holidays with human-readable
// names. It is constructed once for a fixed multi-year range and shared by
// reference; nothing mutates it after construction.
type Calendar struct {
	names map[string]string // day key -> holiday name
}

// NewCalendar builds a calendar from explicit dates.
func NewCalendar(holidays map[shift.Date]string) *Calendar {
	names := make(map[string]string, len(holidays))
	for d, name := range holidays {
		names[d.String()] = name
	}
	return &Calendar{names: names}
}

// IsHoliday reports whether the day is a public holiday.
func (c *Calendar) IsHoliday(d shift.Date) bool {
	if c == nil {
		return false
	}
	_, ok := c.names[d.String()]
	return ok
}

// Name returns the holiday's name, if the day is one.
func (c *Calendar) Name(d shift.Date) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.names[d.String()]
	return name, ok
}

// NonWorking reports whether the day is a non-working day for pay
// purposes: a Saturday/Sunday or a public holiday. This is the single
// predicate that gates the regular-day vs weekend pricing path.
func (c *Calendar) NonWorking(d shift.Date) bool {
	return d.IsWeekend() || c.IsHoliday(d)
}

// NewRussianCalendar builds the fixed public-holiday table for the given
// inclusive year range.
func NewRussianCalendar(fromYear, toYear int) *Calendar {
	holidays := make(map[shift.Date]string)
	for y := fromYear; y <= toYear; y++ {
		// New Year holidays run Jan 1-9; Jan 7 is Christmas within them.
		for day := 1; day <= 9; day++ {
			holidays[shift.NewDate(y, time.January, day)] = "New Year holidays"
		}
		holidays[shift.NewDate(y, time.January, 7)] = "Orthodox Christmas"
		holidays[shift.NewDate(y, time.February, 23)] = "Defender of the Fatherland Day"
		holidays[shift.NewDate(y, time.March, 8)] = "International Women's Day"
		holidays[shift.NewDate(y, time.May, 1)] = "Spring and Labour Day"
		holidays[shift.NewDate(y, time.May, 9)] = "Victory Day"
		holidays[shift.NewDate(y, time.June, 12)] = "Russia Day"
		holidays[shift.NewDate(y, time.November, 4)] = "Unity Day"
		holidays[shift.NewDate(y, time.December, 31)] = "New Year's Eve"
	}
	return &Calendar{names: toKeyed(holidays)}
}

func toKeyed(holidays map[shift.Date]string) map[string]string {
	names := make(map[string]string, len(holidays))
	for d, name := range holidays {
		names[d.String()] = name
	}
	return names
}
