package shift

import "time"

// =============================================================================
// PERIOD - Half-month pay period, the payroll and redistribution boundary
// =============================================================================

// Period is an inclusive day range. The system only ever builds half-month
// periods: days 1-15 of a month, or day 16 through the month's last day.
// Overtime redistribution never crosses a period boundary.
type Period struct {
	Start Date
	End   Date
}

// HalfMonth returns the requested half of a month.
// half 1 = days 1-15, half 2 = day 16 through end of month.
func HalfMonth(year int, month time.Month, half int) (Period, error) {
	switch half {
	case 1:
		return Period{
			Start: NewDate(year, month, 1),
			End:   NewDate(year, month, 15),
		}, nil
	case 2:
		return Period{
			Start: NewDate(year, month, 16),
			End:   EndOfMonth(year, month),
		}, nil
	default:
		return Period{}, ErrInvalidHalf
	}
}

// HalfOf returns which half of its month a day falls into.
func HalfOf(d Date) int {
	if d.Day() <= 15 {
		return 1
	}
	return 2
}

// PeriodForDay returns the half-month period containing the day.
func PeriodForDay(d Date) Period {
	p, _ := HalfMonth(d.Year(), d.Month(), HalfOf(d))
	return p
}

// WholeMonth returns the full month as a period.
func WholeMonth(year int, month time.Month) Period {
	return Period{Start: NewDate(year, month, 1), End: EndOfMonth(year, month)}
}

// Contains returns true if the day is within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days enumerates every day of the period in ascending order.
func (p Period) Days() []Date {
	var days []Date
	for cur := p.Start; cur.BeforeOrEqual(p.End); cur = cur.AddDays(1) {
		days = append(days, cur)
	}
	return days
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
