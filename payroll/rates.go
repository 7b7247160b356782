/*
Package payroll derives pay from recorded shift times.

PURPOSE:
  Three calculators, leaf first:
  - rates.go:    business-day count and the monthly hourly rate
  - pay.go:      day base pay, tiered overtime, weekend premium
  - shift.go:    repricing a whole day's record from its clock times

THE RATE IS NOT FIXED:
  The same base monthly salary is spread over each month's business days
  and a nominal 8-hour day, so the hourly rate fluctuates month to month
  and must be recomputed before pricing any shift in that month.

PRECISION:
  All rate and pay math runs on decimal.Decimal, quantized to 2 places
  with half-up rounding, converted to integer cents exactly once.

SEE ALSO:
  - money: the cents codec
  - ledger: moves overtime minutes between days after pricing
*/
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-ledger/shift"
)

// NominalDayHours is the length of an ordinary paid working day.
const NominalDayHours = 8

var eight = decimal.NewFromInt(NominalDayHours)

// WorkingDays counts the business days of a month: every day of the month
// exactly once, excluding Saturdays, Sundays and public holidays. Days of
// adjacent months are never counted.
func WorkingDays(year int, month time.Month, cal *Calendar) int {
	count := 0
	for _, d := range shift.WholeMonth(year, month).Days() {
		if d.IsWeekend() || cal.IsHoliday(d) {
			continue
		}
		count++
	}
	return count
}

// HourlyRate derives the month's hourly rate from the fixed base monthly
// amount: base / workingDays / 8, quantized to 2 places half-up.
//
// A month with no working days yields 0.00 - handled, not fatal. Callers
// treat a zero rate as "no pricing possible this month".
func HourlyRate(year int, month time.Month, cal *Calendar, base decimal.Decimal) decimal.Decimal {
	wd := WorkingDays(year, month, cal)
	if wd <= 0 {
		return decimal.Zero.Round(2)
	}
	return base.Div(decimal.NewFromInt(int64(wd))).Div(eight).Round(2)
}
