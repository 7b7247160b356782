package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/warp/shift-ledger/money"
)

// =============================================================================
// SHIFT PAY - Base pay, tiered overtime, weekend premium
// =============================================================================

const (
	// TierOneMinutes is how much regular-day overtime is paid at the lower
	// multiplier before the higher one kicks in.
	TierOneMinutes = 120

	// LongWeekendMinutes is the weekend-shift length above which the lunch
	// break becomes unpaid.
	LongWeekendMinutes = 240
)

var (
	sixty   = decimal.NewFromInt(60)
	tierOne = decimal.RequireFromString("1.5")
	tierTwo = decimal.RequireFromString("2.0")
)

// DayBasePay is the fixed pay for a completed ordinary 8-hour day,
// regardless of actual overtime - overtime is billed separately.
func DayBasePay(hourlyRate decimal.Decimal) int64 {
	return money.ToCents(hourlyRate.Mul(eight).Round(2))
}

// OvertimePay prices overtime minutes.
//
// Weekend/holiday overtime is flat 2.0x for the whole duration. Regular-day
// overtime is two-tiered: the first 120 minutes at 1.5x, anything beyond at
// 2.0x. Tiers are priced independently and rounding happens once, after the
// sum.
func OvertimePay(overtimeMin int, hourlyRate decimal.Decimal, weekend bool) int64 {
	if overtimeMin <= 0 {
		return 0
	}
	if weekend {
		pay := hourlyRate.Mul(tierTwo).Mul(minutesAsHours(overtimeMin))
		return money.ToCents(pay.Round(2))
	}

	first := decimal.NewFromInt(int64(min(overtimeMin, TierOneMinutes)))
	rest := decimal.NewFromInt(int64(max(0, overtimeMin-TierOneMinutes)))
	payFirst := hourlyRate.Mul(tierOne).Mul(first.Div(sixty))
	payRest := hourlyRate.Mul(tierTwo).Mul(rest.Div(sixty))
	return money.ToCents(payFirst.Add(payRest).Round(2))
}

// WeekendPay prices an entire weekend/holiday shift as flat-rate overtime.
// Lunch is unpaid only on long weekend shifts: durations over 240 minutes
// have the configured lunch break deducted before pricing.
func WeekendPay(durationMin int, hourlyRate decimal.Decimal, lunchMin int) int64 {
	workMinutes := durationMin
	if workMinutes > LongWeekendMinutes {
		workMinutes -= lunchMin
	}
	return OvertimePay(workMinutes, hourlyRate, true)
}

func minutesAsHours(m int) decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Div(sixty)
}
