/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the
  internal record model from the external contract. Money crosses the
  wire as 2-decimal strings; minutes stay integers with a display
  clock string alongside.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/shift-ledger/money"
	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ShiftDTO represents one day's record in API responses.
type ShiftDTO struct {
	Day           string    `json:"day"`
	Activation    string    `json:"activation,omitempty"`
	End           string    `json:"end,omitempty"`
	DurationMin   int       `json:"duration_min"`
	DurationClock string    `json:"duration_clock"`
	UndertimeMin  int       `json:"undertime_min"`
	OvertimeMin   int       `json:"overtime_min"`
	DayPay        string    `json:"day_pay"`
	OvertimePay   string    `json:"overtime_pay"`
	ExpectedEnd   string    `json:"expected_end,omitempty"`
	Notes         []NoteDTO `json:"notes,omitempty"`
}

// NoteDTO is one audit entry.
type NoteDTO struct {
	Recorded string `json:"recorded,omitempty"`
	Text     string `json:"text"`
}

// UpsertShiftRequest sets a day's clock times. An optional note is
// appended to the record's audit trail.
type UpsertShiftRequest struct {
	Activation string `json:"activation"`
	End        string `json:"end"`
	Note       string `json:"note,omitempty"`
}

// ClockRequest carries an optional explicit time for start/end actions;
// empty means "now".
type ClockRequest struct {
	Time string `json:"time,omitempty"`
}

// DayDTO is one cell of the month view.
type DayDTO struct {
	Day         string    `json:"day"`
	Weekday     string    `json:"weekday"`
	NonWorking  bool      `json:"non_working"`
	HolidayName string    `json:"holiday_name,omitempty"`
	Shift       *ShiftDTO `json:"shift,omitempty"`
}

// WeekDTO is the worked-minutes total of one calendar week of the month.
type WeekDTO struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	WorkedMin   int    `json:"worked_min"`
	WorkedClock string `json:"worked_clock"`
}

// MonthDTO is the full month view: records, weekly totals, the two
// half-month payday figures and the month's unpaid surplus.
type MonthDTO struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []DayDTO  `json:"days"`
	Weeks []WeekDTO `json:"weeks"`

	HourlyRate string `json:"hourly_rate"`

	// FirstHalfPay covers days 1-15 of this month (paid on the 29th).
	// PrevSecondHalfPay covers day 16 to end of the previous month
	// (paid on the 14th).
	FirstHalfPay      string `json:"first_half_pay"`
	PrevSecondHalfPay string `json:"prev_second_half_pay"`

	PendingOvertimeMin   int    `json:"pending_overtime_min"`
	PendingOvertimeClock string `json:"pending_overtime_clock"`
}

// DistributeRequest asks to redistribute one source day's surplus.
type DistributeRequest struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Half      int    `json:"half"`
	SourceDay string `json:"source_day"`
	Minutes   int    `json:"minutes"`
}

// DistributeResponse reports what a redistribution run consumed.
type DistributeResponse struct {
	RemainingMin int            `json:"remaining_min"`
	Used         map[string]int `json:"used"`
}

// DistributeAllRequest redistributes every pending day of a month.
type DistributeAllRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// DistributeAllResponse reports the total minutes reassigned.
type DistributeAllResponse struct {
	ReassignedMin int `json:"reassigned_min"`
}

// OvertimePayRequest records a manual payout against a day.
type OvertimePayRequest struct {
	Amount string `json:"amount"` // decimal currency, e.g. "150.00"
}

// PendingOvertimeDTO is one unpaid-surplus day.
type PendingOvertimeDTO struct {
	Day         string `json:"day"`
	OvertimeMin int    `json:"overtime_min"`
}

// SettingsDTO carries the payroll configuration.
type SettingsDTO struct {
	Salary   string `json:"salary"`
	LunchMin int    `json:"lunch_min"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toShiftDTO(rec shift.Record) ShiftDTO {
	dto := ShiftDTO{
		Day:           rec.Day.String(),
		Activation:    rec.Activation,
		End:           rec.End,
		DurationMin:   rec.DurationMin,
		DurationClock: money.FormatClock(rec.DurationMin),
		UndertimeMin:  rec.UndertimeMin,
		OvertimeMin:   rec.OvertimeMin,
		DayPay:        money.FromCents(rec.DayPayCents).StringFixed(2),
		OvertimePay:   money.FromCents(rec.OvertimePayCents).StringFixed(2),
	}
	for _, n := range rec.Notes {
		nd := NoteDTO{Text: n.Text}
		if !n.Recorded.IsZero() {
			nd.Recorded = n.Recorded.String()
		}
		dto.Notes = append(dto.Notes, nd)
	}
	return dto
}
