/*
handlers.go - HTTP API handlers for the shift tracker

PURPOSE:
  Exposes the payroll core via REST. Handles HTTP request/response, JSON
  serialization, and delegates all calculation to payroll and ledger.

ENDPOINTS:
  Shifts:
    GET    /api/shifts/{day}               One day's record
    PUT    /api/shifts/{day}               Set clock times, reprice, save
    DELETE /api/shifts/{day}               Remove a record
    POST   /api/shifts/{day}/start         Record activation time
    POST   /api/shifts/{day}/end           Record end time
    POST   /api/shifts/{day}/overtime-pay  Manual overtime payout

  Months:
    GET    /api/months/{year}/{month}      Month view with totals

  Overtime:
    GET    /api/overtime/pending           Unpaid surplus days
    POST   /api/overtime/distribute        Redistribute one source day
    POST   /api/overtime/distribute-all    Redistribute a whole month

  Settings:
    GET    /api/settings
    PUT    /api/settings

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input (nothing was written)
  - 404: Record not found
  - 500: Storage or internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/warp/shift-ledger/ledger"
	"github.com/warp/shift-ledger/money"
	"github.com/warp/shift-ledger/payroll"
	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    shift.Store
	Settings shift.Settings
	Calendar *payroll.Calendar
	Ledger   *ledger.Ledger

	// Now is swappable so clock-driven handlers are testable.
	Now func() time.Time
}

// NewHandler creates a handler over a store that also carries settings.
func NewHandler(store shift.Store, settings shift.Settings, cal *payroll.Calendar) *Handler {
	return &Handler{
		Store:    store,
		Settings: settings,
		Calendar: cal,
		Ledger:   ledger.New(store),
		Now:      time.Now,
	}
}

func (h *Handler) config(r *http.Request) (payroll.Config, error) {
	return payroll.LoadConfig(r.Context(), h.Settings)
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// GetShift returns a single day's record.
func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	day, err := shift.ParseDate(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day (use YYYY-MM-DD)", err)
		return
	}

	rec, ok, err := h.Store.Load(r.Context(), day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shift", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Shift not found", nil)
		return
	}

	dto := toShiftDTO(rec)
	if rec.Started() && !rec.Ended() {
		if cfg, err := h.config(r); err == nil {
			if end, err := payroll.ExpectedEnd(rec.Activation, cfg.LunchMinutes); err == nil {
				dto.ExpectedEnd = end
			}
		}
	}
	writeJSON(w, http.StatusOK, dto)
}

// UpsertShift sets a day's clock times, reprices it and saves.
// Malformed times are rejected before anything is written.
func (h *Handler) UpsertShift(w http.ResponseWriter, r *http.Request) {
	day, err := shift.ParseDate(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day (use YYYY-MM-DD)", err)
		return
	}

	var req UpsertShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := payroll.ValidateClock(req.Activation); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid activation time (use HH:MM)", err)
		return
	}
	if err := payroll.ValidateClock(req.End); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end time (use HH:MM)", err)
		return
	}

	rec, _, err := h.Store.Load(r.Context(), day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shift", err)
		return
	}
	rec.Day = day
	rec.Activation = req.Activation
	rec.End = req.End
	if req.Note != "" {
		rec.Notes = rec.Notes.AppendOn(shift.Date{}, req.Note)
	}

	rec, err = h.repriceAndSave(r, rec)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toShiftDTO(rec))
}

// DeleteShift removes a day's record.
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	day, err := shift.ParseDate(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day (use YYYY-MM-DD)", err)
		return
	}
	if err := h.Store.Delete(r.Context(), day); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete shift", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StartShift records the activation time for a day.
func (h *Handler) StartShift(w http.ResponseWriter, r *http.Request) {
	h.clockAction(w, r, func(rec shift.Record, at string) (shift.Record, error) {
		if rec.Started() {
			return rec, shift.ErrShiftAlreadyStarted
		}
		rec.Activation = at
		return rec, nil
	})
}

// EndShift records the end time for a started day.
func (h *Handler) EndShift(w http.ResponseWriter, r *http.Request) {
	h.clockAction(w, r, func(rec shift.Record, at string) (shift.Record, error) {
		if !rec.Started() {
			return rec, shift.ErrShiftNotStarted
		}
		if rec.Ended() {
			return rec, shift.ErrShiftAlreadyEnded
		}
		rec.End = at
		return rec, nil
	})
}

func (h *Handler) clockAction(w http.ResponseWriter, r *http.Request, apply func(shift.Record, string) (shift.Record, error)) {
	day, err := shift.ParseDate(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day (use YYYY-MM-DD)", err)
		return
	}

	var req ClockRequest
	if r.Body != nil {
		// Body is optional; an empty one means "now".
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	at := req.Time
	if at == "" {
		at = h.Now().Format("15:04")
	} else if err := payroll.ValidateClock(at); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid time (use HH:MM)", err)
		return
	}

	rec, _, err := h.Store.Load(r.Context(), day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shift", err)
		return
	}
	rec.Day = day

	rec, err = apply(rec, at)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	rec, err = h.repriceAndSave(r, rec)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toShiftDTO(rec))
}

func (h *Handler) repriceAndSave(r *http.Request, rec shift.Record) (shift.Record, error) {
	cfg, err := h.config(r)
	if err != nil {
		return rec, err
	}
	rate := payroll.HourlyRate(rec.Day.Year(), rec.Day.Month(), h.Calendar, cfg.BaseMonthly)
	rec, err = payroll.Reprice(rec, h.Calendar, rate, cfg.LunchMinutes)
	if err != nil {
		return rec, err
	}
	if err := h.Store.Save(r.Context(), rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// =============================================================================
// MONTH VIEW
// =============================================================================

// GetMonth returns the month's records, weekly worked totals, the two
// half-month payday figures and the unpaid overtime surplus.
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err1 := strconv.Atoi(chi.URLParam(r, "year"))
	monthNum, err2 := strconv.Atoi(chi.URLParam(r, "month"))
	if err1 != nil || err2 != nil || monthNum < 1 || monthNum > 12 {
		writeError(w, http.StatusBadRequest, "Invalid year/month", nil)
		return
	}
	month := time.Month(monthNum)
	ctx := r.Context()

	cfg, err := h.config(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}

	// The week rows cover Monday-aligned calendar weeks, which spill into
	// adjacent months; load the whole grid range at once.
	gridStart := mondayOnOrBefore(shift.NewDate(year, month, 1))
	gridEnd := sundayOnOrAfter(shift.EndOfMonth(year, month))
	records, err := h.Store.ListBetween(ctx, shift.Period{Start: gridStart, End: gridEnd})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}
	byDay := make(map[string]shift.Record, len(records))
	for _, rec := range records {
		byDay[rec.Day.String()] = rec
	}

	out := MonthDTO{
		Year:       year,
		Month:      monthNum,
		HourlyRate: payroll.HourlyRate(year, month, h.Calendar, cfg.BaseMonthly).StringFixed(2),
	}

	for _, d := range shift.WholeMonth(year, month).Days() {
		cell := DayDTO{
			Day:        d.String(),
			Weekday:    d.Weekday().String(),
			NonWorking: h.Calendar.NonWorking(d),
		}
		if name, ok := h.Calendar.Name(d); ok {
			cell.HolidayName = name
		}
		if rec, ok := byDay[d.String()]; ok {
			dto := toShiftDTO(rec)
			cell.Shift = &dto
		}
		out.Days = append(out.Days, cell)
	}

	for start := gridStart; start.BeforeOrEqual(gridEnd); start = start.AddDays(7) {
		end := start.AddDays(6)
		var week []shift.Record
		for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
			if rec, ok := byDay[d.String()]; ok {
				week = append(week, rec)
			}
		}
		worked := ledger.WeekWorkedMinutes(week, cfg.LunchMinutes)
		out.Weeks = append(out.Weeks, WeekDTO{
			Start:       start.String(),
			End:         end.String(),
			WorkedMin:   worked,
			WorkedClock: money.FormatClock(worked),
		})
	}

	firstHalf, err := h.Ledger.HalfMonthEarnings(ctx, year, month, 1)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to total first half", err)
		return
	}
	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, time.December
	}
	prevSecond, err := h.Ledger.HalfMonthEarnings(ctx, prevYear, prevMonth, 2)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to total previous second half", err)
		return
	}
	pending, err := h.Ledger.PendingTotalMinutes(ctx, year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to total pending overtime", err)
		return
	}

	out.FirstHalfPay = money.FromCents(firstHalf).StringFixed(2)
	out.PrevSecondHalfPay = money.FromCents(prevSecond).StringFixed(2)
	out.PendingOvertimeMin = pending
	out.PendingOvertimeClock = money.FormatClock(pending)

	writeJSON(w, http.StatusOK, out)
}

func mondayOnOrBefore(d shift.Date) shift.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

func sundayOnOrAfter(d shift.Date) shift.Date {
	offset := (7 - int(d.Weekday())) % 7
	return d.AddDays(offset)
}

// =============================================================================
// OVERTIME HANDLERS
// =============================================================================

// Distribute redistributes one source day's surplus within a half-month.
func (h *Handler) Distribute(w http.ResponseWriter, r *http.Request) {
	var req DistributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	sourceDay, err := shift.ParseDate(req.SourceDay)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid source_day (use YYYY-MM-DD)", err)
		return
	}

	remaining, used, err := h.Ledger.DistributeOvertime(
		r.Context(), req.Year, time.Month(req.Month), req.Half, sourceDay, req.Minutes)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DistributeResponse{RemainingMin: remaining, Used: used})
}

// DistributeAll redistributes every pending day of a month.
func (h *Handler) DistributeAll(w http.ResponseWriter, r *http.Request) {
	var req DistributeAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	reassigned, err := h.Ledger.DistributeAllPending(r.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DistributeAllResponse{ReassignedMin: reassigned})
}

// AddOvertimePay records a manual payout against a day.
func (h *Handler) AddOvertimePay(w http.ResponseWriter, r *http.Request) {
	day, err := shift.ParseDate(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid day (use YYYY-MM-DD)", err)
		return
	}

	var req OvertimePayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return
	}

	if err := h.Ledger.AddOvertimePay(r.Context(), day, money.ToCents(amount)); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPendingOvertime lists unpaid-surplus days, optionally for one month.
func (h *Handler) ListPendingOvertime(w http.ResponseWriter, r *http.Request) {
	year, month := 0, time.January
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		m, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil || m < 1 || m > 12 {
			writeError(w, http.StatusBadRequest, "Invalid month", err)
			return
		}
		year, month = parsed, time.Month(m)
	}

	pending, err := h.Ledger.PendingOvertime(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list pending overtime", err)
		return
	}
	dtos := make([]PendingOvertimeDTO, len(pending))
	for i, p := range pending {
		dtos[i] = PendingOvertimeDTO{Day: p.Day.String(), OvertimeMin: p.OvertimeMin}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// GetSettings returns the payroll configuration.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.config(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsDTO{
		Salary:   cfg.BaseMonthly.String(),
		LunchMin: cfg.LunchMinutes,
	})
}

// PutSettings replaces the payroll configuration. Last write wins.
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	salary, err := decimal.NewFromString(req.Salary)
	if err != nil || salary.IsNegative() {
		writeError(w, http.StatusBadRequest, "Invalid salary", err)
		return
	}
	if req.LunchMin < 0 {
		writeError(w, http.StatusBadRequest, "Invalid lunch_min", nil)
		return
	}

	cfg := payroll.Config{BaseMonthly: salary, LunchMinutes: req.LunchMin}
	if err := cfg.Save(r.Context(), h.Settings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case shift.IsClientError(err):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case shift.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
