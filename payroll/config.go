package payroll

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// CONFIG - Typed view over the flat settings table
// =============================================================================

// Config is the per-profile payroll configuration.
type Config struct {
	// BaseMonthly is the fixed monthly salary the hourly rate is derived
	// from.
	BaseMonthly decimal.Decimal

	// LunchMinutes is the unpaid lunch break length.
	LunchMinutes int
}

// LoadConfig reads payroll settings, falling back to defaults for absent
// keys.
func LoadConfig(ctx context.Context, settings shift.Settings) (Config, error) {
	salaryStr, err := settings.LoadSetting(ctx, shift.SettingSalary, shift.DefaultSalary)
	if err != nil {
		return Config{}, fmt.Errorf("load salary setting: %w", err)
	}
	salary, err := decimal.NewFromString(salaryStr)
	if err != nil {
		return Config{}, fmt.Errorf("stored salary %q: %w", salaryStr, err)
	}

	lunchStr, err := settings.LoadSetting(ctx, shift.SettingLunchMin, shift.DefaultLunchMin)
	if err != nil {
		return Config{}, fmt.Errorf("load lunch setting: %w", err)
	}
	lunch, err := strconv.Atoi(lunchStr)
	if err != nil || lunch < 0 {
		return Config{}, fmt.Errorf("stored lunch minutes %q: invalid", lunchStr)
	}

	return Config{BaseMonthly: salary, LunchMinutes: lunch}, nil
}

// Save writes the configuration back. Last write wins.
func (c Config) Save(ctx context.Context, settings shift.Settings) error {
	if err := settings.SaveSetting(ctx, shift.SettingSalary, c.BaseMonthly.String()); err != nil {
		return fmt.Errorf("save salary setting: %w", err)
	}
	if err := settings.SaveSetting(ctx, shift.SettingLunchMin, strconv.Itoa(c.LunchMinutes)); err != nil {
		return fmt.Errorf("save lunch setting: %w", err)
	}
	return nil
}

// RequiredMinutes is the regular-day shift window for this configuration.
func (c Config) RequiredMinutes() int {
	return RequiredMinutes(c.LunchMinutes)
}
