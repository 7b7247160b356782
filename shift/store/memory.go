// Package store provides an in-memory shift.Store implementation for
// tests and development.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warp/shift-ledger/shift"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	records  map[string]shift.Record
	settings map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		records:  make(map[string]shift.Record),
		settings: make(map[string]string),
	}
}

func (m *Memory) Load(_ context.Context, day shift.Date) (shift.Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[day.String()]
	return rec, ok, nil
}

func (m *Memory) Save(_ context.Context, rec shift.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Full-field replace, matching the upsert contract.
	m.records[rec.Day.String()] = rec
	return nil
}

func (m *Memory) Delete(_ context.Context, day shift.Date) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, day.String())
	return nil
}

func (m *Memory) ListBetween(_ context.Context, period shift.Period) ([]shift.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []shift.Record
	for _, rec := range m.records {
		if period.Contains(rec.Day) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (m *Memory) FindPendingOvertime(_ context.Context, year int, month time.Month) ([]shift.PendingOvertime, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []shift.PendingOvertime
	for _, rec := range m.records {
		if rec.OvertimeMin <= 0 || rec.OvertimePayCents != 0 {
			continue
		}
		if year != 0 && (rec.Day.Year() != year || rec.Day.Month() != month) {
			continue
		}
		out = append(out, shift.PendingOvertime{Day: rec.Day, OvertimeMin: rec.OvertimeMin})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (m *Memory) LoadSetting(_ context.Context, key, def string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.settings[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *Memory) SaveSetting(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
	return nil
}
