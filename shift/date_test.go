package shift

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-05-06")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.May || d.Day() != 6 {
		t.Errorf("got %s", d)
	}

	if _, err := ParseDate("06.05.2026"); err == nil {
		t.Error("expected error for non-ISO input")
	}
	if _, err := ParseDate("2026-02-30"); err == nil {
		t.Error("expected error for impossible day")
	}
}

func TestDate_StringRoundTrip(t *testing.T) {
	d := NewDate(2026, time.December, 31)
	parsed, err := ParseDate(d.String())
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("round trip lost the date: %s != %s", parsed, d)
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2026, time.January, 31)
	if got := d.AddDays(1).String(); got != "2026-02-01" {
		t.Errorf("AddDays: got %s", got)
	}
	if got := d.AddDays(-31).String(); got != "2025-12-31" {
		t.Errorf("AddDays negative: got %s", got)
	}
}

func TestDate_IsWeekend(t *testing.T) {
	if !NewDate(2026, time.May, 2).IsWeekend() {
		t.Error("Saturday should be a weekend")
	}
	if !NewDate(2026, time.May, 3).IsWeekend() {
		t.Error("Sunday should be a weekend")
	}
	if NewDate(2026, time.May, 4).IsWeekend() {
		t.Error("Monday should not be a weekend")
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, time.May, 6)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-05-06"` {
		t.Errorf("marshal: got %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("unmarshal: got %s", back)
	}
}

func TestEndOfMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  string
	}{
		{2026, time.January, "2026-01-31"},
		{2026, time.February, "2026-02-28"},
		{2028, time.February, "2028-02-29"}, // leap year
		{2026, time.December, "2026-12-31"},
	}
	for _, tc := range cases {
		if got := EndOfMonth(tc.year, tc.month).String(); got != tc.want {
			t.Errorf("EndOfMonth(%d, %s): got %s, want %s", tc.year, tc.month, got, tc.want)
		}
	}
}
