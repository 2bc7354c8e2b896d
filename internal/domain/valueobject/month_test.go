package valueobject

import (
	"testing"
	"time"
)

func TestMonth_Date(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		day   int
		want  string
	}{
		{"regular day", NewMonth(2024, time.March), 5, "2024-03-05"},
		{"31 in february of leap year", NewMonth(2024, time.February), 31, "2024-02-29"},
		{"31 in february", NewMonth(2023, time.February), 31, "2023-02-28"},
		{"31 in april", NewMonth(2024, time.April), 31, "2024-04-30"},
		{"30 in february", NewMonth(2024, time.February), 30, "2024-02-29"},
		{"zero clamps to first", NewMonth(2024, time.June), 0, "2024-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.month.Date(tt.day).Format("2006-01-02")
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestMonth_AddMonths(t *testing.T) {
	tests := []struct {
		from Month
		n    int
		want string
	}{
		{NewMonth(2024, time.January), 0, "2024-01"},
		{NewMonth(2024, time.November), 2, "2025-01"},
		{NewMonth(2024, time.January), -1, "2023-12"},
		{NewMonth(2024, time.January), 24, "2026-01"},
	}

	for _, tt := range tests {
		if got := tt.from.AddMonths(tt.n).String(); got != tt.want {
			t.Errorf("%s + %d: expected %s, got %s", tt.from, tt.n, tt.want, got)
		}
	}
}

func TestMonth_MonthsSince(t *testing.T) {
	a := NewMonth(2025, time.February)
	b := NewMonth(2024, time.November)

	if got := a.MonthsSince(b); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := b.MonthsSince(a); got != -3 {
		t.Errorf("expected -3, got %d", got)
	}
	if !b.Before(a) || !a.After(b) {
		t.Error("expected ordering to follow MonthsSince")
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if m != NewMonth(2024, time.February) {
		t.Errorf("expected 2024-02, got %s", m)
	}
	if m.DaysIn() != 29 {
		t.Errorf("expected 29 days, got %d", m.DaysIn())
	}

	for _, bad := range []string{"", "2024", "2024-13", "02-2024", "2024/02"} {
		if _, err := ParseMonth(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestMonth_Contains(t *testing.T) {
	m := NewMonth(2024, time.March)
	if !m.Contains(time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)) {
		t.Error("expected last day to be contained")
	}
	if m.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected next month not to be contained")
	}
}
