package dates

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	ts := time.Date(2025, 3, 9, 23, 45, 0, 0, time.UTC)
	if got := DayOf(ts); got != "2025-03-09" {
		t.Errorf("DayOf = %s, want 2025-03-09", got)
	}
}

func TestYesterdayAcrossMonthBoundary(t *testing.T) {
	clock := At(time.Date(2025, 3, 1, 0, 30, 0, 0, time.UTC))
	if got := Yesterday(clock); got != "2025-02-28" {
		t.Errorf("Yesterday = %s, want 2025-02-28", got)
	}
}

func TestYesterdayAcrossYearBoundary(t *testing.T) {
	clock := At(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	if got := Yesterday(clock); got != "2025-12-31" {
		t.Errorf("Yesterday = %s, want 2025-12-31", got)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		day  Day
		n    int
		want Day
	}{
		{"2025-06-15", 1, "2025-06-16"},
		{"2025-06-15", -1, "2025-06-14"},
		{"2025-06-15", 0, "2025-06-15"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2025-12-31", 1, "2026-01-01"},
		{"not-a-day", 3, "not-a-day"}, // unparseable input is returned unchanged
	}

	for _, tt := range tests {
		if got := tt.day.Add(tt.n); got != tt.want {
			t.Errorf("%s.Add(%d) = %s, want %s", tt.day, tt.n, got, tt.want)
		}
	}
}

func TestLastN(t *testing.T) {
	clock := At(time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC))
	days := LastN(clock, 7)

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0] != "2025-07-04" {
		t.Errorf("oldest day = %s, want 2025-07-04", days[0])
	}
	if days[6] != "2025-07-10" {
		t.Errorf("newest day = %s, want 2025-07-10", days[6])
	}
	for i := 1; i < len(days); i++ {
		if days[i-1].Add(1) != days[i] {
			t.Errorf("days not consecutive at index %d: %s -> %s", i, days[i-1], days[i])
		}
	}
}
