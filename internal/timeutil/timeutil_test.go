package timeutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestDateKey(t *testing.T) {
	got := DateKey(date(2025, time.June, 11, 9, 30))
	if got != "2025-06-11" {
		t.Errorf("expected 2025-06-11, got %s", got)
	}
}

func TestParseDateKey(t *testing.T) {
	day, err := ParseDateKey("2025-06-11", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !day.Equal(date(2025, time.June, 11, 0, 0)) {
		t.Errorf("expected midnight June 11, got %v", day)
	}

	if _, err := ParseDateKey("2025-13-01", time.UTC); err == nil {
		t.Error("expected error for impossible month")
	}
	if _, err := ParseDateKey("not-a-date", time.UTC); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", date(2025, time.June, 11, 15, 30), date(2025, time.June, 9, 0, 0)},
		{"monday", date(2025, time.June, 9, 0, 0), date(2025, time.June, 9, 0, 0)},
		{"sunday belongs to the ending week", date(2025, time.June, 15, 10, 0), date(2025, time.June, 9, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEndOfWeek(t *testing.T) {
	end := EndOfWeek(date(2025, time.June, 11, 15, 30))
	// Last nanosecond of Sunday June 15
	if end.Day() != 15 || end.Month() != time.June || end.Hour() != 23 {
		t.Errorf("expected end of Sunday June 15, got %v", end)
	}
	if !end.Before(date(2025, time.June, 16, 0, 0)) {
		t.Error("end of week must precede next Monday")
	}
}

func TestIsWeekday(t *testing.T) {
	if !IsWeekday(date(2025, time.June, 11, 0, 0)) { // Wednesday
		t.Error("Wednesday should be a weekday")
	}
	if IsWeekday(date(2025, time.June, 14, 0, 0)) { // Saturday
		t.Error("Saturday should not be a weekday")
	}
	if IsWeekday(date(2025, time.June, 15, 0, 0)) { // Sunday
		t.Error("Sunday should not be a weekday")
	}
}

func TestSameDay(t *testing.T) {
	a := date(2025, time.June, 11, 0, 1)
	b := date(2025, time.June, 11, 23, 59)
	if !SameDay(a, b) {
		t.Error("expected same day")
	}
	if SameDay(a, date(2025, time.June, 12, 0, 0)) {
		t.Error("expected different days")
	}
}

func TestWeekdaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"single weekday", date(2025, time.June, 11, 9, 0), date(2025, time.June, 11, 17, 0), 1},
		{"full week", date(2025, time.June, 9, 0, 0), date(2025, time.June, 15, 0, 0), 5},
		{"weekend only", date(2025, time.June, 14, 0, 0), date(2025, time.June, 15, 0, 0), 0},
		{"two weeks", date(2025, time.June, 9, 0, 0), date(2025, time.June, 22, 0, 0), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestIsInRange(t *testing.T) {
	start := date(2025, time.June, 9, 0, 0)
	end := date(2025, time.June, 15, 0, 0)

	if !IsInRange(start, start, end) {
		t.Error("range start should be inclusive")
	}
	if !IsInRange(end, start, end) {
		t.Error("range end should be inclusive")
	}
	if IsInRange(date(2025, time.June, 16, 0, 0), start, end) {
		t.Error("day after the range should be excluded")
	}
}

func TestHoursFromMS(t *testing.T) {
	if got := HoursFromMS(3600000); got != 1.0 {
		t.Errorf("expected 1.0, got %f", got)
	}
	if got := HoursFromMS(5400000); got != 1.5 {
		t.Errorf("expected 1.5, got %f", got)
	}
	if got := HoursFromMS(0); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}

func TestEndOfDay(t *testing.T) {
	end := EndOfDay(date(2025, time.June, 11, 9, 0))
	if end.Day() != 11 {
		t.Errorf("end of day should stay on the same date, got %v", end)
	}
	if !end.Before(date(2025, time.June, 12, 0, 0)) {
		t.Error("end of day must precede next midnight")
	}
}
