package cmd

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	day := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)

	got, err := parseClock("09:30", day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.June, 11, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	bad := []string{"9:30am", "25:00", "09.30", "morning", ""}
	for _, value := range bad {
		if _, err := parseClock(value, day); err == nil {
			t.Errorf("expected %q to be rejected", value)
		}
	}
}

func TestParseDay(t *testing.T) {
	now := time.Date(2025, time.June, 11, 15, 42, 0, 0, time.UTC)

	got, err := parseDay("", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("empty date must resolve to today, expected %v, got %v", want, got)
	}

	got, err = parseDay("2025-06-09", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, err := parseDay("June 9th", now); err == nil {
		t.Error("expected a malformed date to be rejected")
	}
}
