package entry

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	start := time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	e := New("review", "pull requests", start, end)
	if e.ID == "" {
		t.Error("expected a generated id")
	}
	if e.DurationMS != int64(2*time.Hour/time.Millisecond) {
		t.Errorf("expected 2h in ms, got %d", e.DurationMS)
	}
	if !e.Valid() {
		t.Error("expected valid entry")
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	start := time.Now()
	a := New("a", "", start, start.Add(time.Hour))
	b := New("b", "", start, start.Add(time.Hour))
	if a.ID == b.ID {
		t.Error("expected distinct ids")
	}
}

func TestEntry_Valid(t *testing.T) {
	start := time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)

	bad := Entry{StartTime: start, EndTime: start}
	if bad.Valid() {
		t.Error("zero-length interval should be invalid")
	}
	bad.EndTime = start.Add(-time.Minute)
	if bad.Valid() {
		t.Error("inverted interval should be invalid")
	}
}

func TestRunning_Stop(t *testing.T) {
	start := time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)
	r := NewRunning("work", "", start)

	e := r.Stop(start.Add(90 * time.Minute))
	if e.ID != r.ID {
		t.Error("closed entry should keep the running id")
	}
	if e.DurationMS != int64(90*time.Minute/time.Millisecond) {
		t.Errorf("expected 90m in ms, got %d", e.DurationMS)
	}
	if e.DurationMS != e.EndTime.Sub(e.StartTime).Milliseconds() {
		t.Error("duration must equal end minus start")
	}
}

func TestRunning_Elapsed(t *testing.T) {
	start := time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)
	r := NewRunning("work", "", start)

	if got := r.Elapsed(start.Add(45 * time.Minute)); got != 45*time.Minute {
		t.Errorf("expected 45m, got %v", got)
	}
}

func TestEntry_Duration(t *testing.T) {
	e := Entry{DurationMS: 3600000}
	if e.Duration() != time.Hour {
		t.Errorf("expected 1h, got %v", e.Duration())
	}
}
