package pomodoro

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	timer := New(DefaultDurations())

	if timer.Phase() != Work {
		t.Error("expected a fresh timer to start in the work phase")
	}
	if timer.Remaining() != 25*time.Minute {
		t.Errorf("expected 25m remaining, got %v", timer.Remaining())
	}
	if timer.Running() {
		t.Error("expected a fresh timer to be stopped")
	}
}

func TestNew_ClampsDurations(t *testing.T) {
	timer := New(Durations{WorkMinutes: 0, BreakMinutes: 999})
	if timer.Remaining() != time.Minute {
		t.Errorf("expected work clamped to 1m, got %v", timer.Remaining())
	}

	timer.Skip()
	if timer.Remaining() != 30*time.Minute {
		t.Errorf("expected break clamped to 30m, got %v", timer.Remaining())
	}
}

func TestTick_PausedIsNoop(t *testing.T) {
	timer := New(DefaultDurations())

	if timer.Tick() {
		t.Error("a paused timer must not roll over")
	}
	if timer.Remaining() != 25*time.Minute {
		t.Errorf("a paused timer must not count down, got %v", timer.Remaining())
	}
}

func TestTick_Countdown(t *testing.T) {
	timer := New(Durations{WorkMinutes: 1, BreakMinutes: 1})
	timer.Start()

	for i := 0; i < 59; i++ {
		if timer.Tick() {
			t.Fatalf("rolled over after %d seconds", i+1)
		}
	}
	if timer.Remaining() != time.Second {
		t.Errorf("expected 1s remaining, got %v", timer.Remaining())
	}

	if !timer.Tick() {
		t.Fatal("expected the final tick to roll over")
	}
	if timer.Phase() != Break {
		t.Error("expected the break phase after a completed work phase")
	}
	if timer.Completed() != 1 {
		t.Errorf("expected 1 completed work phase, got %d", timer.Completed())
	}
	if !timer.Running() {
		t.Error("rollover must keep the countdown going")
	}
}

func TestTick_BreakRollsBackToWork(t *testing.T) {
	timer := New(Durations{WorkMinutes: 1, BreakMinutes: 1})
	timer.Start()

	for i := 0; i < 120; i++ {
		timer.Tick()
	}
	if timer.Phase() != Work {
		t.Error("expected the work phase after a full cycle")
	}
	if timer.Completed() != 1 {
		t.Errorf("break completion must not count, got %d", timer.Completed())
	}
}

func TestSkip(t *testing.T) {
	timer := New(DefaultDurations())
	timer.Start()

	timer.Skip()
	if timer.Phase() != Break {
		t.Error("expected skip to jump to the break phase")
	}
	if timer.Running() {
		t.Error("expected skip to leave the timer stopped")
	}
	if timer.Remaining() != 5*time.Minute {
		t.Errorf("expected a full break, got %v", timer.Remaining())
	}
}

func TestReset(t *testing.T) {
	timer := New(DefaultDurations())
	timer.Start()
	timer.Tick()
	timer.Tick()

	timer.Reset()
	if timer.Running() {
		t.Error("expected reset to stop the timer")
	}
	if timer.Remaining() != 25*time.Minute {
		t.Errorf("expected the phase rewound to 25m, got %v", timer.Remaining())
	}
	if timer.Phase() != Work {
		t.Error("reset must not change the phase")
	}
}

func TestPause(t *testing.T) {
	timer := New(DefaultDurations())
	timer.Start()
	timer.Tick()

	timer.Pause()
	remaining := timer.Remaining()
	timer.Tick()
	if timer.Remaining() != remaining {
		t.Error("ticking while paused must not change the remaining time")
	}
}

func TestPhaseString(t *testing.T) {
	if Work.String() != "work" || Break.String() != "break" {
		t.Errorf("unexpected phase names: %s, %s", Work, Break)
	}
}
