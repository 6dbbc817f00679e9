// Package pomodoro implements a small work/break cycle timer. It is
// independent of the entry store; finishing a pomodoro does not record
// an interval.
package pomodoro

import "time"

// Phase is the current cycle phase.
type Phase int

const (
	Work Phase = iota
	Break
)

func (p Phase) String() string {
	if p == Break {
		return "break"
	}
	return "work"
}

// Durations configures the cycle. Minutes outside the allowed ranges
// are clamped (work 1-60, break 1-30).
type Durations struct {
	WorkMinutes  int
	BreakMinutes int
}

// DefaultDurations is the classic 25/5 cycle.
func DefaultDurations() Durations {
	return Durations{WorkMinutes: 25, BreakMinutes: 5}
}

func (d Durations) clamped() Durations {
	if d.WorkMinutes < 1 {
		d.WorkMinutes = 1
	}
	if d.WorkMinutes > 60 {
		d.WorkMinutes = 60
	}
	if d.BreakMinutes < 1 {
		d.BreakMinutes = 1
	}
	if d.BreakMinutes > 30 {
		d.BreakMinutes = 30
	}
	return d
}

// Timer is a countdown that alternates work and break phases. It is
// driven externally: the owner calls Tick once per second.
type Timer struct {
	durations Durations
	phase     Phase
	remaining time.Duration
	running   bool
	completed int // finished work phases
}

// New returns a stopped timer positioned at the start of a work phase.
func New(d Durations) *Timer {
	d = d.clamped()
	return &Timer{
		durations: d,
		phase:     Work,
		remaining: time.Duration(d.WorkMinutes) * time.Minute,
	}
}

// Start resumes the countdown.
func (t *Timer) Start() { t.running = true }

// Pause halts the countdown, keeping the remaining time.
func (t *Timer) Pause() { t.running = false }

// Reset stops the timer and rewinds the current phase to its full length.
func (t *Timer) Reset() {
	t.running = false
	t.remaining = t.phaseLength(t.phase)
}

// Skip jumps to the next phase, stopped.
func (t *Timer) Skip() {
	t.advance()
	t.running = false
}

// Tick advances the countdown by one second. Returns true when the tick
// completed a phase and the timer rolled over to the next one.
func (t *Timer) Tick() bool {
	if !t.running {
		return false
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		return false
	}
	t.advance()
	return true
}

func (t *Timer) advance() {
	if t.phase == Work {
		t.completed++
		t.phase = Break
	} else {
		t.phase = Work
	}
	t.remaining = t.phaseLength(t.phase)
}

func (t *Timer) phaseLength(p Phase) time.Duration {
	if p == Break {
		return time.Duration(t.durations.BreakMinutes) * time.Minute
	}
	return time.Duration(t.durations.WorkMinutes) * time.Minute
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase { return t.phase }

// Remaining returns the time left in the current phase.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.running }

// Completed returns the number of finished work phases.
func (t *Timer) Completed() int { return t.completed }
