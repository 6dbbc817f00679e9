// Package entry defines the time interval model shared by the store,
// the aggregation code and the frontends.
package entry

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a closed work interval. Invariant: EndTime is strictly after
// StartTime, and DurationMS always equals EndTime - StartTime.
type Entry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMS  int64     `json:"duration_ms"`
}

// Running is an interval in progress: the end is not yet known.
// At most one Running exists system-wide.
type Running struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
}

// New creates a closed entry for the given bounds with a fresh id.
// The caller is responsible for having validated end > start.
func New(title, description string, start, end time.Time) Entry {
	return Entry{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		DurationMS:  end.Sub(start).Milliseconds(),
	}
}

// NewRunning creates a running interval starting now.
func NewRunning(title, description string, now time.Time) Running {
	return Running{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		StartTime:   now,
	}
}

// Duration returns the closed entry's duration.
func (e Entry) Duration() time.Duration {
	return time.Duration(e.DurationMS) * time.Millisecond
}

// Valid reports whether the entry's bounds are consistent (end after start).
func (e Entry) Valid() bool {
	return e.EndTime.After(e.StartTime)
}

// Stop closes the running interval at the given instant.
func (r Running) Stop(end time.Time) Entry {
	return Entry{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     end,
		DurationMS:  end.Sub(r.StartTime).Milliseconds(),
	}
}

// Elapsed returns how long the running interval has been open.
func (r Running) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.StartTime)
}
