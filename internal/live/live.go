// Package live projects the running interval onto the persisted totals.
// Persisted entries never change while a timer runs; the open interval's
// elapsed time is overlaid on top of the stored aggregates at read time.
package live

import (
	"context"
	"time"

	"github.com/xoliva/jornada/internal/config"
	"github.com/xoliva/jornada/internal/entry"
	"github.com/xoliva/jornada/internal/holiday"
	"github.com/xoliva/jornada/internal/store"
	"github.com/xoliva/jornada/internal/summary"
	"github.com/xoliva/jornada/internal/timeutil"
)

// DefaultInterval is the refresh cadence for live watchers.
const DefaultInterval = time.Second

// Stats is one live reading: stored aggregates with the running
// interval's elapsed time folded in.
type Stats struct {
	Running *entry.Running
	Elapsed time.Duration // zero when idle

	TodayMS      int64 // today's total including the running interval
	WeekHours    float64
	TargetHours  float64
	BalanceHours float64

	// Finish is the projected end of the workday: the instant today's
	// total reaches 8h, plus the lunch break when lunch hasn't started
	// yet. HasFinish is false when idle or when the day is already done.
	Finish    time.Time
	HasFinish bool
}

// Calculator derives Stats from store snapshots. Registry is a provider
// func so holiday edits made after construction are always picked up.
type Calculator struct {
	Config   config.Config
	Registry func() *holiday.Registry
	Now      func() time.Time
}

// NewCalculator builds a calculator using the real clock.
func NewCalculator(cfg config.Config, reg func() *holiday.Registry) Calculator {
	return Calculator{Config: cfg, Registry: reg, Now: time.Now}
}

// Stats computes a live reading for the given snapshot.
func (c Calculator) Stats(snap store.Snapshot) Stats {
	now := c.Now().In(c.Config.Location())
	reg := c.Registry()

	week := summary.Week(snap.Entries, reg, now)
	balance := summary.GlobalBalance(snap.Entries, reg, now)

	stats := Stats{
		TodayMS:      summary.TodayTotal(snap.Entries, now),
		WeekHours:    week.HoursWorked,
		TargetHours:  week.TargetHours,
		BalanceHours: balance.Hours,
	}

	if snap.Running == nil {
		return stats
	}

	elapsed := snap.Running.Elapsed(now)
	if elapsed < 0 {
		elapsed = 0
	}
	elapsedHours := timeutil.Hours(elapsed)

	stats.Running = snap.Running
	stats.Elapsed = elapsed
	stats.TodayMS += elapsed.Milliseconds()
	stats.WeekHours += elapsedHours
	stats.BalanceHours += elapsedHours

	remaining := time.Duration(summary.WorkdayMS-stats.TodayMS) * time.Millisecond
	if remaining > 0 {
		finish := now.Add(remaining)
		if lunch, ok := c.Config.LunchStart(now); ok && now.Before(lunch) {
			finish = finish.Add(c.Config.LunchDuration())
		}
		stats.Finish = finish
		stats.HasFinish = true
	}

	return stats
}

// Watch delivers a fresh Stats on every store mutation and once per
// interval while the context is live, so the elapsed time keeps moving
// between mutations. Blocks until ctx is cancelled.
func Watch(ctx context.Context, st *store.Store, c Calculator, interval time.Duration, fn func(Stats)) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	updates, cancel := st.Subscribe()
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	snap := <-updates
	fn(c.Stats(snap))

	for {
		select {
		case <-ctx.Done():
			return
		case next, ok := <-updates:
			if !ok {
				return
			}
			snap = next
			fn(c.Stats(snap))
		case <-ticker.C:
			fn(c.Stats(snap))
		}
	}
}
