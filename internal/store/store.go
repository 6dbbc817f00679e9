// Package store owns the entry collection and the single optional running
// interval. Every mutation persists the new state and republishes it to
// subscribers, so consumers always observe a fully updated snapshot.
package store

import (
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xoliva/jornada/internal/config"
	"github.com/xoliva/jornada/internal/entry"
	"github.com/xoliva/jornada/internal/storage"
	"github.com/xoliva/jornada/internal/timeutil"
)

// Store errors surfaced to frontends.
var (
	ErrInvalidRange = errors.New("end time must be after start time")
	ErrNotFound     = errors.New("no entry matches the given id")
	ErrAmbiguousID  = errors.New("id prefix matches more than one entry")
)

// Snapshot is the value published to subscribers after every mutation.
type Snapshot struct {
	Entries []entry.Entry // sorted descending by start time
	Running *entry.Running
}

// Store is the single source of truth for tracked intervals.
type Store struct {
	mu sync.Mutex

	entriesPath string
	runningPath string

	entries []entry.Entry
	running *entry.Running

	marginEnabled bool
	margin        time.Duration
	loc           *time.Location

	now      func() time.Time
	warnings []storage.ParseWarning

	subs   map[int]chan Snapshot
	nextID int
}

// Option configures a Store at construction.
type Option func(*Store)

// WithNow overrides the store's clock. Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads persisted state and returns a ready store. Corrupted entry
// lines are skipped and kept available via Warnings. A restored running
// interval whose start lies in the future is stale (clock skew or
// corruption) and is discarded rather than committed as a negative
// duration entry.
func Open(entriesPath, runningPath string, cfg config.Config, opts ...Option) (*Store, error) {
	s := &Store{
		entriesPath:   entriesPath,
		runningPath:   runningPath,
		marginEnabled: cfg.MarginEnabled,
		margin:        cfg.Margin(),
		loc:           cfg.Location(),
		now:           time.Now,
		subs:          make(map[int]chan Snapshot),
	}
	for _, opt := range opts {
		opt(s)
	}

	result, err := storage.ReadEntries(entriesPath)
	if err != nil {
		return nil, err
	}
	s.entries = result.Entries
	s.warnings = result.Warnings
	s.sortEntries()

	running, err := storage.LoadRunning(runningPath)
	if err != nil {
		log.Printf("warning: could not restore running interval, starting idle: %v", err)
		_ = storage.ClearRunning(runningPath)
	} else if running != nil {
		if running.StartTime.After(s.now()) {
			log.Printf("warning: restored running interval starts in the future, discarding")
			_ = storage.ClearRunning(runningPath)
		} else {
			s.running = running
		}
	}

	return s, nil
}

// Warnings returns parse warnings collected while loading the entries file.
func (s *Store) Warnings() []storage.ParseWarning {
	return s.warnings
}

// SetMargin updates the auto-round policy. Minutes outside 1-60 are clamped.
func (s *Store) SetMargin(enabled bool, minutes int) {
	if minutes < config.MinMarginMinutes {
		minutes = config.MinMarginMinutes
	}
	if minutes > config.MaxMarginMinutes {
		minutes = config.MaxMarginMinutes
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marginEnabled = enabled
	s.margin = time.Duration(minutes) * time.Minute
}

// Start begins tracking a new interval. When a timer is already running
// this is a logged no-op returning nil, per the Running -> Running
// non-transition.
func (s *Store) Start(title, description string) *entry.Running {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running != nil {
		log.Printf("warning: a timer is already running, stop it first")
		return nil
	}

	r := entry.NewRunning(strings.TrimSpace(title), strings.TrimSpace(description), s.now().In(s.loc))
	s.running = &r
	s.persistRunningLocked()
	s.publishLocked()
	return &r
}

// Stop closes the running interval, applies the auto-round policy when
// enabled and appends the resulting entry. The bool result reports
// whether the interval was adjusted. Returns nil when idle.
func (s *Store) Stop() (*entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running == nil {
		return nil, false
	}

	now := s.now().In(s.loc)
	closed := s.running.Stop(now)
	closed, rounded := s.autoRoundLocked(closed, now)

	s.running = nil
	s.insertLocked(closed)
	s.persistRunningLocked()
	s.persistEntriesLocked()
	s.publishLocked()
	return &closed, rounded
}

// autoRoundLocked applies the round-to-8h correction: when today's total
// (completed entries plus the raw interval) lands within the margin of 8h,
// the interval is adjusted so the day hits exactly 8:00:00. The adjustment
// is skipped when the remainder to 8h is not positive.
func (s *Store) autoRoundLocked(closed entry.Entry, now time.Time) (entry.Entry, bool) {
	if !s.marginEnabled {
		return closed, false
	}

	var todayCompletedMS int64
	for _, e := range s.entries {
		if timeutil.SameDay(e.StartTime.In(s.loc), now) {
			todayCompletedMS += e.DurationMS
		}
	}

	workday := int64(8 * time.Hour / time.Millisecond)
	todayTotal := todayCompletedMS + closed.DurationMS
	diff := todayTotal - workday
	if diff < 0 {
		diff = -diff
	}
	if diff > s.margin.Milliseconds() {
		return closed, false
	}

	adjustedMS := workday - todayCompletedMS
	if adjustedMS <= 0 {
		return closed, false
	}

	closed.DurationMS = adjustedMS
	closed.EndTime = closed.StartTime.Add(time.Duration(adjustedMS) * time.Millisecond)
	return closed, true
}

// Cancel discards the running interval without creating an entry.
// Returns the discarded interval, or nil when idle.
func (s *Store) Cancel() *entry.Running {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running == nil {
		return nil
	}
	r := s.running
	s.running = nil
	s.persistRunningLocked()
	s.publishLocked()
	return r
}

// Add validates and inserts a manual interval.
func (s *Store) Add(title, description string, start, end time.Time) (entry.Entry, error) {
	if !end.After(start) {
		return entry.Entry{}, ErrInvalidRange
	}

	e := entry.New(strings.TrimSpace(title), strings.TrimSpace(description), start, end)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(e)
	s.persistEntriesLocked()
	s.publishLocked()
	return e, nil
}

// AddEntry inserts a caller-built entry, re-sorting the collection.
// Id uniqueness is the caller's responsibility.
func (s *Store) AddEntry(e entry.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(e)
	s.persistEntriesLocked()
	s.publishLocked()
}

// UpdateEntry replaces the title and description of the entry with the
// given id, leaving its times untouched. Returns false if the id is
// unknown.
func (s *Store) UpdateEntry(id, title, description string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return false
	}
	s.entries[idx].Title = strings.TrimSpace(title)
	s.entries[idx].Description = strings.TrimSpace(description)
	s.persistEntriesLocked()
	s.publishLocked()
	return true
}

// UpdateEntryTimes rewrites the bounds of the entry with the given id.
// Rejects end <= start without mutating anything.
func (s *Store) UpdateEntryTimes(id string, start, end time.Time) bool {
	if !end.After(start) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return false
	}
	s.entries[idx].StartTime = start
	s.entries[idx].EndTime = end
	s.entries[idx].DurationMS = end.Sub(start).Milliseconds()
	s.sortEntries()
	s.persistEntriesLocked()
	s.publishLocked()
	return true
}

// Delete removes the entry with the given id. Absent ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.persistEntriesLocked()
	s.publishLocked()
}

// Find resolves an id or unique id prefix to an entry.
func (s *Store) Find(idPrefix string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var match *entry.Entry
	for i := range s.entries {
		if strings.HasPrefix(s.entries[i].ID, idPrefix) {
			if match != nil {
				return entry.Entry{}, ErrAmbiguousID
			}
			match = &s.entries[i]
		}
	}
	if match == nil {
		return entry.Entry{}, ErrNotFound
	}
	return *match, nil
}

// Entries returns a copy of the collection, sorted descending by start.
func (s *Store) Entries() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Running returns the running interval, or nil when idle.
func (s *Store) Running() *entry.Running {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running == nil {
		return nil
	}
	r := *s.running
	return &r
}

// Subscribe registers a consumer. The current snapshot is delivered
// immediately; each subsequent mutation delivers a fresh one. Slow
// consumers only ever see the latest value. The returned cancel func
// must be called to release the subscription.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan Snapshot, 1)
	ch <- s.snapshotLocked()
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Store) snapshotLocked() Snapshot {
	entries := make([]entry.Entry, len(s.entries))
	copy(entries, s.entries)
	snap := Snapshot{Entries: entries}
	if s.running != nil {
		r := *s.running
		snap.Running = &r
	}
	return snap
}

func (s *Store) publishLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		// Replace any undelivered snapshot so subscribers always get the
		// latest value without the store ever blocking.
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func (s *Store) insertLocked(e entry.Entry) {
	s.entries = append(s.entries, e)
	s.sortEntries()
}

func (s *Store) indexOfLocked(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) sortEntries() {
	sort.Slice(s.entries, func(i, j int) bool {
		return s.entries[i].StartTime.After(s.entries[j].StartTime)
	})
}

func (s *Store) persistEntriesLocked() {
	if err := storage.WriteEntries(s.entriesPath, s.entries); err != nil {
		log.Printf("warning: failed to persist entries: %v", err)
	}
}

func (s *Store) persistRunningLocked() {
	var err error
	if s.running == nil {
		err = storage.ClearRunning(s.runningPath)
	} else {
		err = storage.SaveRunning(s.runningPath, *s.running)
	}
	if err != nil {
		log.Printf("warning: failed to persist running interval: %v", err)
	}
}
