package service

import (
	"errors"
	"log"
	"sync"

	"github.com/xoliva/jornada/internal/holiday"
	"github.com/xoliva/jornada/internal/storage"
)

// Holiday service errors.
var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDuplicateDate    = errors.New("date is already registered")
	ErrUnknownDate      = errors.New("date is not registered")
	ErrNoVacationLeft   = errors.New("no vacation days remaining")
	ErrNoVacationSpent  = errors.New("no vacation days have been used")
	ErrInvalidAllowance = errors.New("vacation allowance must not be negative")
)

// HolidayService owns the holiday registry and the vacation allowance,
// persisting both to a single JSON file on every mutation.
type HolidayService struct {
	mu        sync.Mutex
	path      string
	registry  *holiday.Registry
	allowance holiday.Allowance
}

// NewHolidayService loads persisted state from path. A corrupted file is
// replaced by defaults with a logged warning.
func NewHolidayService(path string) *HolidayService {
	state, corrupted := storage.LoadHolidays(path)
	if corrupted {
		log.Printf("warning: holidays file is corrupted, starting with defaults")
	}
	return &HolidayService{
		path:      path,
		registry:  holiday.NewRegistry(state.Dates),
		allowance: holiday.Allowance{Total: state.Total, Used: state.Used},
	}
}

// AddDate registers a holiday date.
func (s *HolidayService) AddDate(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.Contains(date) {
		return ErrDuplicateDate
	}
	if !s.registry.Add(date) {
		return ErrInvalidDate
	}
	s.persistLocked()
	return nil
}

// RemoveDate unregisters a holiday date.
func (s *HolidayService) RemoveDate(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.registry.Remove(date) {
		return ErrUnknownDate
	}
	s.persistLocked()
	return nil
}

// Dates returns all registered dates in ascending order.
func (s *HolidayService) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Dates()
}

// Registry returns an independent copy of the current registry, safe to
// read from other goroutines while mutations continue.
func (s *HolidayService) Registry() *holiday.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return holiday.NewRegistry(s.registry.Dates())
}

// Allowance returns the current vacation budget.
func (s *HolidayService) Allowance() holiday.Allowance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allowance
}

// UseVacation spends one vacation day.
func (s *HolidayService) UseVacation() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.allowance.Use() {
		return ErrNoVacationLeft
	}
	s.persistLocked()
	return nil
}

// RefundVacation returns one spent vacation day.
func (s *HolidayService) RefundVacation() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.allowance.Refund() {
		return ErrNoVacationSpent
	}
	s.persistLocked()
	return nil
}

// SetAllowanceTotal changes the yearly budget, keeping used days.
func (s *HolidayService) SetAllowanceTotal(total int) error {
	if total < 0 {
		return ErrInvalidAllowance
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowance.Total = total
	s.persistLocked()
	return nil
}

func (s *HolidayService) persistLocked() {
	state := storage.HolidayState{
		Total: s.allowance.Total,
		Used:  s.allowance.Used,
		Dates: s.registry.Dates(),
	}
	if err := storage.SaveHolidays(s.path, state); err != nil {
		log.Printf("warning: failed to persist holidays: %v", err)
	}
}
