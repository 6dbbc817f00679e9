package service

import (
	"time"

	"github.com/xoliva/jornada/internal/store"
	"github.com/xoliva/jornada/internal/summary"
)

// SummaryService derives read models from the current store and holiday
// state. It carries the application clock so frontends never call
// time.Now directly.
type SummaryService struct {
	store    *store.Store
	holidays *HolidayService
	loc      *time.Location
	now      func() time.Time
}

func (s *SummaryService) clock() time.Time {
	return s.now().In(s.loc)
}

// TodayTotal returns today's tracked milliseconds (closed entries only).
func (s *SummaryService) TodayTotal() int64 {
	return summary.TodayTotal(s.store.Entries(), s.clock())
}

// Week returns the summary for the current Monday-Sunday week.
func (s *SummaryService) Week() summary.WeekSummary {
	return summary.Week(s.store.Entries(), s.holidays.Registry(), s.clock())
}

// Balance returns the cumulative worked-minus-expected balance.
func (s *SummaryService) Balance() summary.Balance {
	return summary.GlobalBalance(s.store.Entries(), s.holidays.Registry(), s.clock())
}

// Days returns all entries grouped per calendar date for display.
func (s *SummaryService) Days() []summary.DayGroup {
	return summary.DayGroups(s.store.Entries())
}

// WeekdayHours returns hours per weekday for the current week, index 0
// being Monday.
func (s *SummaryService) WeekdayHours() [7]float64 {
	return summary.WeekdayHours(s.store.Entries(), s.clock())
}
