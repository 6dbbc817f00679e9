// Package holiday tracks user-declared vacation dates and the yearly
// vacation allowance. Dates are ISO calendar-date strings (YYYY-MM-DD),
// kept sorted and free of duplicates.
package holiday

import (
	"regexp"
	"slices"
	"time"

	"github.com/xoliva/jornada/internal/timeutil"
)

// DefaultTotal is the default yearly vacation allowance in days.
const DefaultTotal = 22

var dateKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Registry is a sorted set of holiday dates.
type Registry struct {
	dates []string
}

// NewRegistry builds a registry from persisted dates. Input is sorted and
// deduplicated; malformed dates are dropped rather than propagated.
func NewRegistry(dates []string) *Registry {
	r := &Registry{}
	for _, d := range dates {
		if validDate(d) {
			r.dates = append(r.dates, d)
		}
	}
	slices.Sort(r.dates)
	r.dates = slices.Compact(r.dates)
	return r
}

// validDate checks both the YYYY-MM-DD shape and that it names a real
// calendar date ("2025-13-01" fails here, not just at the regexp).
func validDate(date string) bool {
	if !dateKeyRe.MatchString(date) {
		return false
	}
	_, err := time.Parse(timeutil.DateKeyLayout, date)
	return err == nil
}

// Add inserts a date, keeping the set sorted. Returns false for malformed
// dates and duplicates, leaving the registry unchanged.
func (r *Registry) Add(date string) bool {
	if !validDate(date) {
		return false
	}
	idx, found := slices.BinarySearch(r.dates, date)
	if found {
		return false
	}
	r.dates = slices.Insert(r.dates, idx, date)
	return true
}

// Remove deletes a date. Returns false if it was not present.
func (r *Registry) Remove(date string) bool {
	idx, found := slices.BinarySearch(r.dates, date)
	if !found {
		return false
	}
	r.dates = slices.Delete(r.dates, idx, idx+1)
	return true
}

// Contains reports whether the date is a registered holiday.
func (r *Registry) Contains(date string) bool {
	_, found := slices.BinarySearch(r.dates, date)
	return found
}

// Dates returns a copy of all registered dates in ascending order.
func (r *Registry) Dates() []string {
	return slices.Clone(r.dates)
}

// Len returns the number of registered dates.
func (r *Registry) Len() int {
	return len(r.dates)
}

// WeekdayHolidaysInRange returns registered dates inside [start, end]
// inclusive that fall on Monday-Friday. Weekend holidays never count
// against expected hours since weekends carry no baseline expectation.
func (r *Registry) WeekdayHolidaysInRange(start, end time.Time) []string {
	var out []string
	for _, key := range r.dates {
		day, err := timeutil.ParseDateKey(key, start.Location())
		if err != nil {
			continue
		}
		if !timeutil.IsInRange(day, timeutil.StartOfDay(start), timeutil.EndOfDay(end)) {
			continue
		}
		if timeutil.IsWeekday(day) {
			out = append(out, key)
		}
	}
	return out
}

// Allowance is the yearly vacation budget.
type Allowance struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

// DefaultAllowance returns a fresh allowance with no days used.
func DefaultAllowance() Allowance {
	return Allowance{Total: DefaultTotal}
}

// Remaining returns the unspent vacation days.
func (a Allowance) Remaining() int {
	return a.Total - a.Used
}

// Use marks one more day as spent. Returns false when none remain.
func (a *Allowance) Use() bool {
	if a.Used >= a.Total {
		return false
	}
	a.Used++
	return true
}

// Refund returns one spent day. Returns false when nothing was used.
func (a *Allowance) Refund() bool {
	if a.Used <= 0 {
		return false
	}
	a.Used--
	return true
}
