// Package summary derives read models from the entry collection and the
// holiday registry. Everything here is a pure function of
// (entries, holidays, now); nothing is cached or incrementally patched,
// which is fine for a single user with a few thousand records.
package summary

import (
	"sort"
	"time"

	"github.com/xoliva/jornada/internal/entry"
	"github.com/xoliva/jornada/internal/holiday"
	"github.com/xoliva/jornada/internal/timeutil"
)

// WorkdayMS is the expected length of a weekday in milliseconds.
const WorkdayMS = int64(8 * time.Hour / time.Millisecond)

// WeekTargetHours is the base weekly target before holiday reductions.
const WeekTargetHours = 40.0

// DailyTotal is the total tracked time for one calendar date.
type DailyTotal struct {
	Date    string // YYYY-MM-DD
	TotalMS int64
}

// WeekSummary describes the Monday-Sunday week containing "now".
type WeekSummary struct {
	WeekStart     string // YYYY-MM-DD (Monday)
	WeekEnd       string // YYYY-MM-DD (Sunday)
	HoursWorked   float64
	OvertimeHours float64 // sum of per-day excess over 8h, not week-total excess
	TargetHours   float64 // 40 minus 8 per weekday holiday in the week
}

// Balance is the cumulative signed difference between worked and expected
// hours since the first recorded entry.
type Balance struct {
	Hours float64
}

// DayGroup is one calendar date with its entries for display.
type DayGroup struct {
	Date    string // YYYY-MM-DD
	Entries []entry.Entry
	TotalMS int64
}

// DailyTotals groups entries by the calendar date of their start time and
// sums durations, sorted descending by date.
func DailyTotals(entries []entry.Entry) []DailyTotal {
	totals := make(map[string]int64)
	for _, e := range entries {
		totals[timeutil.DateKey(e.StartTime)] += e.DurationMS
	}

	out := make([]DailyTotal, 0, len(totals))
	for date, ms := range totals {
		out = append(out, DailyTotal{Date: date, TotalMS: ms})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// TodayTotal sums the durations of entries starting on now's calendar date.
func TodayTotal(entries []entry.Entry, now time.Time) int64 {
	var total int64
	for _, e := range entries {
		if timeutil.SameDay(e.StartTime.In(now.Location()), now) {
			total += e.DurationMS
		}
	}
	return total
}

// Week computes the summary for the Monday-Sunday week containing now.
func Week(entries []entry.Entry, reg *holiday.Registry, now time.Time) WeekSummary {
	weekStart := timeutil.StartOfWeek(now)
	weekEnd := timeutil.EndOfWeek(now)

	perDay := make(map[string]int64)
	for _, e := range entries {
		start := e.StartTime.In(now.Location())
		if timeutil.IsInRange(start, weekStart, weekEnd) {
			perDay[timeutil.DateKey(start)] += e.DurationMS
		}
	}

	var workedMS, overtimeMS int64
	for _, dayMS := range perDay {
		workedMS += dayMS
		if excess := dayMS - WorkdayMS; excess > 0 {
			overtimeMS += excess
		}
	}

	weekdayHolidays := reg.WeekdayHolidaysInRange(weekStart, weekEnd)

	return WeekSummary{
		WeekStart:     timeutil.DateKey(weekStart),
		WeekEnd:       timeutil.DateKey(weekEnd),
		HoursWorked:   timeutil.HoursFromMS(workedMS),
		OvertimeHours: timeutil.HoursFromMS(overtimeMS),
		TargetHours:   WeekTargetHours - 8*float64(len(weekdayHolidays)),
	}
}

// GlobalBalance computes worked-minus-expected hours since the first entry.
// Weekday work is measured against an 8h/day expectation for every
// non-holiday weekday from the first entry's date through today; weekend
// work is pure bonus with no baseline.
func GlobalBalance(entries []entry.Entry, reg *holiday.Registry, now time.Time) Balance {
	if len(entries) == 0 {
		return Balance{}
	}

	first := entries[0].StartTime.In(now.Location())
	var weekdayMS, weekendMS int64
	for _, e := range entries {
		start := e.StartTime.In(now.Location())
		if start.Before(first) {
			first = start
		}
		if timeutil.IsWeekday(start) {
			weekdayMS += e.DurationMS
		} else {
			weekendMS += e.DurationMS
		}
	}

	expected := 0
	day := timeutil.StartOfDay(first)
	last := timeutil.StartOfDay(now)
	for !day.After(last) {
		if timeutil.IsWeekday(day) && !reg.Contains(timeutil.DateKey(day)) {
			expected++
		}
		day = day.AddDate(0, 0, 1)
	}

	weekdayHours := timeutil.HoursFromMS(weekdayMS)
	weekendHours := timeutil.HoursFromMS(weekendMS)
	return Balance{Hours: (weekdayHours - float64(expected)*8) + weekendHours}
}

// DayGroups groups all entries by start date for display: days descending,
// entries ascending within a day, each group carrying its total.
func DayGroups(entries []entry.Entry) []DayGroup {
	byDate := make(map[string][]entry.Entry)
	for _, e := range entries {
		key := timeutil.DateKey(e.StartTime)
		byDate[key] = append(byDate[key], e)
	}

	out := make([]DayGroup, 0, len(byDate))
	for date, dayEntries := range byDate {
		sort.Slice(dayEntries, func(i, j int) bool {
			return dayEntries[i].StartTime.Before(dayEntries[j].StartTime)
		})
		var total int64
		for _, e := range dayEntries {
			total += e.DurationMS
		}
		out = append(out, DayGroup{Date: date, Entries: dayEntries, TotalMS: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// WeekdayHours returns hours worked per weekday (index 0 = Monday) for the
// week containing now. Used by the weekly chart.
func WeekdayHours(entries []entry.Entry, now time.Time) [7]float64 {
	weekStart := timeutil.StartOfWeek(now)
	weekEnd := timeutil.EndOfWeek(now)

	var hours [7]float64
	for _, e := range entries {
		start := e.StartTime.In(now.Location())
		if !timeutil.IsInRange(start, weekStart, weekEnd) {
			continue
		}
		idx := int(start.Weekday()) - 1
		if idx < 0 { // Sunday
			idx = 6
		}
		hours[idx] += timeutil.HoursFromMS(e.DurationMS)
	}
	return hours
}
