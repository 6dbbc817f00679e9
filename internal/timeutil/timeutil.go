// Package timeutil provides calendar boundary helpers. All day and week
// math is done in the location of the time passed in; the application
// resolves its working timezone once and hands times in consistently.
package timeutil

import "time"

// DateKeyLayout is the calendar-date key format used throughout.
const DateKeyLayout = "2006-01-02"

// DateKey returns the calendar-date key (YYYY-MM-DD) for t in its location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as local midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, loc)
}

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns Monday 00:00:00 of the week containing t (ISO weeks).
// Handles the Sunday edge case where Go's Weekday() returns 0: a Sunday
// belongs to the week that ends on it.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// EndOfWeek returns Sunday 23:59:59.999999999 of the week containing t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// IsInRange checks if t falls within [start, end] inclusive.
func IsInRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// WeekdaysBetween counts Monday-Friday calendar days in [from, to]
// inclusive, walking whole days. from and to are treated as dates; their
// clock components are ignored.
func WeekdaysBetween(from, to time.Time) int {
	day := StartOfDay(from)
	last := StartOfDay(to)
	count := 0
	for !day.After(last) {
		if IsWeekday(day) {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// Hours converts a duration to decimal hours.
func Hours(d time.Duration) float64 {
	return d.Hours()
}

// HoursFromMS converts milliseconds to decimal hours.
func HoursFromMS(ms int64) float64 {
	return float64(ms) / float64(time.Hour/time.Millisecond)
}
