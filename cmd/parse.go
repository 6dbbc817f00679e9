package cmd

import (
	"fmt"
	"time"

	"github.com/xoliva/jornada/internal/timeutil"
)

// parseClock resolves an "HH:MM" string onto the given calendar date.
func parseClock(value string, day time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}

// parseDay resolves a --date flag. Empty means today.
func parseDay(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return timeutil.StartOfDay(now), nil
	}
	day, err := timeutil.ParseDateKey(value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return day, nil
}
