// Package format renders durations and decimal hours for display.
package format

import (
	"fmt"
	"time"
)

// Clock renders a duration as HH:MM:SS. Negative durations are clamped
// to zero; display surfaces never show negative elapsed time.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ClockMS renders a millisecond total as HH:MM:SS.
func ClockMS(ms int64) string {
	return Clock(time.Duration(ms) * time.Millisecond)
}

// HoursClock renders decimal hours as H:MM, e.g. 7.5 -> "7:30".
func HoursClock(hours float64) string {
	neg := hours < 0
	if neg {
		hours = -hours
	}
	totalMinutes := int(hours*60 + 0.5)
	out := fmt.Sprintf("%d:%02d", totalMinutes/60, totalMinutes%60)
	if neg {
		return "-" + out
	}
	return out
}

// Hours renders decimal hours with two decimals and an h suffix.
func Hours(hours float64) string {
	return fmt.Sprintf("%.2fh", hours)
}

// SignedHours renders decimal hours with an explicit sign, for balances.
func SignedHours(hours float64) string {
	return fmt.Sprintf("%+.2fh", hours)
}
