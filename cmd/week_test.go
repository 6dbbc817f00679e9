package cmd

import (
	"strings"
	"testing"
)

func TestShowWeek(t *testing.T) {
	env := setupCmdTest(t)

	addFrom, addTo = "09:00", "17:00"
	addInterval([]string{"full", "day"})
	env.stdout.Reset()

	showWeek()

	output := env.stdout.String()
	if !strings.Contains(output, "Week ") {
		t.Errorf("Expected week header, got: %s", output)
	}
	if !strings.Contains(output, "Worked:   8.00h / 40.00h") {
		t.Errorf("Expected worked line, got: %s", output)
	}
	if !strings.Contains(output, "Overtime: 0.00h") {
		t.Errorf("Expected overtime line, got: %s", output)
	}
}

func TestShowWeek_Overtime(t *testing.T) {
	env := setupCmdTest(t)

	addFrom, addTo = "08:00", "17:30"
	addInterval(nil)
	env.stdout.Reset()

	showWeek()

	output := env.stdout.String()
	if !strings.Contains(output, "Worked:   9.50h / 40.00h") {
		t.Errorf("Expected worked line, got: %s", output)
	}
	if !strings.Contains(output, "Overtime: 1.50h") {
		t.Errorf("Expected 1.5h overtime, got: %s", output)
	}
}

func TestShowBalance(t *testing.T) {
	env := setupCmdTest(t)

	showBalance()

	if !strings.Contains(env.stdout.String(), "Balance: +0.00h") {
		t.Errorf("Expected zero balance with no entries, got: %s", env.stdout.String())
	}
}

func TestShowDays(t *testing.T) {
	env := setupCmdTest(t)

	addFrom, addTo, addDate = "09:00", "12:00", "2025-06-11"
	addInterval([]string{"past", "work"})
	env.stdout.Reset()

	showDays()

	output := env.stdout.String()
	if !strings.Contains(output, "2025-06-11 Wednesday  (03:00:00)") {
		t.Errorf("Expected day header, got: %s", output)
	}
	if !strings.Contains(output, "09:00 - 12:00  03:00:00  past work") {
		t.Errorf("Expected interval line, got: %s", output)
	}
}

func TestShowDays_Empty(t *testing.T) {
	env := setupCmdTest(t)

	showDays()

	if !strings.Contains(env.stdout.String(), "No intervals recorded") {
		t.Errorf("Expected empty message, got: %s", env.stdout.String())
	}
}
