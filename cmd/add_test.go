package cmd

import (
	"strings"
	"testing"
)

func TestAddInterval_Success(t *testing.T) {
	env := setupCmdTest(t)

	addFrom, addTo, addDate = "09:00", "13:00", "2025-06-11"
	addInterval([]string{"morning", "session"})

	output := env.stdout.String()
	if !strings.Contains(output, "Recorded: 09:00 - 13:00  04:00:00") {
		t.Errorf("Expected recorded line, got: %s", output)
	}
	if env.exitCode != -1 {
		t.Errorf("Unexpected exit code %d, stderr: %s", env.exitCode, env.stderr.String())
	}

	env.stdout.Reset()
	showDays()
	if !strings.Contains(env.stdout.String(), "morning session") {
		t.Errorf("Expected the interval in the day listing, got: %s", env.stdout.String())
	}
}

func TestAddInterval_EndBeforeStart(t *testing.T) {
	env := setupCmdTest(t)

	addFrom, addTo, addDate = "13:00", "09:00", "2025-06-11"
	addInterval(nil)

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	errOutput := env.stderr.String()
	if !strings.Contains(errOutput, "end time must be after start time") {
		t.Errorf("Expected range error, got: %s", errOutput)
	}
	if !strings.Contains(errOutput, "Hint: --to must be later than --from") {
		t.Errorf("Expected hint, got: %s", errOutput)
	}
}

func TestAddInterval_BadClock(t *testing.T) {
	env := setupCmdTest(t)

	addFrom, addTo, addDate = "25:99", "13:00", "2025-06-11"
	addInterval(nil)

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Error:") {
		t.Errorf("Expected error message, got: %s", env.stderr.String())
	}
}

func TestAddInterval_BadDate(t *testing.T) {
	env := setupCmdTest(t)

	addFrom, addTo, addDate = "09:00", "13:00", "not-a-date"
	addInterval(nil)

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Error:") {
		t.Errorf("Expected error message, got: %s", env.stderr.String())
	}
}
