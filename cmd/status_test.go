package cmd

import (
	"strings"
	"testing"
)

func TestShowStatus_Idle(t *testing.T) {
	env := setupCmdTest(t)

	showStatus()

	output := env.stdout.String()
	if !strings.Contains(output, "No timer running") {
		t.Errorf("Expected idle message, got: %s", output)
	}
	if !strings.Contains(output, "Today:   00:00:00") {
		t.Errorf("Expected zero day total, got: %s", output)
	}
	if strings.Contains(output, "Estimated finish") {
		t.Errorf("No finish estimate while idle, got: %s", output)
	}
}

func TestShowStatus_Running(t *testing.T) {
	env := setupCmdTest(t)

	startTimer([]string{"deep", "work"})
	env.stdout.Reset()

	showStatus()

	output := env.stdout.String()
	if !strings.Contains(output, "Running: deep work") {
		t.Errorf("Expected running line, got: %s", output)
	}
	if !strings.Contains(output, "Started:") || !strings.Contains(output, "Elapsed:") {
		t.Errorf("Expected started and elapsed lines, got: %s", output)
	}
	if !strings.Contains(output, "Estimated finish:") {
		t.Errorf("Expected a finish estimate with a fresh timer, got: %s", output)
	}
}

func TestShowStatus_UntitledTimer(t *testing.T) {
	env := setupCmdTest(t)

	startTimer(nil)
	env.stdout.Reset()

	showStatus()

	if !strings.Contains(env.stdout.String(), "Running: (untitled)") {
		t.Errorf("Expected untitled placeholder, got: %s", env.stdout.String())
	}
}
