package cmd

import (
	"strings"
	"testing"
)

func TestStartTimer_Success(t *testing.T) {
	env := setupCmdTest(t)

	startTimer([]string{"fixing", "the", "build"})

	output := env.stdout.String()
	if !strings.Contains(output, "Timer started: fixing the build") {
		t.Errorf("Expected start confirmation, got: %s", output)
	}
	if env.exitCode != -1 {
		t.Errorf("Unexpected exit code %d, stderr: %s", env.exitCode, env.stderr.String())
	}
}

func TestStartTimer_NoTitle(t *testing.T) {
	env := setupCmdTest(t)

	startTimer(nil)

	if !strings.Contains(env.stdout.String(), "Timer started") {
		t.Errorf("Expected start confirmation, got: %s", env.stdout.String())
	}
}

func TestStartTimer_AlreadyRunning(t *testing.T) {
	env := setupCmdTest(t)

	startTimer([]string{"first"})
	env.stdout.Reset()

	startTimer([]string{"second"})

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	errOutput := env.stderr.String()
	if !strings.Contains(errOutput, "Warning: A timer is already running") {
		t.Errorf("Expected warning, got: %s", errOutput)
	}
	if !strings.Contains(errOutput, "first") {
		t.Errorf("Expected the current timer's title, got: %s", errOutput)
	}
	if !strings.Contains(errOutput, "jornada stop") {
		t.Errorf("Expected the stop hint, got: %s", errOutput)
	}
}

func TestStopTimer_Success(t *testing.T) {
	env := setupCmdTest(t)

	startTimer([]string{"task"})
	env.stdout.Reset()

	stopTimer()

	output := env.stdout.String()
	if !strings.Contains(output, "Recorded:") {
		t.Errorf("Expected recorded line, got: %s", output)
	}
	if !strings.Contains(output, "Today:") {
		t.Errorf("Expected day total, got: %s", output)
	}
	if strings.Contains(output, "adjusted") {
		t.Errorf("Auto-round is off by default, got: %s", output)
	}
}

func TestStopTimer_NotRunning(t *testing.T) {
	env := setupCmdTest(t)

	stopTimer()

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Error: No timer is running") {
		t.Errorf("Expected error message, got: %s", env.stderr.String())
	}
}

func TestCancelTimer(t *testing.T) {
	env := setupCmdTest(t)

	startTimer([]string{"task"})
	env.stdout.Reset()

	cancelTimer()

	if !strings.Contains(env.stdout.String(), "Discarded timer") {
		t.Errorf("Expected discard confirmation, got: %s", env.stdout.String())
	}

	// Nothing was recorded.
	env.stdout.Reset()
	showDays()
	if !strings.Contains(env.stdout.String(), "No intervals recorded") {
		t.Errorf("Expected no intervals after cancel, got: %s", env.stdout.String())
	}
}

func TestCancelTimer_NotRunning(t *testing.T) {
	env := setupCmdTest(t)

	cancelTimer()

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Error: No timer is running") {
		t.Errorf("Expected error message, got: %s", env.stderr.String())
	}
}

func TestStartCommand_Run(t *testing.T) {
	env := setupCmdTest(t)

	startCmd.Run(startCmd, []string{"test", "task"})

	if !strings.Contains(env.stdout.String(), "Timer started: test task") {
		t.Errorf("Expected start confirmation, got: %s", env.stdout.String())
	}
}
