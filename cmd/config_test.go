package cmd

import (
	"strings"
	"testing"
)

func TestShowConfig(t *testing.T) {
	env := setupCmdTest(t)

	showConfig()

	output := env.stdout.String()
	if !strings.Contains(output, "margin_enabled         = false") {
		t.Errorf("Expected margin_enabled line, got: %s", output)
	}
	if !strings.Contains(output, "margin_minutes         = 10") {
		t.Errorf("Expected margin_minutes line, got: %s", output)
	}
	if !strings.Contains(output, `lunch_hour             = "14:00"`) {
		t.Errorf("Expected lunch_hour line, got: %s", output)
	}
	if !strings.Contains(output, `timezone               = "UTC"`) {
		t.Errorf("Expected timezone line, got: %s", output)
	}
}

func TestSetConfig_Bool(t *testing.T) {
	env := setupCmdTest(t)

	setConfig("margin_enabled", "true")

	if !strings.Contains(env.stdout.String(), "Set margin_enabled") {
		t.Errorf("Expected confirmation, got: %s", env.stdout.String())
	}

	env.stdout.Reset()
	showConfig()
	if !strings.Contains(env.stdout.String(), "margin_enabled         = true") {
		t.Errorf("Expected the saved value, got: %s", env.stdout.String())
	}
}

func TestSetConfig_InvalidValue(t *testing.T) {
	env := setupCmdTest(t)

	setConfig("margin_minutes", "lots")

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), `Invalid value "lots" for margin_minutes`) {
		t.Errorf("Expected value error, got: %s", env.stderr.String())
	}
}

func TestSetConfig_UnknownKey(t *testing.T) {
	env := setupCmdTest(t)

	setConfig("coffee_breaks", "3")

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	errOutput := env.stderr.String()
	if !strings.Contains(errOutput, `Unknown key "coffee_breaks"`) {
		t.Errorf("Expected unknown-key error, got: %s", errOutput)
	}
	if !strings.Contains(errOutput, "Hint:") {
		t.Errorf("Expected hint, got: %s", errOutput)
	}
}

func TestSetConfig_RejectsBadTimezone(t *testing.T) {
	env := setupCmdTest(t)

	setConfig("timezone", "Mars/Olympus")

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Failed to save config") {
		t.Errorf("Expected save error, got: %s", env.stderr.String())
	}
}

func TestInitConfig(t *testing.T) {
	env := setupCmdTest(t)

	initConfig()
	if !strings.Contains(env.stdout.String(), "Wrote sample config to") {
		t.Errorf("Expected confirmation, got: %s", env.stdout.String())
	}

	initConfig()
	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1 on the second init, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Config file already exists") {
		t.Errorf("Expected exists error, got: %s", env.stderr.String())
	}
}
