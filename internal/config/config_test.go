package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOrDefault_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MarginEnabled {
		t.Error("auto-round should default to off")
	}
	if cfg.MarginMinutes != 10 {
		t.Errorf("expected default margin 10, got %d", cfg.MarginMinutes)
	}
	if cfg.LunchHour != "14:00" {
		t.Errorf("expected default lunch hour 14:00, got %s", cfg.LunchHour)
	}
}

func TestLoadOrDefault_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `margin_enabled = true
margin_minutes = 15
lunch_hour = "13:30"
lunch_duration_minutes = 45
timezone = "UTC"
theme = "nord"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.MarginEnabled || cfg.MarginMinutes != 15 {
		t.Errorf("unexpected margin settings: %t/%d", cfg.MarginEnabled, cfg.MarginMinutes)
	}
	if cfg.LunchHour != "13:30" || cfg.LunchDurationMinutes != 45 {
		t.Errorf("unexpected lunch settings: %s/%d", cfg.LunchHour, cfg.LunchDurationMinutes)
	}
	if cfg.Theme != "nord" {
		t.Errorf("expected theme nord, got %s", cfg.Theme)
	}
}

func TestLoadOrDefault_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("margin_minutes = what"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("a broken config must not prevent startup, got %v", err)
	}
	if cfg.MarginMinutes != 10 {
		t.Errorf("expected defaults after parse failure, got margin %d", cfg.MarginMinutes)
	}
}

func TestNormalize_Clamps(t *testing.T) {
	cfg := Config{MarginMinutes: 500, LunchDurationMinutes: 999}
	cfg.Normalize()
	if cfg.MarginMinutes != MaxMarginMinutes {
		t.Errorf("expected margin clamped to %d, got %d", MaxMarginMinutes, cfg.MarginMinutes)
	}
	if cfg.LunchDurationMinutes != 180 {
		t.Errorf("expected lunch duration clamped to 180, got %d", cfg.LunchDurationMinutes)
	}

	cfg = Config{MarginMinutes: -5, LunchDurationMinutes: -5}
	cfg.Normalize()
	if cfg.MarginMinutes != MinMarginMinutes {
		t.Errorf("expected margin clamped to %d, got %d", MinMarginMinutes, cfg.MarginMinutes)
	}
	if cfg.LunchDurationMinutes != 0 {
		t.Errorf("expected lunch duration clamped to 0, got %d", cfg.LunchDurationMinutes)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}

	cfg.LunchHour = "25:00"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for impossible lunch hour")
	}

	cfg = DefaultConfig()
	cfg.Timezone = "Mars/Olympus"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestLocation(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Location() != time.Local {
		t.Error("expected local zone for default config")
	}

	cfg.Timezone = "UTC"
	if cfg.Location() != time.UTC {
		t.Error("expected UTC")
	}

	cfg.Timezone = "Mars/Olympus"
	if cfg.Location() != time.Local {
		t.Error("unknown zones must fall back to local")
	}
}

func TestLunchStart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LunchHour = "13:30"
	now := time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)

	lunch, ok := cfg.LunchStart(now)
	if !ok {
		t.Fatal("expected lunch start to resolve")
	}
	want := time.Date(2025, time.June, 11, 13, 30, 0, 0, time.UTC)
	if !lunch.Equal(want) {
		t.Errorf("expected %v, got %v", want, lunch)
	}

	cfg.LunchHour = "bogus"
	if _, ok := cfg.LunchStart(now); ok {
		t.Error("malformed lunch hour must not resolve")
	}
}

func TestMargin(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Margin() != 10*time.Minute {
		t.Errorf("expected 10m, got %v", cfg.Margin())
	}
}
