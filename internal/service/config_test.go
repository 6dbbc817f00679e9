package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xoliva/jornada/internal/config"
)

func TestConfigService_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewConfigService(path, config.DefaultConfig())

	cfg := s.Current()
	cfg.MarginEnabled = true
	cfg.MarginMinutes = 15
	cfg.Theme = "nord"
	if err := s.Save(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s.Current(); !got.MarginEnabled || got.MarginMinutes != 15 {
		t.Error("Save must update the active configuration")
	}

	loaded, err := config.LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loaded.MarginEnabled || loaded.MarginMinutes != 15 || loaded.Theme != "nord" {
		t.Error("saved settings must round-trip through the file")
	}
}

func TestConfigService_SaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewConfigService(path, config.DefaultConfig())

	cfg := s.Current()
	cfg.Timezone = "Mars/Olympus"
	if err := s.Save(cfg); err == nil {
		t.Fatal("expected an error for an unknown timezone")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("a rejected config must not be written")
	}
}

func TestConfigService_SaveNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewConfigService(path, config.DefaultConfig())

	cfg := s.Current()
	cfg.MarginMinutes = 500
	if err := s.Save(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Current().MarginMinutes; got != config.MaxMarginMinutes {
		t.Errorf("expected margin clamped to %d, got %d", config.MaxMarginMinutes, got)
	}
}

func TestConfigService_WriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewConfigService(path, config.DefaultConfig())

	if err := s.WriteSample(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the sample file to exist: %v", err)
	}

	if err := s.WriteSample(); !errors.Is(err, os.ErrExist) {
		t.Errorf("expected os.ErrExist on the second write, got %v", err)
	}
}
