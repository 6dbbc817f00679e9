// Package config loads and validates the TOML application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "jornada"
	// ConfigFile is the name of the TOML configuration file.
	ConfigFile = "config.toml"
)

// Margin bounds in minutes for the auto-round tolerance.
const (
	MinMarginMinutes = 1
	MaxMarginMinutes = 60
)

var lunchHourRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Config represents the application configuration.
type Config struct {
	// MarginEnabled toggles the auto-round-to-8h policy on stop.
	MarginEnabled bool `toml:"margin_enabled"`
	// MarginMinutes is the auto-round tolerance (1-60 minutes).
	MarginMinutes int `toml:"margin_minutes"`
	// LunchHour is the daily lunch start as "HH:MM" local time.
	LunchHour string `toml:"lunch_hour"`
	// LunchDurationMinutes is added to the estimated finish time when the
	// lunch hour has not passed yet.
	LunchDurationMinutes int `toml:"lunch_duration_minutes"`
	// CalendarURL is an external agenda embed consumed by the display layer.
	CalendarURL string `toml:"calendar_url"`
	// Timezone is an IANA zone name or "Local".
	Timezone string `toml:"timezone"`
	// Theme selects the TUI color theme.
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MarginEnabled:        false,
		MarginMinutes:        10,
		LunchHour:            "14:00",
		LunchDurationMinutes: 60,
		Timezone:             "Local",
		Theme:                "dracula",
	}
}

// GetConfigPath returns the path to the config file, creating the config
// directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file, falling back to defaults when the
// file is missing. A file that exists but cannot be parsed also falls back
// to defaults; persisted settings must never prevent startup.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize fills empty fields with defaults and clamps out-of-range values.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.MarginMinutes == 0 {
		c.MarginMinutes = def.MarginMinutes
	}
	if c.MarginMinutes < MinMarginMinutes {
		c.MarginMinutes = MinMarginMinutes
	}
	if c.MarginMinutes > MaxMarginMinutes {
		c.MarginMinutes = MaxMarginMinutes
	}
	if c.LunchHour == "" {
		c.LunchHour = def.LunchHour
	}
	if c.LunchDurationMinutes < 0 {
		c.LunchDurationMinutes = 0
	}
	if c.LunchDurationMinutes > 180 {
		c.LunchDurationMinutes = 180
	}
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
}

// Validate checks fields that cannot be silently fixed.
func (c Config) Validate() error {
	if !lunchHourRe.MatchString(c.LunchHour) {
		return fmt.Errorf("invalid lunch_hour %q: expected HH:MM", c.LunchHour)
	}
	if c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	return nil
}

// Location resolves the configured timezone. Falls back to the system
// local zone when the name cannot be resolved.
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Margin returns the auto-round tolerance as a duration.
func (c Config) Margin() time.Duration {
	return time.Duration(c.MarginMinutes) * time.Minute
}

// LunchStart returns today's lunch start instant in the given location.
// The bool result is false when the configured hour is malformed.
func (c Config) LunchStart(now time.Time) (time.Time, bool) {
	parsed, err := time.Parse("15:04", c.LunchHour)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), true
}

// LunchDuration returns the configured lunch break length.
func (c Config) LunchDuration() time.Duration {
	return time.Duration(c.LunchDurationMinutes) * time.Minute
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# jornada configuration file

# Auto-round: when stopping the timer, if today's total is within the
# margin of 8h, the interval is adjusted to hit exactly 8:00:00.
margin_enabled = false

# Auto-round tolerance in minutes (1-60)
margin_minutes = 10

# Lunch break, added to the estimated finish time while the hour
# hasn't passed yet
lunch_hour = "14:00"
lunch_duration_minutes = 60

# External agenda calendar embed URL (optional)
calendar_url = ""

# Timezone: IANA zone name (e.g. "Europe/Madrid") or "Local"
timezone = "Local"

# TUI color theme
theme = "dracula"
`
}
