package service

import (
	"bytes"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/xoliva/jornada/internal/config"
)

// ConfigService reads and writes the TOML configuration.
type ConfigService struct {
	mu   sync.Mutex
	path string
	cfg  config.Config
}

// NewConfigService wraps an already-loaded config.
func NewConfigService(path string, cfg config.Config) *ConfigService {
	return &ConfigService{path: path, cfg: cfg}
}

// Current returns the active configuration.
func (s *ConfigService) Current() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Path returns the config file location.
func (s *ConfigService) Path() string {
	return s.path
}

// Save validates, normalizes and persists a new configuration.
func (s *ConfigService) Save(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

// WriteSample creates a commented sample config file. Refuses to
// overwrite an existing file.
func (s *ConfigService) WriteSample() error {
	if _, err := os.Stat(s.path); err == nil {
		return os.ErrExist
	}
	return os.WriteFile(s.path, []byte(config.GenerateSampleConfig()), 0644)
}
