// Package service provides the business logic layer for the jornada
// application. It wires the store, holiday state and configuration
// together behind a single bundle consumed by both CLI and TUI frontends.
package service

import (
	"time"

	"github.com/xoliva/jornada/internal/config"
	"github.com/xoliva/jornada/internal/live"
	"github.com/xoliva/jornada/internal/storage"
	"github.com/xoliva/jornada/internal/store"
)

// Services holds all service instances used by the application.
type Services struct {
	Store    *store.Store
	Holidays *HolidayService
	Summary  *SummaryService
	Config   *ConfigService
}

// NewServices creates a Services instance using the default paths under
// the user config directory.
func NewServices() (*Services, error) {
	entriesPath, err := storage.EntriesPath()
	if err != nil {
		return nil, err
	}
	runningPath, err := storage.RunningPath()
	if err != nil {
		return nil, err
	}
	holidaysPath, err := storage.HolidaysPath()
	if err != nil {
		return nil, err
	}
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(entriesPath, runningPath, holidaysPath, configPath, cfg)
}

// NewServicesWithPaths creates a Services instance with custom paths
// (useful for testing). Store options allow injecting a clock.
func NewServicesWithPaths(entriesPath, runningPath, holidaysPath, configPath string, cfg config.Config, opts ...store.Option) (*Services, error) {
	st, err := store.Open(entriesPath, runningPath, cfg, opts...)
	if err != nil {
		return nil, err
	}

	holidays := NewHolidayService(holidaysPath)
	return &Services{
		Store:    st,
		Holidays: holidays,
		Summary: &SummaryService{
			store:    st,
			holidays: holidays,
			loc:      cfg.Location(),
			now:      time.Now,
		},
		Config: NewConfigService(configPath, cfg),
	}, nil
}

// Calculator returns a live calculator bound to the current config and
// holiday state.
func (s *Services) Calculator() live.Calculator {
	return live.NewCalculator(s.Config.Current(), s.Holidays.Registry)
}
