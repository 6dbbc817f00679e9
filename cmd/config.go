package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change configuration",
	Long: `Show and change configuration. Settings live in a TOML file under
the user config directory.

Keys:
  margin_enabled          true/false, toggles auto-round on stop
  margin_minutes          auto-round tolerance (1-60)
  lunch_hour              lunch start as HH:MM
  lunch_duration_minutes  lunch length added to the finish estimate
  calendar_url            external agenda embed URL
  timezone                IANA zone name or "Local"
  theme                   TUI color theme`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setConfig(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}

func showConfig() {
	services := mustServices()
	if services == nil {
		return
	}

	cfg := services.Config.Current()
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n\n", services.Config.Path())
	_, _ = fmt.Fprintf(deps.Stdout, "margin_enabled         = %t\n", cfg.MarginEnabled)
	_, _ = fmt.Fprintf(deps.Stdout, "margin_minutes         = %d\n", cfg.MarginMinutes)
	_, _ = fmt.Fprintf(deps.Stdout, "lunch_hour             = %q\n", cfg.LunchHour)
	_, _ = fmt.Fprintf(deps.Stdout, "lunch_duration_minutes = %d\n", cfg.LunchDurationMinutes)
	_, _ = fmt.Fprintf(deps.Stdout, "calendar_url           = %q\n", cfg.CalendarURL)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone               = %q\n", cfg.Timezone)
	_, _ = fmt.Fprintf(deps.Stdout, "theme                  = %q\n", cfg.Theme)
}

func initConfig() {
	services := mustServices()
	if services == nil {
		return
	}

	if err := services.Config.WriteSample(); err != nil {
		if errors.Is(err, os.ErrExist) {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Config file already exists: %s\n", services.Config.Path())
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write config: %v\n", err)
		}
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Wrote sample config to %s\n", services.Config.Path())
}

func setConfig(key, value string) {
	services := mustServices()
	if services == nil {
		return
	}

	cfg := services.Config.Current()
	var err error
	switch key {
	case "margin_enabled":
		cfg.MarginEnabled, err = strconv.ParseBool(value)
	case "margin_minutes":
		cfg.MarginMinutes, err = strconv.Atoi(value)
	case "lunch_hour":
		cfg.LunchHour = value
	case "lunch_duration_minutes":
		cfg.LunchDurationMinutes, err = strconv.Atoi(value)
	case "calendar_url":
		cfg.CalendarURL = value
	case "timezone":
		cfg.Timezone = value
	case "theme":
		cfg.Theme = value
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unknown key %q\n", key)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'jornada config' to see the available keys")
		deps.Exit(1)
		return
	}
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid value %q for %s\n", value, key)
		deps.Exit(1)
		return
	}

	if err := services.Config.Save(cfg); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to save config: %v\n", err)
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Set %s\n", key)
}
