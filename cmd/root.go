package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xoliva/jornada/internal/format"
	"github.com/xoliva/jornada/internal/service"
	"github.com/xoliva/jornada/internal/storage"
	"github.com/xoliva/jornada/internal/summary"
	"github.com/xoliva/jornada/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:   "jornada",
	Short: "A personal workday tracker",
	Long: `jornada tracks your workday: start and stop a timer, record manual
intervals, and see daily, weekly and cumulative totals against an
8h/day, 40h/week schedule.

Usage:
  jornada                       Show today's intervals and summary
  jornada start [title]         Start the timer
  jornada stop                  Stop the timer and record the interval
  jornada status                Show the running timer and projections
  jornada add --from --to       Record a manual interval
  jornada week                  Show this week's summary
  jornada balance               Show the cumulative hour balance
  jornada holiday add <date>    Register a holiday (YYYY-MM-DD)
  jornada tui                   Launch the interactive terminal UI`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		showToday()
	},
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"jornada version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// mustServices initializes the service bundle or exits.
func mustServices() *service.Services {
	services, err := deps.Services()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to initialize")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your config directory is accessible")
		deps.Exit(1)
		return nil
	}
	printParseWarnings(services)
	return services
}

// printParseWarnings reports corrupted entry lines to stderr.
func printParseWarnings(services *service.Services) {
	warnings := services.Store.Warnings()
	if len(warnings) == 0 {
		return
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d corrupted line(s) in the entries file:\n", len(warnings))
	for _, w := range warnings {
		_, _ = fmt.Fprintln(deps.Stderr, formatCorruptionWarning(w))
	}
	_, _ = fmt.Fprintln(deps.Stderr)
}

// formatCorruptionWarning formats a ParseWarning with line number,
// truncated content (max 50 chars), and error description.
func formatCorruptionWarning(w storage.ParseWarning) string {
	content := w.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}
	return fmt.Sprintf("  Line %d: %s (error: %s)", w.LineNumber, content, w.Error)
}

// showToday prints today's intervals and the day/week/balance summary.
func showToday() {
	services := mustServices()
	if services == nil {
		return
	}

	loc := services.Config.Current().Location()
	now := time.Now().In(loc)
	today := timeutil.DateKey(now)

	var group *summary.DayGroup
	for _, g := range services.Summary.Days() {
		if g.Date == today {
			group = &g
			break
		}
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Today (%s):\n", today)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	if group == nil || len(group.Entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No intervals recorded today")
	} else {
		for _, e := range group.Entries {
			_, _ = fmt.Fprintf(deps.Stdout, "[%s] %s - %s  %s  %s\n",
				shortID(e.ID),
				e.StartTime.In(loc).Format("15:04"),
				e.EndTime.In(loc).Format("15:04"),
				format.ClockMS(e.DurationMS),
				e.Title)
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	if r := services.Store.Running(); r != nil {
		_, _ = fmt.Fprintf(deps.Stdout, "Running: %s (started %s, %s elapsed)\n",
			r.Title, r.StartTime.In(loc).Format("15:04"), format.Clock(r.Elapsed(now)))
	}

	week := services.Summary.Week()
	balance := services.Summary.Balance()
	_, _ = fmt.Fprintf(deps.Stdout, "Today: %s\n", format.ClockMS(services.Summary.TodayTotal()))
	_, _ = fmt.Fprintf(deps.Stdout, "Week:  %s / %s\n", format.Hours(week.HoursWorked), format.Hours(week.TargetHours))
	_, _ = fmt.Fprintf(deps.Stdout, "Balance: %s\n", format.SignedHours(balance.Hours))
}

// shortID returns the display prefix of an entry id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
