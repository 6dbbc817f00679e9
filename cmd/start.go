package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xoliva/jornada/internal/format"
)

var startDescription string

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [title]",
	Short: "Start the workday timer",
	Long: `Start tracking a new interval. The timer runs until you stop it
with 'jornada stop'. Only one timer can run at a time; starting while
one is already running is refused.

Examples:
  jornada start
  jornada start morning session
  jornada start sprint work --desc "ticket 4211"`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		startTimer(args)
	},
}

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and record the interval",
	Long: `Stop the running timer and append the closed interval to the
history. When auto-round is enabled and today's total lands within the
configured margin of 8h, the interval is adjusted so the day hits
exactly 8:00:00.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopTimer()
	},
}

// cancelCmd represents the cancel command
var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the running timer",
	Long:  `Discard the running timer without recording an interval.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cancelTimer()
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(cancelCmd)

	startCmd.Flags().StringVar(&startDescription, "desc", "", "longer description for the interval")
}

// startTimer starts a new tracked interval.
func startTimer(args []string) {
	services := mustServices()
	if services == nil {
		return
	}

	title := strings.TrimSpace(strings.Join(args, " "))

	if existing := services.Store.Running(); existing != nil {
		loc := services.Config.Current().Location()
		_, _ = fmt.Fprintln(deps.Stderr, "Warning: A timer is already running")
		_, _ = fmt.Fprintf(deps.Stderr, "Current timer: %s (started %s)\n",
			existing.Title, existing.StartTime.In(loc).Format("15:04"))
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Stop it with 'jornada stop' or discard it with 'jornada cancel'")
		deps.Exit(1)
		return
	}

	r := services.Store.Start(title, startDescription)
	if r == nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to start the timer")
		deps.Exit(1)
		return
	}

	if title == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Timer started")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Timer started: %s\n", title)
	}
}

// stopTimer stops the running interval and reports what was recorded.
func stopTimer() {
	services := mustServices()
	if services == nil {
		return
	}

	e, rounded := services.Store.Stop()
	if e == nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No timer is running")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start one with 'jornada start'")
		deps.Exit(1)
		return
	}

	loc := services.Config.Current().Location()
	_, _ = fmt.Fprintf(deps.Stdout, "Recorded: %s - %s  %s\n",
		e.StartTime.In(loc).Format("15:04"),
		e.EndTime.In(loc).Format("15:04"),
		format.ClockMS(e.DurationMS))

	if rounded {
		_, _ = fmt.Fprintln(deps.Stdout, "(adjusted to complete an 8h day)")
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Today: %s\n", format.ClockMS(services.Summary.TodayTotal()))
}

// cancelTimer discards the running interval.
func cancelTimer() {
	services := mustServices()
	if services == nil {
		return
	}

	r := services.Store.Cancel()
	if r == nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No timer is running")
		deps.Exit(1)
		return
	}

	elapsed := time.Since(r.StartTime)
	_, _ = fmt.Fprintf(deps.Stdout, "Discarded timer (%s elapsed)\n", format.Clock(elapsed))
}
