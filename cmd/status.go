package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xoliva/jornada/internal/format"
	"github.com/xoliva/jornada/internal/store"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer and projections",
	Long: `Show whether a timer is running, today's total including the
elapsed time of the open interval, and the projected finish time for
an 8h day.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// showStatus prints a one-shot live reading.
func showStatus() {
	services := mustServices()
	if services == nil {
		return
	}

	calc := services.Calculator()
	snap := store.Snapshot{
		Entries: services.Store.Entries(),
		Running: services.Store.Running(),
	}
	stats := calc.Stats(snap)

	if stats.Running == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "No timer running")
	} else {
		loc := services.Config.Current().Location()
		title := stats.Running.Title
		if title == "" {
			title = "(untitled)"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "Running: %s\n", title)
		_, _ = fmt.Fprintf(deps.Stdout, "Started: %s\n", stats.Running.StartTime.In(loc).Format("15:04"))
		_, _ = fmt.Fprintf(deps.Stdout, "Elapsed: %s\n", format.Clock(stats.Elapsed))
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Today:   %s\n", format.ClockMS(stats.TodayMS))
	_, _ = fmt.Fprintf(deps.Stdout, "Week:    %s / %s\n", format.Hours(stats.WeekHours), format.Hours(stats.TargetHours))
	_, _ = fmt.Fprintf(deps.Stdout, "Balance: %s\n", format.SignedHours(stats.BalanceHours))

	if stats.HasFinish {
		loc := services.Config.Current().Location()
		_, _ = fmt.Fprintf(deps.Stdout, "Estimated finish: %s\n", stats.Finish.In(loc).Format("15:04"))
	}
}
