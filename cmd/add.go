package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xoliva/jornada/internal/format"
)

var (
	addFrom string
	addTo   string
	addDate string
	addDesc string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Record a manual interval",
	Long: `Record an interval without running the timer. Times are HH:MM on
the given date (today when --date is omitted). The end must be after
the start.

Examples:
  jornada add --from 09:00 --to 13:00
  jornada add standup --from 10:00 --to 10:30
  jornada add --date 2026-08-28 --from 09:00 --to 17:00 conference`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addInterval(args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addFrom, "from", "", "start time (HH:MM)")
	addCmd.Flags().StringVar(&addTo, "to", "", "end time (HH:MM)")
	addCmd.Flags().StringVar(&addDate, "date", "", "date for the interval (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "longer description for the interval")
	_ = addCmd.MarkFlagRequired("from")
	_ = addCmd.MarkFlagRequired("to")
}

// addInterval validates the flags and records the interval.
func addInterval(args []string) {
	services := mustServices()
	if services == nil {
		return
	}

	loc := services.Config.Current().Location()
	now := time.Now().In(loc)

	day, err := parseDay(addDate, now)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	start, err := parseClock(addFrom, day)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	end, err := parseClock(addTo, day)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	title := strings.TrimSpace(strings.Join(args, " "))
	e, err := services.Store.Add(title, addDesc, start, end)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: --to must be later than --from")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Recorded: %s - %s  %s\n",
		e.StartTime.In(loc).Format("15:04"),
		e.EndTime.In(loc).Format("15:04"),
		format.ClockMS(e.DurationMS))
}
