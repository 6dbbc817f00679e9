package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xoliva/jornada/internal/format"
)

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week's summary",
	Long: `Show the summary for the current Monday-Sunday week: hours worked,
day-local overtime, and the target (40h minus 8h per weekday holiday).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showWeek()
	},
}

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the cumulative hour balance",
	Long: `Show the cumulative balance since the first recorded interval:
weekday hours against an 8h/day expectation for every non-holiday
weekday, plus weekend hours on top.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showBalance()
	},
}

// daysCmd represents the days command
var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List all recorded intervals grouped by day",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showDays()
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(daysCmd)
}

func showWeek() {
	services := mustServices()
	if services == nil {
		return
	}

	week := services.Summary.Week()
	hours := services.Summary.WeekdayHours()

	_, _ = fmt.Fprintf(deps.Stdout, "Week %s to %s:\n", week.WeekStart, week.WeekEnd)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, label := range labels {
		if hours[i] == 0 {
			continue
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s  %s\n", label, format.HoursClock(hours[i]))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	_, _ = fmt.Fprintf(deps.Stdout, "Worked:   %s / %s\n", format.Hours(week.HoursWorked), format.Hours(week.TargetHours))
	_, _ = fmt.Fprintf(deps.Stdout, "Overtime: %s\n", format.Hours(week.OvertimeHours))
}

func showBalance() {
	services := mustServices()
	if services == nil {
		return
	}

	balance := services.Summary.Balance()
	_, _ = fmt.Fprintf(deps.Stdout, "Balance: %s\n", format.SignedHours(balance.Hours))
	if balance.Hours < 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "You are behind the expected hours")
	} else if balance.Hours > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "You are ahead of the expected hours")
	}
}

func showDays() {
	services := mustServices()
	if services == nil {
		return
	}

	groups := services.Summary.Days()
	if len(groups) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No intervals recorded")
		return
	}

	loc := services.Config.Current().Location()
	for _, g := range groups {
		day, err := time.ParseInLocation("2006-01-02", g.Date, loc)
		weekday := ""
		if err == nil {
			weekday = " " + day.Weekday().String()
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s%s  (%s)\n", g.Date, weekday, format.ClockMS(g.TotalMS))
		for _, e := range g.Entries {
			_, _ = fmt.Fprintf(deps.Stdout, "  [%s] %s - %s  %s  %s\n",
				shortID(e.ID),
				e.StartTime.In(loc).Format("15:04"),
				e.EndTime.In(loc).Format("15:04"),
				format.ClockMS(e.DurationMS),
				e.Title)
		}
	}
}
