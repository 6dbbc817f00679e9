package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// holidayCmd represents the holiday command group
var holidayCmd = &cobra.Command{
	Use:   "holiday",
	Short: "Manage the holiday calendar",
	Long: `Manage the holiday calendar. Registered weekday holidays reduce the
weekly target and the expected hours in the balance; weekend holidays
carry no expectation to reduce.

Dates use the YYYY-MM-DD format and must name real calendar dates.`,
}

var holidayAddCmd = &cobra.Command{
	Use:   "add <date>",
	Short: "Register a holiday date",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addHoliday(args[0])
	},
}

var holidayRemoveCmd = &cobra.Command{
	Use:   "remove <date>",
	Short: "Unregister a holiday date",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		removeHoliday(args[0])
	},
}

var holidayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered holiday dates",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listHolidays()
	},
}

// vacationCmd represents the vacation command group
var vacationCmd = &cobra.Command{
	Use:   "vacation",
	Short: "Show and manage the vacation allowance",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showVacation()
	},
}

var vacationUseCmd = &cobra.Command{
	Use:   "use",
	Short: "Spend one vacation day",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		useVacation()
	},
}

var vacationRefundCmd = &cobra.Command{
	Use:   "refund",
	Short: "Return one spent vacation day",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		refundVacation()
	},
}

var vacationSetCmd = &cobra.Command{
	Use:   "set <days>",
	Short: "Set the yearly vacation allowance",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setVacation(args[0])
	},
}

func init() {
	rootCmd.AddCommand(holidayCmd)
	holidayCmd.AddCommand(holidayAddCmd)
	holidayCmd.AddCommand(holidayRemoveCmd)
	holidayCmd.AddCommand(holidayListCmd)

	rootCmd.AddCommand(vacationCmd)
	vacationCmd.AddCommand(vacationUseCmd)
	vacationCmd.AddCommand(vacationRefundCmd)
	vacationCmd.AddCommand(vacationSetCmd)
}

func addHoliday(date string) {
	services := mustServices()
	if services == nil {
		return
	}

	if err := services.Holidays.AddDate(date); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Dates use the YYYY-MM-DD format, e.g. 2026-12-25")
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Holiday registered: %s\n", date)
}

func removeHoliday(date string) {
	services := mustServices()
	if services == nil {
		return
	}

	if err := services.Holidays.RemoveDate(date); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List registered dates with 'jornada holiday list'")
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Holiday removed: %s\n", date)
}

func listHolidays() {
	services := mustServices()
	if services == nil {
		return
	}

	dates := services.Holidays.Dates()
	if len(dates) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No holidays registered")
		return
	}
	for _, d := range dates {
		_, _ = fmt.Fprintln(deps.Stdout, d)
	}
}

func showVacation() {
	services := mustServices()
	if services == nil {
		return
	}

	a := services.Holidays.Allowance()
	_, _ = fmt.Fprintf(deps.Stdout, "Vacation: %d/%d days used, %d remaining\n", a.Used, a.Total, a.Remaining())
}

func useVacation() {
	services := mustServices()
	if services == nil {
		return
	}

	if err := services.Holidays.UseVacation(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	a := services.Holidays.Allowance()
	_, _ = fmt.Fprintf(deps.Stdout, "Vacation day used, %d remaining\n", a.Remaining())
}

func refundVacation() {
	services := mustServices()
	if services == nil {
		return
	}

	if err := services.Holidays.RefundVacation(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	a := services.Holidays.Allowance()
	_, _ = fmt.Fprintf(deps.Stdout, "Vacation day refunded, %d remaining\n", a.Remaining())
}

func setVacation(value string) {
	services := mustServices()
	if services == nil {
		return
	}

	total, err := strconv.Atoi(value)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid number %q\n", value)
		deps.Exit(1)
		return
	}
	if err := services.Holidays.SetAllowanceTotal(total); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}
	a := services.Holidays.Allowance()
	_, _ = fmt.Fprintf(deps.Stdout, "Vacation allowance set to %d days (%d remaining)\n", a.Total, a.Remaining())
}
