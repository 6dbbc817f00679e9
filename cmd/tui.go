package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xoliva/jornada/internal/service"
	"github.com/xoliva/jornada/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface.

Tabs available:
  - Dashboard: live timer, today's total, week progress, balance
  - Intervals: browse recorded intervals grouped by day
  - Holidays: holiday calendar and vacation allowance
  - Config: view configuration

Keyboard shortcuts:
  - Tab/Shift+Tab: switch tabs
  - 1-4: jump to a tab
  - s: start/stop the timer (Dashboard)
  - p: pause/resume the pomodoro (Dashboard)
  - j/k or arrows: navigate lists
  - q: quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Quick access from the bare command
	rootCmd.PersistentFlags().Bool("tui", false, "launch the interactive terminal UI")
}

// runTUI initializes services and runs the TUI application.
func runTUI() {
	services, err := service.NewServices()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing services: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// CheckTUIFlag runs the TUI when --tui is set. Returns true if it ran.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
