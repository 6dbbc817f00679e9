package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xoliva/jornada/internal/export"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the daily summary as CSV",
	Long: `Export one CSV row per tracked calendar date with the date, the day
of week and the hours worked as HH:MM:SS, ascending by date. Writes to
stdout unless --output is given.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportCSV()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write CSV to this file instead of stdout")
}

func exportCSV() {
	services := mustServices()
	if services == nil {
		return
	}

	loc := services.Config.Current().Location()
	entries := services.Store.Entries()

	if exportOutput == "" {
		if err := export.DailyCSV(deps.Stdout, entries, loc); err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write CSV: %v\n", err)
			deps.Exit(1)
		}
		return
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to create %s: %v\n", exportOutput, err)
		deps.Exit(1)
		return
	}
	defer func() { _ = f.Close() }()

	if err := export.DailyCSV(f, entries, loc); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write CSV: %v\n", err)
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Exported daily summary to %s\n", exportOutput)
}
