package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xoliva/jornada/internal/entry"
	"github.com/xoliva/jornada/internal/format"
	"github.com/xoliva/jornada/internal/service"
	"github.com/xoliva/jornada/internal/store"
	"github.com/xoliva/jornada/internal/timeutil"
)

var (
	editTitle string
	editDesc  string
	editFrom  string
	editTo    string
	editDate  string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing interval",
	Long: `Edit the title, description or bounds of a recorded interval. The
id may be abbreviated to any unique prefix as shown in list output.

Time edits replace both bounds: pass --from and --to together, with
--date to move the interval to another day. The end must stay after
the start or the edit is rejected.

Examples:
  jornada edit 3f2a91 --title "code review"
  jornada edit 3f2a91 --from 09:30 --to 12:00
  jornada edit 3f2a91 --date 2026-08-27 --from 09:00 --to 17:00`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editInterval(cmd, args[0])
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded interval",
	Long:  `Delete a recorded interval. The id may be abbreviated to any unique prefix.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteInterval(args[0])
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)

	editCmd.Flags().StringVar(&editTitle, "title", "", "new title for the interval")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "new description for the interval")
	editCmd.Flags().StringVar(&editFrom, "from", "", "new start time (HH:MM)")
	editCmd.Flags().StringVar(&editTo, "to", "", "new end time (HH:MM)")
	editCmd.Flags().StringVar(&editDate, "date", "", "move the interval to this date (YYYY-MM-DD)")
}

// resolveEntry maps an id prefix to a stored entry or exits.
func resolveEntry(services *service.Services, idPrefix string) (entry.Entry, bool) {
	e, err := services.Store.Find(idPrefix)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAmbiguousID):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Id prefix %q matches more than one interval\n", idPrefix)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use more characters of the id shown by 'jornada days'")
		default:
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No interval matches %q\n", idPrefix)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List intervals with 'jornada days' to see their ids")
		}
		deps.Exit(1)
		return entry.Entry{}, false
	}
	return e, true
}

// editInterval applies the requested field changes.
func editInterval(cmd *cobra.Command, idPrefix string) {
	timeEdit := editFrom != "" || editTo != "" || editDate != ""
	textEdit := cmd.Flags().Changed("title") || cmd.Flags().Changed("desc")
	if !timeEdit && !textEdit {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Nothing to change")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pass --title, --desc, or --from/--to")
		deps.Exit(1)
		return
	}
	if (editFrom == "") != (editTo == "") {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: --from and --to must be given together")
		deps.Exit(1)
		return
	}

	services := mustServices()
	if services == nil {
		return
	}

	e, ok := resolveEntry(services, idPrefix)
	if !ok {
		return
	}

	loc := services.Config.Current().Location()

	if textEdit {
		title := e.Title
		desc := e.Description
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		if cmd.Flags().Changed("desc") {
			desc = editDesc
		}
		if !services.Store.UpdateEntry(e.ID, title, desc) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Interval disappeared while editing")
			deps.Exit(1)
			return
		}
	}

	if timeEdit {
		day := timeutil.StartOfDay(e.StartTime.In(loc))
		if editDate != "" {
			parsed, err := parseDay(editDate, time.Now().In(loc))
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
				deps.Exit(1)
				return
			}
			day = parsed
		}

		start, err := parseClock(editFrom, day)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}
		end, err := parseClock(editTo, day)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			deps.Exit(1)
			return
		}

		if !services.Store.UpdateEntryTimes(e.ID, start, end) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid bounds, the end must be after the start")
			deps.Exit(1)
			return
		}
	}

	updated, err := services.Store.Find(e.ID)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Updated %s: %s - %s  %s  %s\n",
		shortID(updated.ID),
		updated.StartTime.In(loc).Format("15:04"),
		updated.EndTime.In(loc).Format("15:04"),
		format.ClockMS(updated.DurationMS),
		updated.Title)
}

// deleteInterval removes an interval by id prefix.
func deleteInterval(idPrefix string) {
	services := mustServices()
	if services == nil {
		return
	}

	e, ok := resolveEntry(services, idPrefix)
	if !ok {
		return
	}

	services.Store.Delete(e.ID)
	loc := services.Config.Current().Location()
	_, _ = fmt.Fprintf(deps.Stdout, "Deleted %s (%s %s - %s)\n",
		shortID(e.ID),
		timeutil.DateKey(e.StartTime.In(loc)),
		e.StartTime.In(loc).Format("15:04"),
		e.EndTime.In(loc).Format("15:04"))
}
