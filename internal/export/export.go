// Package export writes the daily summary as CSV.
package export

import (
	"encoding/csv"
	"io"
	"sort"
	"time"

	"github.com/xoliva/jornada/internal/entry"
	"github.com/xoliva/jornada/internal/format"
	"github.com/xoliva/jornada/internal/summary"
	"github.com/xoliva/jornada/internal/timeutil"
)

// csvHeader matches the spreadsheet layout the summary is imported into.
var csvHeader = []string{"Date", "Day of Week", "Hours Worked"}

// DailyCSV writes one row per tracked calendar date, ascending by date,
// with hours rendered as HH:MM:SS.
func DailyCSV(w io.Writer, entries []entry.Entry, loc *time.Location) error {
	totals := summary.DailyTotals(entries)
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date < totals[j].Date
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range totals {
		day, err := timeutil.ParseDateKey(t.Date, loc)
		if err != nil {
			continue
		}
		row := []string{t.Date, day.Weekday().String(), format.ClockMS(t.TotalMS)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
