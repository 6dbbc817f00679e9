package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/xoliva/jornada/internal/entry"
)

func TestDailyCSV(t *testing.T) {
	// June 2025: the 10th is a Tuesday, the 11th a Wednesday.
	entries := []entry.Entry{
		entry.New("", "", time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 11, 16, 30, 0, 0, time.UTC)),
		entry.New("", "", time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 10, 17, 0, 0, 0, time.UTC)),
	}

	var buf bytes.Buffer
	if err := DailyCSV(&buf, entries, time.UTC); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	header := rows[0]
	if header[0] != "Date" || header[1] != "Day of Week" || header[2] != "Hours Worked" {
		t.Errorf("unexpected header: %v", header)
	}

	// Rows ascend by date regardless of input order.
	if rows[1][0] != "2025-06-10" || rows[2][0] != "2025-06-11" {
		t.Errorf("expected ascending dates, got %s then %s", rows[1][0], rows[2][0])
	}
	if rows[1][1] != "Tuesday" || rows[2][1] != "Wednesday" {
		t.Errorf("unexpected weekdays: %s, %s", rows[1][1], rows[2][1])
	}
	if rows[1][2] != "08:00:00" {
		t.Errorf("expected 08:00:00, got %s", rows[1][2])
	}
	if rows[2][2] != "07:30:00" {
		t.Errorf("expected 07:30:00, got %s", rows[2][2])
	}
}

func TestDailyCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := DailyCSV(&buf, nil, time.UTC); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the header, got %d rows", len(rows))
	}
}
