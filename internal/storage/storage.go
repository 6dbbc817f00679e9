// Package storage persists tracker state as JSON files under the user
// config directory. Reads tolerate missing files and collect per-line
// warnings for corrupted content instead of failing; writes that replace
// whole files go through a temp file and an atomic rename.
package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/xoliva/jornada/internal/entry"
	"github.com/xoliva/jornada/internal/holiday"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "jornada"
	// EntriesFile is the name of the JSON Lines entries file.
	EntriesFile = "entries.jsonl"
	// RunningFile holds the running interval while a timer is active.
	RunningFile = "running.json"
	// HolidaysFile holds the holiday dates and the vacation allowance.
	HolidaysFile = "holidays.json"
)

// ParseWarning describes a corrupted or malformed line in the entries file.
type ParseWarning struct {
	LineNumber int    // 1-indexed line number
	Content    string // raw content of the corrupted line
	Error      string // description of the parsing error
}

// ReadResult contains entries read from storage plus any warnings about
// lines that could not be parsed.
type ReadResult struct {
	Entries  []entry.Entry
	Warnings []ParseWarning
}

// Dir returns the application data directory, creating it if needed.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}
	return appDir, nil
}

// EntriesPath returns the path to the entries file.
func EntriesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, EntriesFile), nil
}

// RunningPath returns the path to the running interval file.
func RunningPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, RunningFile), nil
}

// HolidaysPath returns the path to the holidays file.
func HolidaysPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HolidaysFile), nil
}

// ReadEntries reads all entries from the JSON Lines file. A missing file
// yields an empty result. Malformed lines are skipped and reported as
// warnings so a single corrupted record never takes down the history.
func ReadEntries(path string) (ReadResult, error) {
	result := ReadResult{
		Entries:  []entry.Entry{},
		Warnings: []ParseWarning{},
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		lineContent := scanner.Text()

		var e entry.Entry
		if err := json.Unmarshal([]byte(lineContent), &e); err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: lineNumber,
				Content:    lineContent,
				Error:      err.Error(),
			})
			continue
		}
		result.Entries = append(result.Entries, e)
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// WriteEntries replaces the entries file with the given collection.
// Uses the temp-file-then-rename pattern so readers never observe a
// partially written file.
func WriteEntries(path string, entries []entry.Entry) error {
	tmp := path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			_ = file.Close()
			_ = os.Remove(tmp)
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// SaveRunning writes the running interval to its state file.
func SaveRunning(path string, r entry.Running) error {
	// Running contains only JSON-safe types, so Marshal cannot fail.
	data, _ := json.MarshalIndent(r, "", "  ")

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadRunning reads the running interval. Returns nil when no timer is
// active (missing file). A file that exists but cannot be parsed is
// reported as an error so the caller can decide how to recover.
func LoadRunning(path string) (*entry.Running, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var r entry.Running
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearRunning removes the running interval file. Idempotent.
func ClearRunning(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// HolidayState is the persisted shape of the holidays file.
type HolidayState struct {
	Total int      `json:"total"`
	Used  int      `json:"used"`
	Dates []string `json:"dates"`
}

// DefaultHolidayState returns the state used when nothing is persisted yet
// or the file is unreadable.
func DefaultHolidayState() HolidayState {
	return HolidayState{Total: holiday.DefaultTotal, Dates: []string{}}
}

// LoadHolidays reads the holiday state. Missing or corrupted content falls
// back to defaults; the bool result reports whether a corrupted file was
// replaced by defaults so the caller can log a warning.
func LoadHolidays(path string) (HolidayState, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultHolidayState(), false
	}

	var state HolidayState
	if err := json.Unmarshal(data, &state); err != nil {
		return DefaultHolidayState(), true
	}
	if state.Total < 0 || state.Used < 0 {
		return DefaultHolidayState(), true
	}
	if state.Dates == nil {
		state.Dates = []string{}
	}
	return state, false
}

// SaveHolidays writes the holiday state atomically.
func SaveHolidays(path string, state HolidayState) error {
	data, _ := json.MarshalIndent(state, "", "  ")

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
