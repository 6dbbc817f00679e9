package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xoliva/jornada/internal/format"
	"github.com/xoliva/jornada/internal/service"
	"github.com/xoliva/jornada/internal/summary"
	"github.com/xoliva/jornada/internal/tui/ui"
)

// IntervalsModel is the model for the intervals view: all recorded
// intervals grouped by day, newest day first.
type IntervalsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	groups []summary.DayGroup
	// flat cursor over entries across all groups
	cursor int
}

// NewIntervalsModel creates a new intervals view model
func NewIntervalsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) IntervalsModel {
	return IntervalsModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// intervalsLoadedMsg carries the refreshed day groups.
type intervalsLoadedMsg []summary.DayGroup

// Init implements tea.Model
func (m IntervalsModel) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m IntervalsModel) Update(msg tea.Msg) (IntervalsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = clampCursor(m.cursor-1, m.entryCount())
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.cursor = clampCursor(m.cursor+1, m.entryCount())
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if id, ok := m.selectedID(); ok {
				m.services.Store.Delete(id)
				return m, m.load()
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		}

	case intervalsLoadedMsg:
		m.groups = msg
		m.cursor = clampCursor(m.cursor, m.entryCount())
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}
	return m, nil
}

// View implements tea.Model
func (m IntervalsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Intervals"))
	b.WriteString("\n\n")

	if len(m.groups) == 0 {
		b.WriteString(m.styles.TimerStopped.Render("No intervals recorded"))
		return b.String()
	}

	loc := m.services.Config.Current().Location()
	flat := 0
	for _, g := range m.groups {
		b.WriteString(m.styles.DayHeader.Render(fmt.Sprintf("%s  (%s)", g.Date, format.ClockMS(g.TotalMS))))
		b.WriteString("\n")
		for _, e := range g.Entries {
			style := m.styles.RowNormal
			if flat == m.cursor {
				style = m.styles.RowSelected
			}

			id := m.styles.RowID.Render("[" + shortID(e.ID) + "]")
			times := m.styles.RowTime.Render(fmt.Sprintf("%s - %s",
				e.StartTime.In(loc).Format("15:04"),
				e.EndTime.In(loc).Format("15:04")))
			duration := m.styles.RowDuration.Render(format.ClockMS(e.DurationMS))
			title := m.styles.RowTitle.Render(truncate(e.Title, maxTitleWidth(m.width)))

			b.WriteString(style.Render(fmt.Sprintf("%s %s %s %s", id, times, duration, title)))
			b.WriteString("\n")
			flat++
		}
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *IntervalsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m IntervalsModel) entryCount() int {
	n := 0
	for _, g := range m.groups {
		n += len(g.Entries)
	}
	return n
}

// selectedID maps the flat cursor to an entry id.
func (m IntervalsModel) selectedID() (string, bool) {
	flat := 0
	for _, g := range m.groups {
		for _, e := range g.Entries {
			if flat == m.cursor {
				return e.ID, true
			}
			flat++
		}
	}
	return "", false
}

// load fetches the day groups from the services.
func (m IntervalsModel) load() tea.Cmd {
	return func() tea.Msg {
		return intervalsLoadedMsg(m.services.Summary.Days())
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func maxTitleWidth(width int) int {
	w := width - 42
	if w < 16 {
		w = 16
	}
	return w
}
