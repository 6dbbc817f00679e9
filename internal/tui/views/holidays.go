package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xoliva/jornada/internal/holiday"
	"github.com/xoliva/jornada/internal/service"
	"github.com/xoliva/jornada/internal/tui/ui"
)

// HolidaysModel is the model for the holidays view: the registered
// holiday calendar plus the vacation allowance counter.
type HolidaysModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	dates     []string
	allowance holiday.Allowance
	cursor    int
	err       error

	// Input state for adding a date
	inputMode bool
	input     textinput.Model
}

// NewHolidaysModel creates a new holidays view model
func NewHolidaysModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) HolidaysModel {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 14

	return HolidaysModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    ti,
	}
}

// holidaysLoadedMsg carries the refreshed holiday state.
type holidaysLoadedMsg struct {
	dates     []string
	allowance holiday.Allowance
}

// vacationKeys handles the +/- allowance bindings locally.
var (
	useVacationKey = key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "use vacation day"),
	)
	refundVacationKey = key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "refund vacation day"),
	)
)

// Init implements tea.Model
func (m HolidaysModel) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m HolidaysModel) Update(msg tea.Msg) (HolidaysModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = clampCursor(m.cursor-1, len(m.dates))
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.cursor = clampCursor(m.cursor+1, len(m.dates))
			return m, nil
		case key.Matches(msg, m.keys.New):
			m.inputMode = true
			m.err = nil
			m.input.Focus()
			m.input.SetValue("")
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Delete):
			if m.cursor < len(m.dates) {
				m.err = m.services.Holidays.RemoveDate(m.dates[m.cursor])
				return m, m.load()
			}
			return m, nil
		case key.Matches(msg, useVacationKey):
			m.err = m.services.Holidays.UseVacation()
			return m, m.load()
		case key.Matches(msg, refundVacationKey):
			m.err = m.services.Holidays.RefundVacation()
			return m, m.load()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		}

	case holidaysLoadedMsg:
		m.dates = msg.dates
		m.allowance = msg.allowance
		m.cursor = clampCursor(m.cursor, len(m.dates))
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.inputMode {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleInputMode handles key events while typing a new date
func (m HolidaysModel) handleInputMode(msg tea.KeyMsg) (HolidaysModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		date := strings.TrimSpace(m.input.Value())
		m.err = m.services.Holidays.AddDate(date)
		if m.err == nil {
			m.inputMode = false
			m.input.Blur()
			return m, m.load()
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.inputMode = false
		m.err = nil
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m HolidaysModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Holidays"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.StatLabel.Render("Vacation:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%d/%d used, %d remaining",
		m.allowance.Used, m.allowance.Total, m.allowance.Remaining())))
	b.WriteString("\n\n")

	if m.inputMode {
		b.WriteString(m.styles.StatLabel.Render("New holiday date"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Enter to add, Esc to cancel"))
		return b.String()
	}

	if len(m.dates) == 0 {
		b.WriteString(m.styles.TimerStopped.Render("No holidays registered"))
	} else {
		for i, d := range m.dates {
			style := m.styles.RowNormal
			if i == m.cursor {
				style = m.styles.RowSelected
			}
			b.WriteString(style.Render("  " + d))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *HolidaysModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m HolidaysModel) IsInputMode() bool {
	return m.inputMode
}

// load fetches the holiday state from the services.
func (m HolidaysModel) load() tea.Cmd {
	return func() tea.Msg {
		return holidaysLoadedMsg{
			dates:     m.services.Holidays.Dates(),
			allowance: m.services.Holidays.Allowance(),
		}
	}
}
