package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xoliva/jornada/internal/service"
	"github.com/xoliva/jornada/internal/tui/ui"
)

// ConfigModel is the model for the config view: a read-only listing of
// the active settings plus a theme selector.
type ConfigModel struct {
	services      *service.Services
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap

	width  int
	height int

	// Theme selector state
	selecting  bool
	themes     []string
	themeIndex int
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	return ConfigModel{
		services:      services,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
	}
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selecting {
			switch {
			case key.Matches(msg, m.keys.Up):
				m.themeIndex = clampCursor(m.themeIndex-1, len(m.themes))
				return m, nil
			case key.Matches(msg, m.keys.Down):
				m.themeIndex = clampCursor(m.themeIndex+1, len(m.themes))
				return m, nil
			case key.Matches(msg, m.keys.Select):
				m.selecting = false
				name := m.themes[m.themeIndex]
				return m, func() tea.Msg {
					return ui.ThemeChangeRequestMsg{ThemeName: name}
				}
			case key.Matches(msg, m.keys.Back):
				m.selecting = false
				return m, nil
			}
			return m, nil
		}

		if key.Matches(msg, m.keys.Theme) || key.Matches(msg, m.keys.Select) {
			m.selecting = true
			m.themes = m.themeProvider.AvailableThemes()
			current := m.themeProvider.CurrentName()
			for i, name := range m.themes {
				if name == current {
					m.themeIndex = i
					break
				}
			}
			return m, nil
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}
	return m, nil
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Config"))
	b.WriteString("\n\n")

	if m.selecting {
		b.WriteString(m.styles.StatLabel.Render("Select a theme"))
		b.WriteString("\n\n")

		// Show a window around the cursor
		start := m.themeIndex - 5
		if start < 0 {
			start = 0
		}
		end := start + 11
		if end > len(m.themes) {
			end = len(m.themes)
		}
		for i := start; i < end; i++ {
			style := m.styles.RowNormal
			if i == m.themeIndex {
				style = m.styles.RowSelected
			}
			b.WriteString(style.Render("  " + m.themes[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Enter to select, Esc to cancel"))
		return b.String()
	}

	cfg := m.services.Config.Current()
	rows := []struct {
		label string
		value string
	}{
		{"Config file", m.services.Config.Path()},
		{"Auto-round", fmt.Sprintf("%t", cfg.MarginEnabled)},
		{"Margin", fmt.Sprintf("%d min", cfg.MarginMinutes)},
		{"Lunch hour", cfg.LunchHour},
		{"Lunch duration", fmt.Sprintf("%d min", cfg.LunchDurationMinutes)},
		{"Calendar URL", cfg.CalendarURL},
		{"Timezone", cfg.Timezone},
		{"Theme", m.themeProvider.CurrentName()},
	}
	for _, row := range rows {
		b.WriteString(m.styles.StatLabel.Render(row.label + ":"))
		b.WriteString(" ")
		b.WriteString(m.styles.StatValue.Render(row.value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Press 't' to change the theme"))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Edit other settings with 'jornada config set'"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsSelecting returns true while the theme selector is open
func (m ConfigModel) IsSelecting() bool {
	return m.selecting
}
