// Package tui provides the Terminal User Interface for the jornada
// application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xoliva/jornada/internal/service"
	"github.com/xoliva/jornada/internal/tui/ui"
	"github.com/xoliva/jornada/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabDashboard Tab = iota
	TabIntervals
	TabHolidays
	TabConfig
)

var tabNames = []string{"Dashboard", "Intervals", "Holidays", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	width     int
	height    int
	showHelp  bool

	dashboardView views.DashboardModel
	intervalsView views.IntervalsModel
	holidaysView  views.HolidaysModel
	configView    views.ConfigModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeName := services.Config.Current().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabDashboard,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		dashboardView: views.NewDashboardModel(services, styles, keys),
		intervalsView: views.NewIntervalsModel(services, styles, keys),
		holidaysView:  views.NewHolidaysModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashboardView.Init(),
		m.intervalsView.Init(),
		m.holidaysView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		capturing := m.isCapturingKeys()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabDashboard
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabIntervals
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			m.activeTab = TabHolidays
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab4) && !capturing:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.dashboardView.SetSize(m.width, contentHeight)
		m.intervalsView.SetSize(m.width, contentHeight)
		m.holidaysView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.dashboardView, _ = m.dashboardView.Update(themeMsg)
		m.intervalsView, _ = m.intervalsView.Update(themeMsg)
		m.holidaysView, _ = m.holidaysView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	// Ticks and data messages always reach their view; key messages only
	// reach the active one.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		switch m.activeTab {
		case TabDashboard:
			m.dashboardView, cmd = m.dashboardView.Update(msg)
		case TabIntervals:
			m.intervalsView, cmd = m.intervalsView.Update(msg)
		case TabHolidays:
			m.holidaysView, cmd = m.holidaysView.Update(msg)
		case TabConfig:
			m.configView, cmd = m.configView.Update(msg)
		}
		cmds = append(cmds, cmd)
	} else {
		m.dashboardView, cmd = m.dashboardView.Update(msg)
		cmds = append(cmds, cmd)
		m.intervalsView, cmd = m.intervalsView.Update(msg)
		cmds = append(cmds, cmd)
		m.holidaysView, cmd = m.holidaysView.Update(msg)
		cmds = append(cmds, cmd)
		m.configView, cmd = m.configView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabDashboard:
		b.WriteString(m.dashboardView.View())
	case TabIntervals:
		b.WriteString(m.intervalsView.View())
	case TabHolidays:
		b.WriteString(m.holidaysView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isCapturingKeys() {
		parts = append(parts, m.renderKeyHelp("Enter", "confirm"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabDashboard:
			parts = append(parts, m.renderKeyHelp("s", "start"))
			parts = append(parts, m.renderKeyHelp("x", "stop"))
			parts = append(parts, m.renderKeyHelp("c", "cancel"))
			parts = append(parts, m.renderKeyHelp("p", "pomodoro"))
		case TabIntervals:
			parts = append(parts, m.renderKeyHelp("j/k", "navigate"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
		case TabHolidays:
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("+/-", "vacation"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "theme"))
		}

		parts = append(parts, m.renderKeyHelp("1-4", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabDashboard:
		return m.dashboardView.IsInputMode()
	case TabHolidays:
		return m.holidaysView.IsInputMode()
	case TabConfig:
		return m.configView.IsSelecting()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabDashboard:
		return m.dashboardView.Init()
	case TabIntervals:
		return m.intervalsView.Init()
	case TabHolidays:
		return m.holidaysView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Current()
		cfg.Theme = themeName
		_ = m.services.Config.Save(cfg)
		return nil
	}
}

// renderHelpOverlay renders the keyboard shortcut listing
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-4    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabDashboard:
		help.WriteString(m.styles.StatLabel.Render("Dashboard:"))
		help.WriteString("\n")
		help.WriteString("  s          Start timer\n")
		help.WriteString("  x          Stop timer\n")
		help.WriteString("  c          Cancel timer\n")
		help.WriteString("  p          Pause/resume pomodoro\n")
	case TabIntervals:
		help.WriteString(m.styles.StatLabel.Render("Intervals:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate up/down\n")
		help.WriteString("  d          Delete interval\n")
		help.WriteString("  r          Refresh\n")
	case TabHolidays:
		help.WriteString(m.styles.StatLabel.Render("Holidays:"))
		help.WriteString("\n")
		help.WriteString("  n          Register a holiday\n")
		help.WriteString("  d          Remove selected holiday\n")
		help.WriteString("  +/-        Use/refund a vacation day\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Input.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
