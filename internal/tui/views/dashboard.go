package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xoliva/jornada/internal/format"
	"github.com/xoliva/jornada/internal/live"
	"github.com/xoliva/jornada/internal/pomodoro"
	"github.com/xoliva/jornada/internal/service"
	"github.com/xoliva/jornada/internal/store"
	"github.com/xoliva/jornada/internal/tui/ui"
)

// DashboardModel is the model for the dashboard view: live timer,
// today's total, week progress, balance and the pomodoro cycle.
type DashboardModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	stats live.Stats
	pomo  *pomodoro.Timer

	// Input state for starting the timer with a title
	inputMode bool
	input     textinput.Model
}

// NewDashboardModel creates a new dashboard view model
func NewDashboardModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) DashboardModel {
	ti := textinput.New()
	ti.Placeholder = "Interval title (optional)..."
	ti.CharLimit = 120
	ti.Width = 40

	return DashboardModel{
		services: services,
		styles:   styles,
		keys:     keys,
		pomo:     pomodoro.New(pomodoro.DefaultDurations()),
		input:    ti,
	}
}

// dashTickMsg drives the 1-second refresh of the live stats.
type dashTickMsg time.Time

// dashStatsMsg carries a freshly computed live reading.
type dashStatsMsg live.Stats

// Init implements tea.Model
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadStats(), m.tick())
}

// Update implements tea.Model
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Start):
			if m.stats.Running == nil {
				m.inputMode = true
				m.input.Focus()
				m.input.SetValue("")
				return m, textinput.Blink
			}
			return m, nil
		case key.Matches(msg, m.keys.Stop):
			if m.stats.Running != nil {
				m.services.Store.Stop()
				return m, m.loadStats()
			}
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			if m.stats.Running != nil {
				m.services.Store.Cancel()
				return m, m.loadStats()
			}
			return m, nil
		case key.Matches(msg, m.keys.Pomodoro):
			if m.pomo.Running() {
				m.pomo.Pause()
			} else {
				m.pomo.Start()
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStats()
		}

	case dashTickMsg:
		m.pomo.Tick()
		return m, tea.Batch(m.loadStats(), m.tick())

	case dashStatsMsg:
		m.stats = live.Stats(msg)
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

// handleInputMode handles key events while typing a timer title
func (m DashboardModel) handleInputMode(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		title := strings.TrimSpace(m.input.Value())
		m.inputMode = false
		m.input.Blur()
		m.services.Store.Start(title, "")
		return m, m.loadStats()
	case key.Matches(msg, m.keys.Back):
		m.inputMode = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Dashboard"))
	b.WriteString("\n\n")

	if m.inputMode {
		b.WriteString(m.styles.StatLabel.Render("Start Timer"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Enter to start, Esc to cancel"))
		return b.String()
	}

	// Timer block
	if m.stats.Running != nil {
		title := m.stats.Running.Title
		if title == "" {
			title = "(untitled)"
		}
		b.WriteString(m.styles.TimerRunning.Render("● Tracking"))
		b.WriteString("  ")
		b.WriteString(m.styles.StatValue.Render(title))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Elapsed:"))
		b.WriteString(" ")
		b.WriteString(m.styles.TimerElapsed.Render(format.Clock(m.stats.Elapsed)))
		b.WriteString("\n")
		if m.stats.HasFinish {
			loc := m.services.Config.Current().Location()
			b.WriteString(m.styles.StatLabel.Render("Est. finish:"))
			b.WriteString(" ")
			b.WriteString(m.styles.StatValue.Render(m.stats.Finish.In(loc).Format("15:04")))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.styles.TimerStopped.Render("No timer running"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Totals
	b.WriteString(m.styles.StatLabel.Render("Today:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(format.ClockMS(m.stats.TodayMS)))
	b.WriteString("\n")

	b.WriteString(m.styles.StatLabel.Render("Week:"))
	b.WriteString(" ")
	ratio := 0.0
	if m.stats.TargetHours > 0 {
		ratio = m.stats.WeekHours / m.stats.TargetHours
	}
	b.WriteString(renderBar(m.styles, ratio, 24))
	b.WriteString(fmt.Sprintf(" %s / %s", format.Hours(m.stats.WeekHours), format.Hours(m.stats.TargetHours)))
	b.WriteString("\n")

	b.WriteString(m.styles.StatLabel.Render("Balance:"))
	b.WriteString(" ")
	balance := format.SignedHours(m.stats.BalanceHours)
	if m.stats.BalanceHours < 0 {
		b.WriteString(m.styles.Negative.Render(balance))
	} else {
		b.WriteString(m.styles.Positive.Render(balance))
	}
	b.WriteString("\n\n")

	// Weekday chart
	hours := m.services.Summary.WeekdayHours()
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, label := range labels {
		b.WriteString(m.styles.StatLabel.Render(label))
		b.WriteString(" ")
		b.WriteString(renderBar(m.styles, hours[i]/8, 16))
		b.WriteString(fmt.Sprintf(" %s\n", format.HoursClock(hours[i])))
	}
	b.WriteString("\n")

	// Pomodoro
	state := "paused"
	if m.pomo.Running() {
		state = "running"
	}
	b.WriteString(m.styles.StatLabel.Render("Pomodoro:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%s %s (%s, %d done)",
		m.pomo.Phase(), format.Clock(m.pomo.Remaining()), state, m.pomo.Completed())))

	return b.String()
}

// SetSize sets the view dimensions
func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m DashboardModel) IsInputMode() bool {
	return m.inputMode
}

// loadStats computes a fresh live reading from the store.
func (m DashboardModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		calc := m.services.Calculator()
		snap := store.Snapshot{
			Entries: m.services.Store.Entries(),
			Running: m.services.Store.Running(),
		}
		return dashStatsMsg(calc.Stats(snap))
	}
}

// tick returns a command that fires once per second.
func (m DashboardModel) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return dashTickMsg(t)
	})
}
