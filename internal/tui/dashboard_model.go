package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studylog/internal/analytics"
	"studylog/internal/data"
	"studylog/internal/models"
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DashboardModel renders the analytics dashboard: streak and goal
// cards, the weekly chart and the monthly calendar.
type DashboardModel struct {
	tracker *data.Tracker

	weekOffset int
	year       int
	month      time.Month

	metrics analytics.Metrics
	goal    int
	minimum int

	width  int
	height int
}

// NewDashboardModel builds the dashboard positioned at the given week
// offset and calendar month.
func NewDashboardModel(tracker *data.Tracker, weekOffset, year int, month time.Month) DashboardModel {
	m := DashboardModel{
		tracker:    tracker,
		weekOffset: weekOffset,
		year:       year,
		month:      month,
	}
	m.recompute()
	return m
}

func (m *DashboardModel) recompute() {
	m.goal = m.tracker.Settings.WeeklyGoal()
	m.minimum = m.tracker.Settings.DailyMinimum()
	cfg := analytics.Config{WeeklyGoal: m.goal, DailyMinimum: m.minimum}
	today := models.DateOf(time.Now())
	m.metrics = analytics.Compute(m.tracker.Sessions.List(), cfg, today, m.weekOffset)
}

// Init initializes the model
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "h", "left":
			m.weekOffset--
			m.recompute()

		case "l", "right":
			m.weekOffset++
			m.recompute()

		case "[":
			m.month--
			if m.month < time.January {
				m.month = time.December
				m.year--
			}

		case "]":
			m.month++
			if m.month > time.December {
				m.month = time.January
				m.year++
			}

		case "r":
			now := time.Now()
			m.weekOffset = 0
			m.year = now.Year()
			m.month = now.Month()
			m.recompute()
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 2)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Study Dashboard"))
	b.WriteString("\n\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(fmt.Sprintf("%s\n%s",
			labelStyle.Render("Today"),
			valueStyle.Render(fmt.Sprintf("%d min", m.metrics.TodayMinutes)))),
		cardStyle.Render(fmt.Sprintf("%s\n%s",
			labelStyle.Render("Streak"),
			valueStyle.Render(fmt.Sprintf("%d day(s), best %d", m.metrics.CurrentStreak, m.metrics.BestStreak)))),
		cardStyle.Render(fmt.Sprintf("%s\n%s",
			labelStyle.Render("Top tag"),
			valueStyle.Render(orDash(m.metrics.MostUsedTag)))),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(m.renderWeek(labelStyle, valueStyle))
	b.WriteString("\n")
	b.WriteString(m.renderCalendar(labelStyle))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("h/l week • [/] month • r reset • q quit"))
	return b.String()
}

func (m DashboardModel) renderWeek(labelStyle, valueStyle lipgloss.Style) string {
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain))

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("Week of %s", m.metrics.WeekStart)))
	b.WriteString("  ")
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d min", m.metrics.WeeklyMinutes)))
	if m.goal > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf(" / %d min goal (%.0f%%)", m.goal, m.metrics.GoalProgress*100)))
	}
	b.WriteString("\n")

	max := 0
	for _, v := range m.metrics.Chart {
		if v > max {
			max = v
		}
	}
	for i, v := range m.metrics.Chart {
		width := 0
		if max > 0 {
			width = v * 24 / max
		}
		if v > 0 && width == 0 {
			width = 1
		}
		b.WriteString(fmt.Sprintf("%s %-24s %3d\n",
			labelStyle.Render(weekdayLabels[i]),
			barStyle.Render(strings.Repeat("█", width)),
			v))
	}
	return b.String()
}

func (m DashboardModel) renderCalendar(labelStyle lipgloss.Style) string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	todayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	dayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	today := models.DateOf(time.Now())
	cells := analytics.MonthGrid(m.metrics.Qualifying, m.year, m.month)

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s %d", m.month, m.year)))
	b.WriteString("\n")
	for _, l := range weekdayLabels {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%4s", l[:2])))
	}
	b.WriteString("\n")

	for i, c := range cells {
		if c.Day == 0 {
			b.WriteString("    ")
		} else {
			cell := fmt.Sprintf("%4d", c.Day)
			switch {
			case c.Date.Equal(today):
				b.WriteString(todayStyle.Render(cell))
			case c.Active:
				b.WriteString(activeStyle.Render(cell))
			default:
				b.WriteString(dayStyle.Render(cell))
			}
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	if len(cells)%7 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
