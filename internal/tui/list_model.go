package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studylog/internal/data"
	"studylog/internal/models"
)

// SessionListModel is the TUI model for browsing sessions: filtered
// list, free-text search, delete-to-bin with confirmation.
type SessionListModel struct {
	tracker *data.Tracker
	filter  data.Filter

	sessions []models.Session
	cursor   int
	offset   int

	searchActive bool
	searchInput  textinput.Model

	confirmDelete bool
	status        string

	width  int
	height int
}

// NewSessionListModel builds the browser with an initial filter.
func NewSessionListModel(tracker *data.Tracker, filter data.Filter) SessionListModel {
	search := textinput.New()
	search.Placeholder = "Search sessions..."
	search.Width = 40
	search.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	search.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	search.SetValue(filter.Query)

	m := SessionListModel{
		tracker:     tracker,
		filter:      filter,
		searchInput: search,
	}
	m.refresh()
	return m
}

// refresh re-applies the filter against the repository.
func (m *SessionListModel) refresh() {
	m.filter.Query = m.searchInput.Value()
	m.sessions = m.filter.Apply(m.tracker.Sessions.List(), time.Now())
	if m.cursor >= len(m.sessions) {
		m.cursor = len(m.sessions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init initializes the model
func (m SessionListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m SessionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.confirmDelete {
			return m.handleConfirmKeys(msg)
		}
		if m.searchActive {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.searchInput.Value() != "" {
				m.searchInput.SetValue("")
				m.refresh()
				return m, nil
			}
			return m, tea.Quit

		case "/":
			m.searchActive = true
			m.searchInput.Focus()
			return m, textinput.Blink

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.sessions)-1 {
				m.cursor++
			}

		case "d":
			if len(m.sessions) > 0 {
				m.confirmDelete = true
			}
		}
	}
	return m, nil
}

func (m SessionListModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchActive = false
		m.searchInput.Blur()
		if msg.String() == "esc" {
			m.searchInput.SetValue("")
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refresh()
	return m, cmd
}

func (m SessionListModel) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmDelete = false
		session := m.sessions[m.cursor]
		if _, err := m.tracker.DeleteSession(session.ID); err != nil {
			m.status = "Error: " + err.Error()
		} else {
			m.status = fmt.Sprintf("Moved %q to the recycle bin", session.Title)
		}
		m.refresh()
	case "n", "N", "esc":
		m.confirmDelete = false
	}
	return m, nil
}

// visibleRows returns how many session rows fit the window.
func (m SessionListModel) visibleRows() int {
	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}
	return rows
}

// View renders the browser
func (m SessionListModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAppBackground)).
		Background(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("My Sessions"))
	b.WriteString("\n")

	if m.searchActive || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	if len(m.sessions) == 0 {
		if m.filter.IsZero() {
			b.WriteString("\nNo sessions yet. Press q to quit.\n")
		} else {
			b.WriteString("\nNo sessions match. Press esc to clear the search or q to quit.\n")
		}
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-34s %-12s %-6s %s", "TITLE", "DATE", "MIN", "TAGS")))
	b.WriteString("\n")

	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}

	end := m.offset + rows
	if end > len(m.sessions) {
		end = len(m.sessions)
	}
	for i := m.offset; i < end; i++ {
		s := m.sessions[i]
		title := s.Title
		if len(title) > 32 {
			title = title[:29] + "..."
		}
		line := fmt.Sprintf("%-34s %-12s %-6d %s", title, s.Date.String(), s.Minutes, strings.Join(s.Tags, ","))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("\n%d of %d session(s)", m.cursor+1, len(m.sessions))))
	b.WriteString("\n")

	if m.confirmDelete {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).
			Render(fmt.Sprintf("Move %q to the recycle bin? (y/n)", m.sessions[m.cursor].Title)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ navigate • / search • d delete • esc/q quit"))
	return b.String()
}
