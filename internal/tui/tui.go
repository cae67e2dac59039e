package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"studylog/internal/data"
)

// RunSessionForm starts the interactive session form for creating or
// editing a session.
func RunSessionForm(tracker *data.Tracker, mode FormMode, sessionID string, input data.SessionInput) error {
	model := NewSessionFormModel(tracker, mode, sessionID, input)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after the TUI closes
	if m, ok := finalModel.(SessionFormModel); ok {
		switch {
		case m.cancelled:
			fmt.Println("❌ Cancelled, nothing saved.")
		case m.completed && m.mode == FormCreate:
			fmt.Printf("✅ Logged \"%s\" (%d min on %s)\n", m.saved.Title, m.saved.Minutes, m.saved.Date)
		case m.completed:
			fmt.Printf("✏️  Updated \"%s\" (%d min on %s)\n", m.saved.Title, m.saved.Minutes, m.saved.Date)
		case m.err != nil:
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunSessionList starts the interactive session browser.
func RunSessionList(tracker *data.Tracker, filter data.Filter) error {
	model := NewSessionListModel(tracker, filter)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunDashboard starts the interactive dashboard on the given week
// offset and calendar month.
func RunDashboard(tracker *data.Tracker, weekOffset, year int, month time.Month) error {
	model := NewDashboardModel(tracker, weekOffset, year, month)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
