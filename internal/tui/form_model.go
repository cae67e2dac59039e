package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studylog/internal/data"
	"studylog/internal/models"
	"studylog/internal/parser"
)

// FormMode selects between creating a new session and editing one.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

type formStep int

const (
	stepTitle formStep = iota
	stepMinutes
	stepDate
	stepTags
	stepNotes
	stepConfirm
)

var formFieldLabels = []string{"Title", "Minutes", "Date", "Tags", "Notes"}

// SessionFormModel is the TUI model for the session form: one input
// per field, walked step by step, with a confirm screen at the end.
type SessionFormModel struct {
	tracker   *data.Tracker
	mode      FormMode
	sessionID string

	step   formStep
	inputs []textinput.Model
	width  int
	height int

	validationErr string
	err           error
	completed     bool
	cancelled     bool
	saved         models.Session
}

// NewSessionFormModel builds the form, prefilled from input (current
// values when editing, parsed quick-entry values when creating).
func NewSessionFormModel(tracker *data.Tracker, mode FormMode, sessionID string, input data.SessionInput) SessionFormModel {
	inputs := make([]textinput.Model, 5)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[stepTitle].Placeholder = "What did you study? (at least 3 characters)"
	inputs[stepTitle].CharLimit = 120
	inputs[stepTitle].Focus()

	inputs[stepMinutes].Placeholder = "How long, in minutes? (1-600)"
	inputs[stepMinutes].CharLimit = 3

	inputs[stepDate].Placeholder = "YYYY-MM-DD, today, yesterday (Enter for today)"
	inputs[stepDate].CharLimit = 20

	inputs[stepTags].Placeholder = "Comma-separated tags (Enter to skip)"
	inputs[stepTags].CharLimit = 120

	inputs[stepNotes].Placeholder = "Notes, max 200 characters (Enter to skip)"
	inputs[stepNotes].CharLimit = 200

	inputs[stepTitle].SetValue(input.Title)
	if input.Minutes > 0 {
		inputs[stepMinutes].SetValue(strconv.Itoa(input.Minutes))
	}
	if !input.Date.IsZero() {
		inputs[stepDate].SetValue(input.Date.String())
	}
	if len(input.Tags) > 0 {
		inputs[stepTags].SetValue(strings.Join(input.Tags, ", "))
	}
	inputs[stepNotes].SetValue(input.Notes)

	return SessionFormModel{
		tracker:   tracker,
		mode:      mode,
		sessionID: sessionID,
		step:      stepTitle,
		inputs:    inputs,
	}
}

// Init initializes the model
func (m SessionFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m SessionFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.advance()

		case "shift+tab", "up":
			if m.step > stepTitle {
				m.validationErr = ""
				m.setStep(m.step - 1)
			}
			return m, nil
		}

		if m.step == stepConfirm {
			switch msg.String() {
			case "y", "Y":
				return m.submit()
			case "n", "N":
				m.setStep(stepTitle)
				return m, nil
			}
			return m, nil
		}
	}

	if m.step < stepConfirm {
		var cmd tea.Cmd
		m.inputs[m.step], cmd = m.inputs[m.step].Update(msg)
		return m, cmd
	}
	return m, nil
}

// advance validates the current field and moves to the next step.
func (m SessionFormModel) advance() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.step {
	case stepTitle:
		if len(strings.TrimSpace(m.inputs[stepTitle].Value())) < 3 {
			m.validationErr = "Title must be at least 3 characters long"
			return m, nil
		}
	case stepMinutes:
		minutes, err := strconv.Atoi(strings.TrimSpace(m.inputs[stepMinutes].Value()))
		if err != nil || minutes < 1 || minutes > 600 {
			m.validationErr = "Minutes must be between 1 and 600"
			return m, nil
		}
	case stepDate:
		raw := strings.TrimSpace(m.inputs[stepDate].Value())
		if raw == "" {
			m.inputs[stepDate].SetValue(models.DateOf(time.Now()).String())
		} else if _, err := parser.ParseDay(raw); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
	case stepConfirm:
		return m.submit()
	}

	m.setStep(m.step + 1)
	return m, nil
}

func (m *SessionFormModel) setStep(step formStep) {
	m.step = step
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if step < stepConfirm {
		m.inputs[step].Focus()
	}
}

// submit builds the input from the fields and saves through the
// tracker. A validation error from the data layer sends the form back
// to its first step with the message shown.
func (m SessionFormModel) submit() (tea.Model, tea.Cmd) {
	minutes, _ := strconv.Atoi(strings.TrimSpace(m.inputs[stepMinutes].Value()))
	date, err := parser.ParseDay(m.inputs[stepDate].Value())
	if err != nil {
		m.validationErr = err.Error()
		m.setStep(stepDate)
		return m, nil
	}

	var tags []string
	for _, tag := range strings.Split(m.inputs[stepTags].Value(), ",") {
		if formatted := data.FormatTagName(tag); formatted != "" {
			tags = append(tags, formatted)
		}
	}

	input := data.SessionInput{
		Title:   m.inputs[stepTitle].Value(),
		Minutes: minutes,
		Date:    date,
		Tags:    tags,
		Notes:   m.inputs[stepNotes].Value(),
	}

	var saved models.Session
	if m.mode == FormEdit {
		saved, err = m.tracker.UpdateSession(m.sessionID, input)
	} else {
		saved, err = m.tracker.CreateSession(input)
	}
	if err != nil {
		m.validationErr = err.Error()
		m.setStep(stepTitle)
		return m, nil
	}

	m.saved = saved
	m.completed = true
	return m, tea.Quit
}

// View renders the form
func (m SessionFormModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	header := "New Study Session"
	if m.mode == FormEdit {
		header = "Edit Study Session"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	for i, label := range formFieldLabels {
		step := formStep(i)
		switch {
		case step == m.step:
			b.WriteString(activeLabelStyle.Render("> " + label))
			b.WriteString("\n  ")
			b.WriteString(m.inputs[i].View())
		case step < m.step || m.step == stepConfirm:
			b.WriteString(labelStyle.Render("  " + label + ": "))
			b.WriteString(valueStyle.Render(m.inputs[i].Value()))
		default:
			b.WriteString(labelStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}

	if m.step == stepConfirm {
		b.WriteString("\n")
		b.WriteString(valueStyle.Render("Save this session? (y/n)"))
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter next • shift+tab back • esc cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())

	if m.width > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
