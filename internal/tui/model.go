// Package tui drives a practice session from the terminal.
package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model renders one Session. The session is owned by the model; nothing else
// may call it while the program runs.
type Model struct {
	session *practicesession.Session
	view    practicesession.View
	err     error
}

func New(session *practicesession.Session) Model {
	return Model{session: session, view: session.Snapshot()}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.session.Poll()
		m.view = m.session.Snapshot()
		return m, tick()

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			_, err := m.session.ConfirmAnswer()
			m.err = err
		case "n":
			m.err = m.session.AdvanceQuestion()
		case "r":
			m.err = m.session.StartRound()
		case "c":
			m.session.ClearStatistics()
			m.err = nil
		default:
			if len(key) == 1 && key >= "a" && key <= "j" {
				m.err = m.session.SelectOption(strings.ToUpper(key))
			}
		}
		m.view = m.session.Snapshot()
	}
	return m, nil
}

// errorText turns engine errors into short hints.
func errorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, practicesession.ErrNoSelection):
		return "Pick an option (a-j) before pressing enter."
	case errors.Is(err, practicesession.ErrFeedbackPending):
		return "Answer the question before moving on."
	case errors.Is(err, practicesession.ErrInputLocked):
		return "This question is already answered. Press n for the next one."
	case errors.Is(err, practicesession.ErrRoundComplete):
		return "Round complete. Press r to start again."
	case errors.Is(err, practicesession.ErrInvalidLetter):
		return "That letter is not one of the options."
	default:
		return err.Error()
	}
}
