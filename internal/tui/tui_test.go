package tui_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/tui"
)

type identityRandom struct{}

func (identityRandom) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newBank(t *testing.T) *questionbank.QuestionBank {
	t.Helper()
	bank := questionbank.New("tui.csv")
	for _, q := range []questionbank.Question{
		{ID: "1", Topic: "Labor", Prompt: "First prompt", RawCorrect: "A", Difficulty: 1, Explanation: "Because first",
			Options: []questionbank.Option{{Letter: "A", Text: "alpha"}, {Letter: "B", Text: "bravo"}}},
		{ID: "2", Topic: "Prenatal", Prompt: "Second prompt", RawCorrect: "B", Difficulty: 2,
			Options: []questionbank.Option{{Letter: "A", Text: "alpha"}, {Letter: "B", Text: "bravo"}}},
	} {
		if err := bank.AddQuestion(q); err != nil {
			t.Fatalf("add question: %v", err)
		}
	}
	return bank
}

func newModel(t *testing.T, clock *fakeClock, cfg practicesession.SessionConfig) (tui.Model, *practicesession.Session) {
	t.Helper()
	s := practicesession.NewSession(
		practicesession.WithClock(clock),
		practicesession.WithRandomizer(identityRandom{}),
		practicesession.WithConfig(cfg),
	)
	s.LoadBank(newBank(t))
	if err := s.StartRound(); err != nil {
		t.Fatalf("start round: %v", err)
	}
	return tui.New(s), s
}

func press(t *testing.T, m tui.Model, keys ...string) tui.Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		if k == "enter" {
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(tui.Model)
	}
	return m
}

func TestModel_AnswerAndAdvance(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	m, s := newModel(t, clock, practicesession.DefaultConfig())

	if out := m.View(); !strings.Contains(out, "First prompt") {
		t.Fatalf("expected first prompt in view, got:\n%s", out)
	}

	m = press(t, m, "a", "enter")
	out := m.View()
	if !strings.Contains(out, "Correct!") {
		t.Errorf("expected correct feedback, got:\n%s", out)
	}
	if !strings.Contains(out, "Because first") {
		t.Errorf("expected explanation, got:\n%s", out)
	}
	if c := s.Snapshot().Counters; c.Answered != 1 || c.Correct != 1 {
		t.Errorf("expected 1 answered / 1 correct, got %+v", c)
	}

	m = press(t, m, "n", "a", "enter")
	out = m.View()
	if !strings.Contains(out, "Wrong. The answer was B.") {
		t.Errorf("expected wrong feedback, got:\n%s", out)
	}
	if !strings.Contains(out, "Focus on: Prenatal") {
		t.Errorf("expected topic error chart, got:\n%s", out)
	}

	m = press(t, m, "n")
	if out := m.View(); !strings.Contains(out, "Round complete") {
		t.Errorf("expected completion message, got:\n%s", out)
	}
}

func TestModel_ConfirmWithoutSelectionShowsHint(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	m, _ := newModel(t, clock, practicesession.DefaultConfig())

	m = press(t, m, "enter")
	if out := m.View(); !strings.Contains(out, "Pick an option") {
		t.Errorf("expected selection hint, got:\n%s", out)
	}

	m = press(t, m, "n")
	if out := m.View(); !strings.Contains(out, "Answer the question before moving on") {
		t.Errorf("expected feedback pending hint, got:\n%s", out)
	}
}

func TestModel_TimeoutRendersAnswer(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	cfg := practicesession.DefaultConfig()
	cfg.TimerEnabled = true
	cfg.TimerDuration = 10 * time.Second
	m, s := newModel(t, clock, cfg)

	if out := m.View(); !strings.Contains(out, "10s left") {
		t.Errorf("expected countdown, got:\n%s", out)
	}

	clock.now = clock.now.Add(11 * time.Second)
	m = press(t, m, "b")
	out := m.View()
	if !strings.Contains(out, "Time is up. The answer was A.") {
		t.Errorf("expected timeout feedback, got:\n%s", out)
	}
	if c := s.Snapshot().Counters; c.Wrong != 1 {
		t.Errorf("expected timeout counted as wrong, got %+v", c)
	}
}

func TestModel_RestartAndClear(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	m, s := newModel(t, clock, practicesession.DefaultConfig())

	m = press(t, m, "a", "enter", "c")
	if out := m.View(); strings.Contains(out, "Correct!") || !strings.Contains(out, "The answer was A.") {
		t.Errorf("expected a neutral answer line once statistics are cleared, got:\n%s", out)
	}
	if c := s.Snapshot().Counters; c.Answered != 0 {
		t.Errorf("expected cleared counters, got %+v", c)
	}

	m = press(t, m, "r")
	v := s.Snapshot()
	if v.Position != 1 || v.Feedback != nil {
		t.Errorf("expected a fresh round at position 1, got position %d feedback %v", v.Position, v.Feedback)
	}
	_ = m
}

func TestModel_QuitKeys(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	m, _ := newModel(t, clock, practicesession.DefaultConfig())

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected QuitMsg for %q", msg.String())
		}
	}
}
