package tui

import (
	"fmt"
	"math"
	"strings"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

const maxBarWidth = 30

func (m Model) View() string {
	v := m.view
	var b strings.Builder

	b.WriteString(styleHeader.Render("quizbank"))
	if v.BankSource != "" {
		b.WriteString(styleSubtle.Render(v.BankSource))
	}
	b.WriteString("\n\n")

	switch {
	case v.Status != practicesession.StatusInRound:
		b.WriteString(v.Message + "\n")
	case v.Phase == practicesession.PhaseComplete:
		b.WriteString(styleCorrect.Render(v.Message) + "\n")
	default:
		m.renderQuestion(&b)
	}

	if msg := errorText(m.err); msg != "" {
		b.WriteString("\n" + styleError.Render(msg) + "\n")
	}

	m.renderStats(&b)

	b.WriteString("\n" + styleSubtle.Render("a-j select · enter confirm · n next · r restart · c clear stats · q quit") + "\n")
	return b.String()
}

func (m Model) renderQuestion(b *strings.Builder) {
	v := m.view
	q := v.Question
	if q == nil {
		return
	}

	fmt.Fprintf(b, "Question %d of %d · %s · %s", v.Position, v.Total, q.Topic, questionbank.DifficultyLabel(q.Difficulty))
	if v.Timer.Enabled && v.Feedback == nil {
		fmt.Fprintf(b, " · %ds left", int(math.Ceil(v.Timer.Remaining.Seconds())))
	}
	b.WriteString("\n\n")
	b.WriteString(stylePrompt.Render(q.Prompt) + "\n\n")

	for _, o := range q.Options {
		line := fmt.Sprintf("%s) %s", o.Letter, o.Text)
		switch {
		case v.Feedback != nil && o.Letter == v.Feedback.Correct:
			line = styleCorrect.Render(line)
		case o.Letter == v.Selected && v.Feedback != nil:
			line = styleWrong.Render(line)
		case o.Letter == v.Selected:
			line = styleSelected.Render("> " + line)
		}
		b.WriteString("  " + line + "\n")
	}

	fb := v.Feedback
	if fb == nil {
		return
	}
	b.WriteString("\n")
	switch {
	case fb.Record == nil:
		b.WriteString(styleSubtle.Render(fmt.Sprintf("The answer was %s.", fb.Correct)))
	case fb.Record.TimedOut:
		b.WriteString(styleTimeout.Render(fmt.Sprintf("Time is up. The answer was %s.", fb.Correct)))
	case fb.Record.IsCorrect:
		b.WriteString(styleCorrect.Render("Correct!"))
	default:
		b.WriteString(styleWrong.Render(fmt.Sprintf("Wrong. The answer was %s.", fb.Correct)))
	}
	b.WriteString("\n")
	if fb.Explanation != "" {
		b.WriteString(styleSubtle.Render(fb.Explanation) + "\n")
	}
}

func (m Model) renderStats(b *strings.Builder) {
	v := m.view
	if v.Counters.Answered == 0 {
		return
	}

	fmt.Fprintf(b, "\nAnswered %d · correct %d · wrong %d · accuracy %.0f%%\n",
		v.Counters.Answered, v.Counters.Correct, v.Counters.Wrong, v.Accuracy*100)

	maxErrors := 0
	for _, te := range v.TopicErrors {
		maxErrors = max(maxErrors, te.Errors)
	}
	if maxErrors == 0 {
		return
	}

	b.WriteString("\nErrors by topic\n")
	for _, te := range v.TopicErrors {
		if te.Errors == 0 {
			continue
		}
		width := te.Errors * maxBarWidth / maxErrors
		fmt.Fprintf(b, "  %-20s %s %d\n", truncate(te.Topic, 20), strings.Repeat(styleBarRed.String(), max(width, 1)), te.Errors)
	}
	if v.WorstTopic != practicesession.NoTopic {
		fmt.Fprintf(b, "Focus on: %s\n", v.WorstTopic)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
