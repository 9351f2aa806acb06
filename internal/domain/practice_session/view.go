package practicesession

import (
	"time"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// QuestionView is the current question without its answer key.
type QuestionView struct {
	ID         string
	Topic      string
	Difficulty int
	Prompt     string
	Options    []questionbank.Option
	Image1     string
	Image2     string
}

// Feedback is shown once an answer is confirmed or the timer expires.
type Feedback struct {
	Correct     string
	CorrectText string
	Explanation string
	Record      *AnswerRecord
}

type TimerView struct {
	Enabled   bool
	Duration  time.Duration
	Remaining time.Duration
}

// View is a read-only snapshot of everything a host needs to render.
type View struct {
	Status  Status
	Phase   Phase
	Message string

	BankID     string
	BankSource string

	Position int
	Total    int

	Question *QuestionView
	Selected string
	Feedback *Feedback

	Timer TimerView

	Counters      Counters
	Accuracy      float64
	RecentAnswers []AnswerRecord
	TopicErrors   []TopicErrors
	WorstTopic    string

	AvailableTopics       []string
	AvailableDifficulties []int
	ActiveTopics          []string
	ActiveDifficulties    []int
}

const (
	msgNoBank    = "Load a question bank to start."
	msgIdle      = "Choose filters and start a round."
	msgNoMatches = "No questions match the selected topics and difficulties. Widen the filters and start again."
	msgComplete  = "Round complete. Start a new round to practice again."
)

// Snapshot applies the timer and returns the current view.
func (s *Session) Snapshot() View {
	s.observe()

	v := View{
		Timer: TimerView{
			Enabled:  s.config.TimerEnabled,
			Duration: s.config.TimerDuration,
		},
		ActiveTopics:       append([]string(nil), s.config.Topics...),
		ActiveDifficulties: append([]int(nil), s.config.Difficulties...),
		WorstTopic:         NoTopic,
	}

	switch {
	case s.bank == nil:
		v.Status, v.Message = StatusNoBank, msgNoBank
		return v
	case s.noMatches:
		v.Status, v.Message = StatusNoMatches, msgNoMatches
	case s.round == nil:
		v.Status, v.Message = StatusIdle, msgIdle
	default:
		v.Status = StatusInRound
	}
	v.BankID = s.bank.ID
	v.BankSource = s.bank.Source
	v.AvailableTopics = s.bank.Topics()
	v.AvailableDifficulties = s.bank.Difficulties()

	r := s.round
	if r == nil {
		return v
	}

	rep := BuildReport(r.ledger, r.counters)
	v.Counters = r.counters
	v.Accuracy = rep.Accuracy
	v.TopicErrors = rep.TopicErrors
	v.WorstTopic = rep.WorstTopic
	v.RecentAnswers = tail(r.ledger, LedgerTail)

	v.Phase = r.phase()
	v.Total = r.Len()
	v.Position = min(r.position+1, r.Len())
	if v.Phase == PhaseComplete {
		v.Message = msgComplete
		return v
	}

	q, ok := r.Current()
	if !ok {
		return v
	}
	display := r.DisplayOptions(q)
	v.Question = &QuestionView{
		ID:         q.ID,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Prompt:     q.Prompt,
		Options:    display.Options,
		Image1:     q.Image1,
		Image2:     q.Image2,
	}
	v.Selected = r.selected

	if r.feedbackShown {
		fb := &Feedback{
			Correct:     display.Correct,
			Explanation: q.Explanation,
		}
		for _, o := range display.Options {
			if o.Letter == display.Correct {
				fb.CorrectText = o.Text
			}
		}
		if r.lastRecord != nil {
			rec := *r.lastRecord
			fb.Record = &rec
		}
		v.Feedback = fb
	} else if s.config.TimerEnabled {
		v.Timer.Remaining = remaining(s.config.TimerDuration, r.questionStart, s.clock.Now())
	}
	return v
}

func tail(ledger []AnswerRecord, n int) []AnswerRecord {
	if len(ledger) > n {
		ledger = ledger[len(ledger)-n:]
	}
	return append([]AnswerRecord(nil), ledger...)
}
