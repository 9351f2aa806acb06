package practicesession

import (
	"time"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// NoSelection is the selected letter recorded for a timeout.
const NoSelection = "-"

// AnswerRecord is one ledger entry. Letters are display letters.
type AnswerRecord struct {
	QuestionID string
	Topic      string
	Difficulty int
	Selected   string
	Correct    string
	IsCorrect  bool
	TimedOut   bool
	AnsweredAt time.Time
}

// Record appends an answer for q unless q was already answered in this
// round, in which case it returns false and changes nothing.
func (r *Round) Record(q questionbank.Question, selected, correct string, timedOut bool) (AnswerRecord, bool) {
	if r.answered[q.ID] {
		return AnswerRecord{}, false
	}

	rec := AnswerRecord{
		QuestionID: q.ID,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Selected:   selected,
		Correct:    correct,
		IsCorrect:  !timedOut && selected != "" && selected == correct,
		TimedOut:   timedOut,
		AnsweredAt: r.now(),
	}
	if timedOut {
		rec.Selected = NoSelection
	}

	r.answered[q.ID] = true
	r.ledger = append(r.ledger, rec)
	r.counters.Answered++
	if rec.IsCorrect {
		r.counters.Correct++
	} else {
		r.counters.Wrong++
	}
	return rec, true
}
