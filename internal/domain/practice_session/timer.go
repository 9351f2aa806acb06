package practicesession

import "time"

// Phase is the interaction state of the current question.
type Phase string

const (
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	PhaseAnswered       Phase = "answered"
	PhaseTimedOut       Phase = "timed_out"
	PhaseComplete       Phase = "complete"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// remaining returns max(0, d - (now - start)).
func remaining(d time.Duration, start, now time.Time) time.Duration {
	left := d - now.Sub(start)
	if left < 0 {
		return 0
	}
	return left
}

func (r *Round) phase() Phase {
	switch {
	case r.Complete():
		return PhaseComplete
	case r.feedbackShown && r.feedbackTimedOut:
		return PhaseTimedOut
	case r.feedbackShown:
		return PhaseAnswered
	default:
		return PhaseAwaitingAnswer
	}
}

// expire records a timeout for the current question when the timer has run
// out and no answer was confirmed. It reports whether a timeout was recorded.
func (r *Round) expire(d time.Duration, now time.Time) bool {
	if r.phase() != PhaseAwaitingAnswer || remaining(d, r.questionStart, now) > 0 {
		return false
	}
	q, ok := r.Current()
	if !ok {
		return false
	}
	display := r.DisplayOptions(q)
	r.feedbackShown = true
	r.feedbackTimedOut = true
	if rec, ok := r.Record(q, NoSelection, display.Correct, true); ok {
		r.lastRecord = &rec
	}
	return true
}

// startQuestion resets per-question interaction state. timed reports whether
// the countdown runs from now.
func (r *Round) startQuestion(now time.Time, timed bool) {
	r.selected = ""
	r.feedbackShown = false
	r.feedbackTimedOut = false
	r.lastRecord = nil
	r.questionStart = now
	r.clockStarted = timed
}

// startClock begins the countdown for the current question unless it already
// ran. Toggling the timer off and on does not give the question more time.
func (r *Round) startClock(now time.Time) {
	if r.clockStarted {
		return
	}
	r.questionStart = now
	r.clockStarted = true
}
