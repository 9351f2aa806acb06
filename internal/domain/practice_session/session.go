package practicesession

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/remaimber-it/quizbank/internal/audit"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

var (
	ErrNoBank          = errors.New("no question bank loaded")
	ErrNoRound         = errors.New("no round in progress")
	ErrRoundComplete   = errors.New("round is complete")
	ErrInputLocked     = errors.New("answer already recorded for this question")
	ErrInvalidLetter   = errors.New("letter is not one of the displayed options")
	ErrNoSelection     = errors.New("select an option before confirming")
	ErrFeedbackPending = errors.New("confirm an answer or wait for the timer before advancing")
)

// Status is the session-level state shown when no question is on screen.
type Status string

const (
	StatusNoBank    Status = "no_bank"
	StatusIdle      Status = "idle"
	StatusNoMatches Status = "no_matches"
	StatusInRound   Status = "in_round"
)

// LedgerTail is how many recent answers a View carries.
const LedgerTail = 10

// Session owns one user's bank, filters, timer settings and round. It is not
// safe for concurrent use.
type Session struct {
	bank      *questionbank.QuestionBank
	config    SessionConfig
	round     *Round
	noMatches bool

	clock Clock
	rng   Randomizer
	sink  audit.Sink
}

type SessionOption func(*Session)

func WithClock(c Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

func WithRandomizer(r Randomizer) SessionOption {
	return func(s *Session) { s.rng = r }
}

func WithSink(sink audit.Sink) SessionOption {
	return func(s *Session) { s.sink = sink }
}

func WithConfig(c SessionConfig) SessionOption {
	return func(s *Session) { s.config = c }
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		config: DefaultConfig(),
		clock:  SystemClock,
		rng:    SystemRandom,
		sink:   audit.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bank returns the loaded bank, or nil.
func (s *Session) Bank() *questionbank.QuestionBank { return s.bank }

func (s *Session) Config() SessionConfig { return s.config }

// Round returns the active round, or nil.
func (s *Session) Round() *Round { return s.round }

// LoadBank installs a new bank, discarding any round and clearing filters.
func (s *Session) LoadBank(bank *questionbank.QuestionBank) {
	s.bank = bank
	s.round = nil
	s.noMatches = false
	s.config.Topics = nil
	s.config.Difficulties = nil
}

// ApplyFilters stores the topic and difficulty filters. With a bank loaded
// the round is restarted under the new filters.
func (s *Session) ApplyFilters(topics []string, difficulties []int) error {
	s.observe()
	s.config.Topics = dedupeTopics(topics)
	s.config.Difficulties = dedupeDifficulties(difficulties)
	if s.bank == nil {
		return nil
	}
	return s.StartRound()
}

// SetTimer enables or disables the per-question timer. A zero duration keeps
// the current one.
func (s *Session) SetTimer(enabled bool, duration time.Duration) error {
	s.observe()
	if duration == 0 {
		duration = s.config.TimerDuration
	}
	if err := ValidateTimerDuration(duration); err != nil {
		return err
	}
	s.config.TimerEnabled = enabled
	s.config.TimerDuration = duration
	if enabled && s.round != nil && s.round.phase() == PhaseAwaitingAnswer {
		s.round.startClock(s.clock.Now())
	}
	return nil
}

// StartRound builds a fresh round under the current filters. When nothing
// matches the session enters StatusNoMatches and nil is returned.
func (s *Session) StartRound() error {
	if s.bank == nil {
		return ErrNoBank
	}
	round, ok := BuildRound(s.bank, s.config.Topics, s.config.Difficulties, s.rng)
	if !ok {
		s.round = nil
		s.noMatches = true
		return nil
	}
	round.sink = s.sink
	round.now = s.clock.Now
	round.startQuestion(s.clock.Now(), s.config.TimerEnabled)
	s.round = round
	s.noMatches = false
	return nil
}

// SelectOption marks a display letter as the pending answer.
func (s *Session) SelectOption(letter string) error {
	s.observe()
	r, err := s.activeQuestion()
	if err != nil {
		return err
	}
	q, _ := r.Current()
	display := r.DisplayOptions(q)

	letter = questionbank.NormalizeLetter(letter)
	if !slices.ContainsFunc(display.Options, func(o questionbank.Option) bool { return o.Letter == letter }) {
		return ErrInvalidLetter
	}
	r.selected = letter
	return nil
}

// ConfirmAnswer records the selected letter and shows feedback.
func (s *Session) ConfirmAnswer() (AnswerRecord, error) {
	s.observe()
	r, err := s.activeQuestion()
	if err != nil {
		return AnswerRecord{}, err
	}
	if r.selected == "" {
		return AnswerRecord{}, ErrNoSelection
	}
	q, _ := r.Current()
	display := r.DisplayOptions(q)

	rec, ok := r.Record(q, r.selected, display.Correct, false)
	r.feedbackShown = true
	r.feedbackTimedOut = false
	if !ok {
		return AnswerRecord{}, ErrInputLocked
	}
	r.lastRecord = &rec
	return rec, nil
}

// Poll applies the timer. It reports whether a timeout was recorded.
func (s *Session) Poll() bool {
	return s.observe()
}

// AdvanceQuestion moves to the next question once feedback has been shown.
func (s *Session) AdvanceQuestion() error {
	s.observe()
	if s.round == nil {
		return ErrNoRound
	}
	if s.round.Complete() {
		return ErrRoundComplete
	}
	if !s.round.feedbackShown {
		return ErrFeedbackPending
	}
	s.round.position++
	s.round.startQuestion(s.clock.Now(), s.config.TimerEnabled)
	return nil
}

// ClearStatistics empties the ledger and counters of the current round.
func (s *Session) ClearStatistics() {
	s.observe()
	if s.round != nil {
		s.round.clearStatistics()
	}
}

// Ledger returns every answer of the current round.
func (s *Session) Ledger() []AnswerRecord {
	if s.round == nil {
		return nil
	}
	return s.round.Ledger()
}

// Report summarizes the current round's ledger.
func (s *Session) Report() Report {
	s.observe()
	if s.round == nil {
		return BuildReport(nil, Counters{})
	}
	return BuildReport(s.round.ledger, s.round.counters)
}

func (s *Session) observe() bool {
	if s.round == nil || !s.config.TimerEnabled {
		return false
	}
	return s.round.expire(s.config.TimerDuration, s.clock.Now())
}

func (s *Session) activeQuestion() (*Round, error) {
	switch {
	case s.bank == nil:
		return nil, ErrNoBank
	case s.round == nil:
		return nil, ErrNoRound
	case s.round.Complete():
		return nil, ErrRoundComplete
	case s.round.feedbackShown:
		return nil, ErrInputLocked
	}
	return s.round, nil
}

func dedupeTopics(in []string) []string {
	var out []string
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

func dedupeDifficulties(in []int) []int {
	var out []int
	for _, d := range in {
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return out
}
