package practicesession

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/remaimber-it/quizbank/internal/audit"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// Randomizer produces permutations of [0, n).
type Randomizer interface {
	Perm(n int) []int
}

type systemRandom struct{}

func (systemRandom) Perm(n int) []int { return rand.Perm(n) }

// SystemRandom draws from the runtime-seeded math/rand/v2 source.
var SystemRandom Randomizer = systemRandom{}

// Counters only grow while answers are appended; ClearStatistics zeroes them.
type Counters struct {
	Answered int
	Correct  int
	Wrong    int
}

// Round is one randomized pass over the questions matching the filters.
type Round struct {
	bank        *questionbank.QuestionBank
	filteredIDs []string
	order       []int
	position    int

	shuffleMemo map[string][]string
	repaired    map[string]bool

	answered map[string]bool
	ledger   []AnswerRecord
	counters Counters

	rng  Randomizer
	sink audit.Sink
	now  func() time.Time

	selected         string
	feedbackShown    bool
	feedbackTimedOut bool
	questionStart    time.Time
	clockStarted     bool
	lastRecord       *AnswerRecord
}

// BuildRound selects the questions whose topic and difficulty are both in
// the given sets, in bank order, and draws a fresh order over them. An empty
// set means every value present in the bank. It returns false when nothing
// matches.
func BuildRound(bank *questionbank.QuestionBank, topics []string, difficulties []int, rng Randomizer) (*Round, bool) {
	if bank == nil {
		return nil, false
	}
	if rng == nil {
		rng = SystemRandom
	}
	if len(topics) == 0 {
		topics = bank.Topics()
	}
	if len(difficulties) == 0 {
		difficulties = bank.Difficulties()
	}

	var ids []string
	for _, q := range bank.Questions {
		if slices.Contains(topics, q.Topic) && slices.Contains(difficulties, q.Difficulty) {
			ids = append(ids, q.ID)
		}
	}
	if len(ids) == 0 {
		return nil, false
	}

	return &Round{
		bank:        bank,
		filteredIDs: ids,
		order:       rng.Perm(len(ids)),
		shuffleMemo: make(map[string][]string),
		repaired:    make(map[string]bool),
		answered:    make(map[string]bool),
		rng:         rng,
		sink:        audit.Discard,
		now:         time.Now,
	}, true
}

// Len is the number of questions in the round.
func (r *Round) Len() int { return len(r.order) }

// Position is the 0-based index of the current question in the order.
func (r *Round) Position() int { return r.position }

// Complete reports whether every question has been advanced past.
func (r *Round) Complete() bool { return r.position >= len(r.order) }

// QuestionIDs returns the filtered ids in bank order.
func (r *Round) QuestionIDs() []string { return slices.Clone(r.filteredIDs) }

// Order returns the permutation over QuestionIDs.
func (r *Round) Order() []int { return slices.Clone(r.order) }

// Current returns the question at the current position.
func (r *Round) Current() (questionbank.Question, bool) {
	if r.Complete() {
		return questionbank.Question{}, false
	}
	return r.bank.Question(r.filteredIDs[r.order[r.position]])
}

// Ledger returns a copy of the answer records in answer order.
func (r *Round) Ledger() []AnswerRecord { return slices.Clone(r.ledger) }

func (r *Round) Counters() Counters { return r.counters }

// Answered reports whether id has a record in the ledger.
func (r *Round) Answered(id string) bool { return r.answered[id] }

// clearStatistics empties the ledger, counters and answered set along with
// the outcome shown as feedback. Order, position and option memos are kept.
func (r *Round) clearStatistics() {
	r.ledger = nil
	r.counters = Counters{}
	r.answered = make(map[string]bool)
	r.lastRecord = nil
}
