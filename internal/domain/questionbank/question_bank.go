package questionbank

import (
	"errors"
	"fmt"

	"github.com/remaimber-it/quizbank/internal/id"
)

var (
	ErrEmptyPrompt = errors.New("question prompt cannot be empty")
	ErrDuplicateID = errors.New("duplicate question id")
	ErrNoOptions   = errors.New("question has no options")
)

// QuestionBank is the full normalized table loaded from one source.
type QuestionBank struct {
	ID        string
	Source    string // file name or URL the bank came from
	Encoding  string // detected text encoding
	Delimiter string // detected column delimiter
	Questions []Question

	index map[string]int
}

func New(source string) *QuestionBank {
	return &QuestionBank{
		ID:        id.GenerateID(),
		Source:    source,
		Questions: []Question{},
		index:     make(map[string]int),
	}
}

// AddQuestion appends q, keeping ids unique.
func (qb *QuestionBank) AddQuestion(q Question) error {
	if q.Prompt == "" {
		return ErrEmptyPrompt
	}
	if len(q.Options) == 0 {
		return ErrNoOptions
	}
	if qb.index == nil {
		qb.index = make(map[string]int)
	}
	if _, exists := qb.index[q.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, q.ID)
	}

	qb.index[q.ID] = len(qb.Questions)
	qb.Questions = append(qb.Questions, q)
	return nil
}

// Question looks a record up by id.
func (qb *QuestionBank) Question(questionID string) (Question, bool) {
	i, ok := qb.index[questionID]
	if !ok {
		return Question{}, false
	}
	return qb.Questions[i], true
}

func (qb *QuestionBank) Len() int {
	return len(qb.Questions)
}
