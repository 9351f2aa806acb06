package practicesession

import (
	"fmt"
	"slices"

	"github.com/remaimber-it/quizbank/internal/audit"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// DisplayQuestion is a question as presented: options relabeled A, B, ... in
// shuffled order, with the correct answer expressed as a display letter.
type DisplayQuestion struct {
	Question questionbank.Question
	Options  []questionbank.Option
	Correct  string
	// SourceLetters[i] is the original letter behind display letter i.
	SourceLetters []string
	Repaired      bool
}

// DisplayOptions returns the shuffled presentation of q. The permutation is
// drawn once per question per round and reused while the question's letter
// set is unchanged.
func (r *Round) DisplayOptions(q questionbank.Question) DisplayQuestion {
	letters := q.Letters()

	memo, ok := r.shuffleMemo[q.ID]
	if !ok || !sameLetterSet(memo, letters) {
		perm := r.rng.Perm(len(letters))
		memo = make([]string, len(letters))
		for i, p := range perm {
			memo[i] = letters[p]
		}
		r.shuffleMemo[q.ID] = memo
	}

	d := DisplayQuestion{
		Question:      q,
		Options:       make([]questionbank.Option, len(memo)),
		SourceLetters: slices.Clone(memo),
	}
	for i, src := range memo {
		text, _ := q.OptionText(src)
		d.Options[i] = questionbank.Option{Letter: questionbank.OptionLetters[i], Text: text}
	}

	correct, repaired := q.ResolveCorrect()
	d.Repaired = repaired
	if i := slices.Index(memo, correct); i >= 0 {
		d.Correct = questionbank.OptionLetters[i]
	}

	if repaired && !r.repaired[q.ID] {
		r.repaired[q.ID] = true
		r.sink.Report(audit.Event{
			Kind:       audit.KindAnswerKeyRepaired,
			BankID:     r.bank.ID,
			Source:     r.bank.Source,
			QuestionID: q.ID,
			Detail:     fmt.Sprintf("answer key %q is not an option letter; using %s", q.RawCorrect, correct),
			At:         r.now(),
		})
	}
	return d
}

func sameLetterSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
