package practicesession_test

import (
	"slices"
	"testing"

	"github.com/remaimber-it/quizbank/internal/audit"
	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

func singleQuestionBank(q questionbank.Question) *questionbank.QuestionBank {
	bank := questionbank.New("single.csv")
	if err := bank.AddQuestion(q); err != nil {
		panic(err)
	}
	return bank
}

func TestDisplayOptions_MapsCorrectLetterThroughPermutation(t *testing.T) {
	q := question("q1", "Labor", 2, "C)")
	// display A..E show original C, A, E, B, D
	rng := &scriptedRandom{perms: [][]int{{0}, {2, 0, 4, 1, 3}}}
	round, _ := practicesession.BuildRound(singleQuestionBank(q), nil, nil, rng)

	d := round.DisplayOptions(q)

	if d.Correct != "A" {
		t.Errorf("expected display correct letter A, got %q", d.Correct)
	}
	if !slices.Equal(d.SourceLetters, []string{"C", "A", "E", "B", "D"}) {
		t.Errorf("unexpected source letters %v", d.SourceLetters)
	}
	wantText := []string{"charlie", "alpha", "echo", "bravo", "delta"}
	for i, o := range d.Options {
		if o.Letter != questionbank.OptionLetters[i] || o.Text != wantText[i] {
			t.Errorf("option %d: got %+v, want %s %s", i, o, questionbank.OptionLetters[i], wantText[i])
		}
	}
}

func TestDisplayOptions_StableWithinRound(t *testing.T) {
	q := question("q1", "Labor", 2, "B")
	round, _ := practicesession.BuildRound(singleQuestionBank(q), nil, nil, practicesession.SystemRandom)

	first := round.DisplayOptions(q)
	for i := 0; i < 20; i++ {
		again := round.DisplayOptions(q)
		if !slices.Equal(first.SourceLetters, again.SourceLetters) || first.Correct != again.Correct {
			t.Fatalf("expected a stable permutation, got %v then %v", first.SourceLetters, again.SourceLetters)
		}
	}
}

func TestDisplayOptions_RedrawsWhenLetterSetChanges(t *testing.T) {
	q := question("q1", "Labor", 2, "A")
	rng := &scriptedRandom{perms: [][]int{{0}, {4, 3, 2, 1, 0}, {1, 0, 2}}}
	round, _ := practicesession.BuildRound(singleQuestionBank(q), nil, nil, rng)
	round.DisplayOptions(q)

	narrowed := q
	narrowed.Options = q.Options[:3]
	d := round.DisplayOptions(narrowed)

	if !slices.Equal(d.SourceLetters, []string{"B", "A", "C"}) {
		t.Errorf("expected redrawn permutation over A..C, got %v", d.SourceLetters)
	}
}

func TestDisplayOptions_RepairsInvalidKeyOnce(t *testing.T) {
	q := question("q1", "Labor", 2, "Z")
	q.Options = q.Options[:3]
	rec := &audit.Recorder{}
	clock := newClock()
	s := practicesession.NewSession(
		practicesession.WithRandomizer(&scriptedRandom{}),
		practicesession.WithSink(rec),
		practicesession.WithClock(clock),
	)
	s.LoadBank(singleQuestionBank(q))
	if err := s.StartRound(); err != nil {
		t.Fatalf("start round: %v", err)
	}

	d := s.Round().DisplayOptions(q)
	s.Round().DisplayOptions(q)
	s.Snapshot()

	if d.Correct != "A" || !d.Repaired {
		t.Errorf("expected repaired correct letter A, got %q repaired=%v", d.Correct, d.Repaired)
	}
	if len(rec.Events) != 1 {
		t.Fatalf("expected exactly one repair event, got %d", len(rec.Events))
	}
	if rec.Events[0].Kind != audit.KindAnswerKeyRepaired || rec.Events[0].QuestionID != "q1" {
		t.Errorf("unexpected event %+v", rec.Events[0])
	}

	// the question is still playable
	if err := s.SelectOption("a"); err != nil {
		t.Fatalf("select: %v", err)
	}
	answer, err := s.ConfirmAnswer()
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !answer.IsCorrect {
		t.Error("expected the repaired key to accept A")
	}
}
