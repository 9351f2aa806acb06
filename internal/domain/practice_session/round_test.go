package practicesession_test

import (
	"slices"
	"testing"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
)

func TestBuildRound_FiltersByTopicAndDifficulty(t *testing.T) {
	bank := mixedBank()

	tests := []struct {
		name         string
		topics       []string
		difficulties []int
		want         []string
	}{
		{"no filters selects everything", nil, nil, []string{"1", "2", "3", "4", "5"}},
		{"topic only", []string{"Labor"}, nil, []string{"1", "2"}},
		{"difficulty only", nil, []int{2}, []string{"2", "3"}},
		{"both", []string{"Puerperium", "Prenatal"}, []int{3, 4}, []string{"4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round, ok := practicesession.BuildRound(bank, tt.topics, tt.difficulties, &scriptedRandom{})
			if !ok {
				t.Fatal("expected a round")
			}
			if got := round.QuestionIDs(); !slices.Equal(got, tt.want) {
				t.Errorf("expected ids %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBuildRound_NoMatches(t *testing.T) {
	round, ok := practicesession.BuildRound(mixedBank(), []string{"Labor"}, []int{4}, nil)
	if ok || round != nil {
		t.Errorf("expected empty signal, got %v %v", round, ok)
	}
}

func TestBuildRound_OrderIsPermutation(t *testing.T) {
	round, ok := practicesession.BuildRound(mixedBank(), nil, nil, practicesession.SystemRandom)
	if !ok {
		t.Fatal("expected a round")
	}
	order := round.Order()
	sorted := slices.Clone(order)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []int{0, 1, 2, 3, 4}) {
		t.Errorf("expected a permutation of 0..4, got %v", order)
	}
	if round.Position() != 0 || round.Counters().Answered != 0 || len(round.Ledger()) != 0 {
		t.Error("expected zeroed round state")
	}
}

func TestBuildRound_UsesDrawnOrder(t *testing.T) {
	rng := &scriptedRandom{perms: [][]int{{4, 3, 2, 1, 0}}}
	round, _ := practicesession.BuildRound(mixedBank(), nil, nil, rng)

	q, ok := round.Current()
	if !ok || q.ID != "5" {
		t.Errorf("expected first question 5, got %q", q.ID)
	}
}

func TestRecord_IdempotentPerQuestion(t *testing.T) {
	round, _ := practicesession.BuildRound(mixedBank(), nil, nil, &scriptedRandom{})
	q, _ := round.Current()

	if _, ok := round.Record(q, "A", "A", false); !ok {
		t.Fatal("expected first record to be appended")
	}
	if _, ok := round.Record(q, "B", "A", false); ok {
		t.Error("expected second record for the same question to be a no-op")
	}

	c := round.Counters()
	if c.Answered != 1 || len(round.Ledger()) != 1 || !round.Answered(q.ID) {
		t.Errorf("expected exactly one answer, got counters %+v ledger %d", c, len(round.Ledger()))
	}
	if c.Correct != 1 || c.Wrong != 0 {
		t.Errorf("expected one correct answer, got %+v", c)
	}
}

func TestRecord_TimeoutIsNeverCorrect(t *testing.T) {
	round, _ := practicesession.BuildRound(mixedBank(), nil, nil, &scriptedRandom{})
	q, _ := round.Current()

	rec, _ := round.Record(q, "A", "A", true)
	if rec.IsCorrect {
		t.Error("expected a timed-out record to be wrong")
	}
	if rec.Selected != practicesession.NoSelection {
		t.Errorf("expected selection %q, got %q", practicesession.NoSelection, rec.Selected)
	}
	if round.Counters().Wrong != 1 {
		t.Errorf("expected wrong counter 1, got %d", round.Counters().Wrong)
	}
}
