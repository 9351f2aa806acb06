package practicesession_test

import (
	"fmt"
	"time"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// scriptedRandom returns queued permutations and falls back to identity.
type scriptedRandom struct {
	perms [][]int
}

func (s *scriptedRandom) Perm(n int) []int {
	if len(s.perms) > 0 && len(s.perms[0]) == n {
		p := s.perms[0]
		s.perms = s.perms[1:]
		return p
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func fiveOptions() []questionbank.Option {
	return []questionbank.Option{
		{Letter: "A", Text: "alpha"},
		{Letter: "B", Text: "bravo"},
		{Letter: "C", Text: "charlie"},
		{Letter: "D", Text: "delta"},
		{Letter: "E", Text: "echo"},
	}
}

func question(id, topic string, difficulty int, correct string) questionbank.Question {
	return questionbank.Question{
		ID:          id,
		Topic:       topic,
		Prompt:      "Prompt " + id,
		Options:     fiveOptions(),
		RawCorrect:  correct,
		Explanation: "Because " + id,
		Difficulty:  difficulty,
	}
}

// topicBank builds count questions per topic, all at the given difficulty
// and with correct answer A.
func topicBank(difficulty int, topics ...topicCount) *questionbank.QuestionBank {
	bank := questionbank.New("test.csv")
	for _, t := range topics {
		for i := 0; i < t.count; i++ {
			if err := bank.AddQuestion(question(fmt.Sprintf("%s-%d", t.name, i), t.name, difficulty, "A")); err != nil {
				panic(err)
			}
		}
	}
	return bank
}

type topicCount struct {
	name  string
	count int
}

func mixedBank() *questionbank.QuestionBank {
	bank := questionbank.New("mixed.csv")
	rows := []questionbank.Question{
		question("1", "Labor", 1, "A"),
		question("2", "Labor", 2, "B"),
		question("3", "Puerperium", 2, "C"),
		question("4", "Puerperium", 3, "D"),
		question("5", "Prenatal", 4, "E"),
	}
	for _, q := range rows {
		if err := bank.AddQuestion(q); err != nil {
			panic(err)
		}
	}
	return bank
}
