package practicesession

import (
	"cmp"
	"slices"
)

// NoTopic is the WorstTopic of a report without any wrong answer.
const NoTopic = ""

type TopicErrors struct {
	Topic  string
	Errors int
}

type DifficultyStats struct {
	Difficulty int
	Answered   int
	Wrong      int
}

// Report is the statistical summary of a round.
type Report struct {
	Answered     int
	Correct      int
	Wrong        int
	Accuracy     float64
	TopicErrors  []TopicErrors
	WorstTopic   string
	ByDifficulty []DifficultyStats
}

// BuildReport derives accuracy, per-topic error counts and per-difficulty
// totals from a ledger and its counters. Timeouts count as errors.
func BuildReport(ledger []AnswerRecord, c Counters) Report {
	rep := Report{
		Answered:   c.Answered,
		Correct:    c.Correct,
		Wrong:      c.Wrong,
		WorstTopic: NoTopic,
	}
	if c.Answered > 0 {
		rep.Accuracy = float64(c.Correct) / float64(c.Answered)
	}

	topicErrors := make(map[string]int)
	byDifficulty := make(map[int]*DifficultyStats)
	for _, rec := range ledger {
		if _, ok := topicErrors[rec.Topic]; !ok {
			topicErrors[rec.Topic] = 0
		}
		ds, ok := byDifficulty[rec.Difficulty]
		if !ok {
			ds = &DifficultyStats{Difficulty: rec.Difficulty}
			byDifficulty[rec.Difficulty] = ds
		}
		ds.Answered++
		if !rec.IsCorrect {
			topicErrors[rec.Topic]++
			ds.Wrong++
		}
	}

	for topic, n := range topicErrors {
		rep.TopicErrors = append(rep.TopicErrors, TopicErrors{Topic: topic, Errors: n})
	}
	slices.SortFunc(rep.TopicErrors, func(a, b TopicErrors) int {
		if a.Errors != b.Errors {
			return cmp.Compare(b.Errors, a.Errors)
		}
		return cmp.Compare(a.Topic, b.Topic)
	})
	if len(rep.TopicErrors) > 0 && rep.TopicErrors[0].Errors > 0 {
		rep.WorstTopic = rep.TopicErrors[0].Topic
	}

	for _, ds := range byDifficulty {
		rep.ByDifficulty = append(rep.ByDifficulty, *ds)
	}
	slices.SortFunc(rep.ByDifficulty, func(a, b DifficultyStats) int {
		return cmp.Compare(a.Difficulty, b.Difficulty)
	})
	return rep
}
