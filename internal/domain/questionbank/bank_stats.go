package questionbank

import "sort"

// Summary counts the bank's questions per topic and per difficulty level.
type Summary struct {
	Total        int
	ByTopic      map[string]int
	ByDifficulty map[int]int
}

// Topics returns the distinct topics, sorted.
func (qb *QuestionBank) Topics() []string {
	seen := make(map[string]struct{})
	topics := []string{}
	for _, q := range qb.Questions {
		if _, ok := seen[q.Topic]; ok {
			continue
		}
		seen[q.Topic] = struct{}{}
		topics = append(topics, q.Topic)
	}
	sort.Strings(topics)
	return topics
}

// Difficulties returns the distinct difficulty levels present, ascending.
func (qb *QuestionBank) Difficulties() []int {
	seen := make(map[int]struct{})
	levels := []int{}
	for _, q := range qb.Questions {
		if _, ok := seen[q.Difficulty]; ok {
			continue
		}
		seen[q.Difficulty] = struct{}{}
		levels = append(levels, q.Difficulty)
	}
	sort.Ints(levels)
	return levels
}

func (qb *QuestionBank) Summary() Summary {
	s := Summary{
		Total:        len(qb.Questions),
		ByTopic:      make(map[string]int),
		ByDifficulty: make(map[int]int),
	}
	for _, q := range qb.Questions {
		s.ByTopic[q.Topic]++
		s.ByDifficulty[q.Difficulty]++
	}
	return s
}
