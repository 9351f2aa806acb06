package questionbank

import (
	"math"
	"strconv"
	"strings"

	"github.com/remaimber-it/quizbank/internal/textnorm"
)

const (
	MinDifficulty     = 1
	MaxDifficulty     = 4
	DefaultDifficulty = 2
)

// difficultyWords maps folded (lowercase, no diacritics) labels to levels.
var difficultyWords = map[string]int{
	"easy":          1,
	"facil":         1,
	"medium":        2,
	"medio":         2,
	"hard":          3,
	"dificil":       3,
	"very hard":     4,
	"muito dificil": 4,
}

var difficultyLabels = map[int]string{
	1: "Easy",
	2: "Medium",
	3: "Hard",
	4: "Very hard",
}

// NormalizeDifficulty maps a raw cell to a level in [1,4].
// Numbers are truncated, known words go through the vocabulary, anything
// else (including an empty cell) becomes DefaultDifficulty.
func NormalizeDifficulty(raw string) int {
	s := textnorm.Fold(raw)
	if s == "" {
		return DefaultDifficulty
	}

	level, ok := difficultyWords[s]
	if !ok {
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return DefaultDifficulty
		}
		f = math.Max(MinDifficulty, math.Min(MaxDifficulty, f))
		level = int(f)
	}

	return clampDifficulty(level)
}

func clampDifficulty(level int) int {
	if level < MinDifficulty {
		return MinDifficulty
	}
	if level > MaxDifficulty {
		return MaxDifficulty
	}
	return level
}

// DifficultyLabel returns the display name of a level.
func DifficultyLabel(level int) string {
	if label, ok := difficultyLabels[level]; ok {
		return label
	}
	return "Level " + strconv.Itoa(level)
}
