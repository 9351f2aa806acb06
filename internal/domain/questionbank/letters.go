package questionbank

import "strings"

// OptionLetters is the fixed identifier sequence for answer options.
var OptionLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// DefaultLetters is the identifier set used when a row has no option text at all.
var DefaultLetters = OptionLetters[:5]

// NormalizeLetter trims the raw answer key, drops one trailing ")" or "."
// and uppercases the result. "c)" and " C. " both become "C".
func NormalizeLetter(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, ")") || strings.HasSuffix(s, ".") {
		s = s[:len(s)-1]
	}
	return strings.ToUpper(strings.TrimSpace(s))
}
