package questionbank

// Option is one answer choice identified by its original letter.
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is one normalized row of the bank. It is never mutated after load.
type Question struct {
	ID          string
	Topic       string
	Prompt      string
	Options     []Option
	RawCorrect  string // answer key as found in the source
	Explanation string
	Difficulty  int
	Tags        string
	Image1      string
	Image2      string
}

// Letters returns the option letters in original order.
func (q Question) Letters() []string {
	letters := make([]string, len(q.Options))
	for i, o := range q.Options {
		letters[i] = o.Letter
	}
	return letters
}

// OptionText returns the text behind an original letter.
func (q Question) OptionText(letter string) (string, bool) {
	for _, o := range q.Options {
		if o.Letter == letter {
			return o.Text, true
		}
	}
	return "", false
}

// ResolveCorrect returns the original letter of the correct option.
// When the raw key does not name one of the options, the first option is
// used instead and repaired is true; the question stays playable.
func (q Question) ResolveCorrect() (letter string, repaired bool) {
	if len(q.Options) == 0 {
		return "", true
	}

	normalized := NormalizeLetter(q.RawCorrect)
	if _, ok := q.OptionText(normalized); ok {
		return normalized, false
	}
	return q.Options[0].Letter, true
}
