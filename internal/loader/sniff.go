package loader

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const (
	sniffSampleSize  = 20000
	sniffMaxLines    = 50
	sniffConsistency = 0.9
)

// DefaultDelimiters lists the candidates in the order they are tried.
var DefaultDelimiters = []rune{',', ';', '\t', '|'}

var errNarrowHeader = errors.New("header has fewer than two columns")

// table is a parsed grid with the header split off. lines holds the source
// line of each data row.
type table struct {
	header []string
	rows   [][]string
	lines  []int
}

func delimiterName(d rune) string {
	if d == '\t' {
		return `\t`
	}
	return string(d)
}

// sniffDelimiter picks the candidate whose per-line count (outside quotes)
// is non-zero and most consistent over the first lines of the sample.
func sniffDelimiter(text string, candidates []rune) (rune, bool) {
	sample := text
	truncated := false
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
		truncated = true
	}

	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if truncated && len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > sniffMaxLines {
		lines = lines[:sniffMaxLines]
	}
	if len(lines) == 0 {
		return 0, false
	}

	var (
		best      rune
		bestScore float64
		found     bool
	)
	for _, c := range candidates {
		freq := make(map[int]int)
		for _, line := range lines {
			freq[countOutsideQuotes(line, c)]++
		}

		mode, modeFreq := 0, 0
		for count, n := range freq {
			if n > modeFreq || (n == modeFreq && count > mode) {
				mode, modeFreq = count, n
			}
		}
		if mode == 0 {
			continue
		}

		score := float64(modeFreq) / float64(len(lines))
		if score < sniffConsistency {
			continue
		}
		if !found || score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}

func countOutsideQuotes(line string, delim rune) int {
	n := 0
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == delim && !quoted:
			n++
		}
	}
	return n
}

// parseDelimited reads text as a table. Every record must have the header's
// field count.
func parseDelimited(text string, delim rune) (*table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no header row")
		}
		return nil, err
	}
	if len(header) < 2 {
		return nil, errNarrowHeader
	}

	t := &table{header: header}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if blankRecord(record) {
			continue
		}
		line, _ := r.FieldPos(0)
		t.rows = append(t.rows, record)
		t.lines = append(t.lines, line)
	}
	return t, nil
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parse detects the delimiter and reads the table, falling back to every
// candidate in order when the detected one does not produce a table.
func (l *Loader) parse(text, encoding string) (*table, string, error) {
	var lastErr error

	detected, ok := sniffDelimiter(text, l.delimiters)
	if ok {
		t, err := parseDelimited(text, detected)
		if err == nil {
			return t, delimiterName(detected), nil
		}
		lastErr = err
	}

	tried := make([]string, 0, len(l.delimiters))
	for _, d := range l.delimiters {
		tried = append(tried, delimiterName(d))
		if ok && d == detected {
			continue
		}
		t, err := parseDelimited(text, d)
		if err == nil {
			return t, delimiterName(d), nil
		}
		lastErr = err
	}

	return nil, "", &ParseError{Encoding: encoding, Tried: tried, Wrapped: lastErr}
}
