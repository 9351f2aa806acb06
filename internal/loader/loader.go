// Package loader turns raw tabular bytes into a normalized question bank.
package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/remaimber-it/quizbank/internal/audit"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// EmptyOptionsPolicy decides what happens to a row whose option cells are all empty.
type EmptyOptionsPolicy string

const (
	// PolicyFabricate keeps the row with letters A..E over the (empty) cells.
	PolicyFabricate EmptyOptionsPolicy = "fabricate"
	// PolicyReject drops the row.
	PolicyReject EmptyOptionsPolicy = "reject"
)

func ParseEmptyOptionsPolicy(s string) (EmptyOptionsPolicy, error) {
	switch p := EmptyOptionsPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyFabricate, PolicyReject:
		return p, nil
	case "":
		return PolicyFabricate, nil
	default:
		return "", fmt.Errorf("unknown empty options policy %q (want fabricate or reject)", s)
	}
}

type Loader struct {
	logger       *slog.Logger
	sink         audit.Sink
	encodings    []Encoding
	delimiters   []rune
	emptyOptions EmptyOptionsPolicy
}

type Option func(*Loader)

func WithEncodings(encodings ...Encoding) Option {
	return func(l *Loader) { l.encodings = encodings }
}

func WithDelimiters(delimiters ...rune) Option {
	return func(l *Loader) { l.delimiters = delimiters }
}

func WithEmptyOptionsPolicy(p EmptyOptionsPolicy) Option {
	return func(l *Loader) { l.emptyOptions = p }
}

func New(logger *slog.Logger, sink audit.Sink, opts ...Option) *Loader {
	if sink == nil {
		sink = audit.Discard
	}
	l := &Loader{
		logger:       logger,
		sink:         sink,
		encodings:    DefaultEncodings,
		delimiters:   DefaultDelimiters,
		emptyOptions: PolicyFabricate,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds a bank from raw bytes. name is used for spreadsheet detection
// and as the bank's source label.
func (l *Loader) Load(name string, raw []byte) (*questionbank.QuestionBank, error) {
	var (
		t         *table
		encoding  string
		delimiter string
		err       error
	)

	if isSpreadsheet(name, raw) {
		t, err = readSpreadsheet(raw)
		if err != nil {
			return nil, err
		}
		encoding, delimiter = spreadsheetEncoding, spreadsheetDelimiter
	} else {
		var text string
		text, encoding, err = l.decode(raw)
		if err != nil {
			return nil, err
		}
		t, delimiter, err = l.parse(text, encoding)
		if err != nil {
			return nil, err
		}
	}

	cols := resolveColumns(t.header)
	if missing := missingColumns(cols); len(missing) > 0 {
		return nil, &SchemaError{Delimiter: delimiter, Encoding: encoding, Missing: missing}
	}

	bank := questionbank.New(name)
	bank.Encoding = encoding
	bank.Delimiter = delimiter

	rejected := 0
	for i, record := range t.rows {
		q, ok := l.buildQuestion(bank, cols, record, i+1)
		if !ok {
			rejected++
			continue
		}
		if err := bank.AddQuestion(q); err != nil {
			if errors.Is(err, questionbank.ErrEmptyPrompt) {
				l.reject(bank, q.ID, "empty prompt")
				rejected++
				continue
			}
			return nil, &RowError{Line: t.lines[i], Wrapped: err}
		}
	}

	l.logger.Info("bank loaded",
		"bank_id", bank.ID,
		"source", name,
		"encoding", encoding,
		"delimiter", delimiter,
		"questions", bank.Len(),
		"rejected", rejected,
	)
	return bank, nil
}

func cell(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// buildQuestion maps one record to a Question. n is the 1-based data row,
// used for rows without an id.
func (l *Loader) buildQuestion(bank *questionbank.QuestionBank, cols map[string]int, record []string, n int) (questionbank.Question, bool) {
	q := questionbank.Question{
		ID:          cell(record, cols, colID),
		Topic:       cell(record, cols, colTopic),
		Prompt:      cell(record, cols, colPrompt),
		RawCorrect:  cell(record, cols, colCorrect),
		Explanation: cell(record, cols, colExplanation),
		Difficulty:  questionbank.NormalizeDifficulty(cell(record, cols, colDifficulty)),
		Tags:        cell(record, cols, colTags),
		Image1:      cell(record, cols, colImage1),
		Image2:      cell(record, cols, colImage2),
	}
	if q.ID == "" {
		q.ID = fmt.Sprintf("row-%d", n)
	}

	for _, letter := range questionbank.OptionLetters {
		if _, ok := cols[optionColumn(letter)]; !ok {
			break
		}
		text := cell(record, cols, optionColumn(letter))
		if text == "" {
			break
		}
		q.Options = append(q.Options, questionbank.Option{Letter: letter, Text: text})
	}

	if len(q.Options) > 0 {
		return q, true
	}

	if l.emptyOptions == PolicyReject {
		l.reject(bank, q.ID, "no option text")
		return q, false
	}

	for _, letter := range questionbank.DefaultLetters {
		q.Options = append(q.Options, questionbank.Option{
			Letter: letter,
			Text:   cell(record, cols, optionColumn(letter)),
		})
	}
	l.sink.Report(audit.Event{
		Kind:       audit.KindOptionsFabricated,
		BankID:     bank.ID,
		Source:     bank.Source,
		QuestionID: q.ID,
		Detail:     "no option text; using letters A-E",
	})
	return q, true
}

func (l *Loader) reject(bank *questionbank.QuestionBank, questionID, reason string) {
	l.sink.Report(audit.Event{
		Kind:       audit.KindRowRejected,
		BankID:     bank.ID,
		Source:     bank.Source,
		QuestionID: questionID,
		Detail:     reason,
	})
}
