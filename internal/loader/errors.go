package loader

import (
	"fmt"
	"strings"
)

// DecodeError is returned when none of the configured text encodings
// could decode the source bytes.
type DecodeError struct {
	Tried []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode bank file (tried %s); export it again as UTF-8", strings.Join(e.Tried, ", "))
}

// ParseError is returned when no candidate delimiter produced a well-formed table.
type ParseError struct {
	Encoding string
	Tried    []string
	Wrapped  error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("could not read bank as a table (encoding %s, delimiters tried: %s)", e.Encoding, strings.Join(e.Tried, " "))
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// SchemaError is returned when required columns are still missing after
// header normalization and aliasing. Delimiter and Encoding are what the
// loader detected, to help fix the source file.
type SchemaError struct {
	Delimiter string
	Encoding  string
	Missing   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("bank read with delimiter '%s' and encoding '%s', but columns are missing: %s; check the header row",
		e.Delimiter, e.Encoding, strings.Join(e.Missing, ", "))
}

// RowError points at a data row that cannot become part of the bank.
type RowError struct {
	Line    int
	Wrapped error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
}

func (e *RowError) Unwrap() error {
	return e.Wrapped
}
