// Package audit carries non-fatal data-quality events out of the quiz engine
// and the loader so operators can review them without interrupting a round.
package audit

import (
	"log/slog"
	"time"
)

type Kind string

const (
	KindAnswerKeyRepaired Kind = "answer_key_repaired"
	KindOptionsFabricated Kind = "options_fabricated"
	KindRowRejected       Kind = "row_rejected"
)

// Event describes one repaired or dropped piece of source data.
type Event struct {
	Kind       Kind
	BankID     string
	Source     string
	QuestionID string
	Detail     string
	At         time.Time
}

// Sink receives events. Implementations must not block the caller for long.
type Sink interface {
	Report(Event)
}

// Discard drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Event) {}

// LogSink writes events to a structured logger at warn level.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Report(e Event) {
	s.logger.Warn("data quality",
		"kind", string(e.Kind),
		"bank_id", e.BankID,
		"source", e.Source,
		"question_id", e.QuestionID,
		"detail", e.Detail,
	)
}

// Multi fans an event out to several sinks in order.
type Multi []Sink

func (m Multi) Report(e Event) {
	for _, s := range m {
		s.Report(e)
	}
}

// Recorder keeps events in memory. Tests use it to assert on emitted events.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Report(e Event) {
	r.Events = append(r.Events, e)
}
