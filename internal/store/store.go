package store

import (
	"context"
	"time"

	"github.com/remaimber-it/quizbank/internal/audit"
)

// BankLoad is one successful bank load as seen by the operator.
type BankLoad struct {
	ID        string
	Source    string
	Encoding  string
	Delimiter string
	Questions int
	Topics    []string
	LoadedAt  time.Time
}

// StoredEvent is an audit event with its row id.
type StoredEvent struct {
	ID int64
	audit.Event
}

// Store is the operator audit trail.
type Store interface {
	SaveBankLoad(ctx context.Context, load BankLoad) error
	ListBankLoads(ctx context.Context, limit int) ([]BankLoad, error)
	SaveEvent(ctx context.Context, e audit.Event) error
	ListEvents(ctx context.Context, limit int) ([]StoredEvent, error)
	Close() error
}

var _ Store = (*SQLiteStore)(nil)
