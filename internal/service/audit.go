package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/remaimber-it/quizbank/internal/audit"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/store"
	"github.com/remaimber-it/quizbank/internal/worker"
)

// AuditService persists bank loads and data-quality events off the command
// path. Close drains every queued write.
type AuditService struct {
	store  store.Store
	logger *slog.Logger
	pool   *worker.Pool[error]
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

var _ audit.Sink = (*AuditService)(nil)

// NewAuditService starts workers writing to s.
func NewAuditService(s store.Store, logger *slog.Logger, workers int) *AuditService {
	as := &AuditService{
		store:  s,
		logger: logger,
		pool:   worker.NewPool[error](workers, 256),
		done:   make(chan struct{}),
	}
	go as.collect()
	return as
}

// collect logs failed writes.
func (as *AuditService) collect() {
	defer close(as.done)
	for r := range as.pool.Results() {
		if r.Output != nil {
			as.logger.Error("audit write failed", "job", r.JobID, "error", r.Output)
		}
	}
}

// RecordBankLoad persists the bank's load summary.
func (as *AuditService) RecordBankLoad(bank *questionbank.QuestionBank) {
	load := store.BankLoad{
		ID:        bank.ID,
		Source:    bank.Source,
		Encoding:  bank.Encoding,
		Delimiter: bank.Delimiter,
		Questions: bank.Len(),
		Topics:    bank.Topics(),
		LoadedAt:  time.Now(),
	}
	as.submit("bank_load:"+bank.ID, func(ctx context.Context) error {
		return as.store.SaveBankLoad(ctx, load)
	})
}

// Report queues an event for persistence.
func (as *AuditService) Report(e audit.Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	as.submit(string(e.Kind)+":"+e.QuestionID, func(ctx context.Context) error {
		return as.store.SaveEvent(ctx, e)
	})
}

// submit runs fn on the pool. Writes use context.Background because they
// must outlive the request that triggered them.
func (as *AuditService) submit(jobID string, fn func(context.Context) error) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	if as.closed {
		as.logger.Warn("audit service closed; dropping write", "job", jobID)
		return
	}
	as.pool.Submit(jobID, func() error {
		return fn(context.Background())
	})
}

// Events lists persisted events, newest first.
func (as *AuditService) Events(ctx context.Context, limit int) ([]store.StoredEvent, error) {
	return as.store.ListEvents(ctx, limit)
}

// BankLoads lists persisted bank loads, newest first.
func (as *AuditService) BankLoads(ctx context.Context, limit int) ([]store.BankLoad, error) {
	return as.store.ListBankLoads(ctx, limit)
}

// Close drains queued writes and stops the workers. Later writes are dropped.
func (as *AuditService) Close() {
	as.mu.Lock()
	if as.closed {
		as.mu.Unlock()
		return
	}
	as.closed = true
	as.mu.Unlock()

	as.pool.Close()
	<-as.done
}
