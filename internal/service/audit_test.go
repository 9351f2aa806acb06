package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/remaimber-it/quizbank/internal/audit"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/service"
	"github.com/remaimber-it/quizbank/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory store.Store.
type memStore struct {
	mu      sync.Mutex
	loads   []store.BankLoad
	events  []store.StoredEvent
	failAll bool
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) SaveBankLoad(_ context.Context, load store.BankLoad) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("disk full")
	}
	m.loads = append(m.loads, load)
	return nil
}

func (m *memStore) ListBankLoads(_ context.Context, limit int) ([]store.BankLoad, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.BankLoad
	for i := len(m.loads) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, m.loads[i])
	}
	return out, nil
}

func (m *memStore) SaveEvent(_ context.Context, e audit.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll {
		return errors.New("disk full")
	}
	m.events = append(m.events, store.StoredEvent{ID: int64(len(m.events) + 1), Event: e})
	return nil
}

func (m *memStore) ListEvents(_ context.Context, limit int) ([]store.StoredEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.StoredEvent
	for i := len(m.events) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}

func (m *memStore) Close() error { return nil }

func TestAuditService_PersistsEventsAndLoads(t *testing.T) {
	ms := newMemStore()
	as := service.NewAuditService(ms, discardLogger(), 2)

	bank := questionbank.New("questions.csv")
	bank.Encoding = "utf-8"
	bank.Delimiter = ","
	as.RecordBankLoad(bank)
	for _, id := range []string{"q1", "q2", "q3"} {
		as.Report(audit.Event{Kind: audit.KindAnswerKeyRepaired, BankID: bank.ID, QuestionID: id})
	}
	as.Close()

	loads, err := as.BankLoads(context.Background(), 10)
	if err != nil {
		t.Fatalf("bank loads: %v", err)
	}
	if len(loads) != 1 || loads[0].ID != bank.ID {
		t.Fatalf("expected the bank load persisted, got %+v", loads)
	}
	if loads[0].Source != "questions.csv" || loads[0].Encoding != "utf-8" {
		t.Errorf("unexpected load %+v", loads[0])
	}

	events, err := as.Events(context.Background(), 10)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for _, e := range events {
		if e.At.IsZero() {
			t.Errorf("expected event time to be stamped, got %+v", e)
		}
	}
}

func TestAuditService_CloseDrainsQueuedWrites(t *testing.T) {
	ms := newMemStore()
	as := service.NewAuditService(ms, discardLogger(), 1)

	for i := 0; i < 600; i++ {
		as.Report(audit.Event{Kind: audit.KindRowRejected, BankID: "b", QuestionID: fmt.Sprint(i)})
	}
	as.Close()

	if len(ms.events) != 600 {
		t.Errorf("expected all 600 writes before Close returns, got %d", len(ms.events))
	}
}

func TestAuditService_FailedWritesDoNotBlock(t *testing.T) {
	ms := newMemStore()
	ms.failAll = true
	as := service.NewAuditService(ms, discardLogger(), 1)

	for i := 0; i < 10; i++ {
		as.Report(audit.Event{Kind: audit.KindRowRejected, BankID: "b"})
	}
	as.Close()

	if len(ms.events) != 0 {
		t.Errorf("expected no events stored, got %d", len(ms.events))
	}
}

func TestAuditService_DropsAfterClose(t *testing.T) {
	ms := newMemStore()
	as := service.NewAuditService(ms, discardLogger(), 1)
	as.Close()
	as.Close()

	as.Report(audit.Event{Kind: audit.KindRowRejected, BankID: "b"})
	as.RecordBankLoad(questionbank.New("late.csv"))

	if len(ms.events) != 0 || len(ms.loads) != 0 {
		t.Errorf("expected writes after close to be dropped, got %d events %d loads", len(ms.events), len(ms.loads))
	}
}
