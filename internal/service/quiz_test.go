package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/remaimber-it/quizbank/internal/audit"
	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/loader"
	"github.com/remaimber-it/quizbank/internal/service"
	"github.com/remaimber-it/quizbank/internal/source"
)

const bankCSV = "id;tema;enunciado;a;b;c;d;e;gabarito;explicacao;dificuldade;tags\n" +
	"1;Labor;First?;a1;b1;c1;d1;e1;A;x;1;\n" +
	"2;Labor;Second?;a2;b2;c2;d2;e2;Z;y;2;\n"

type fakeAuditor struct {
	mu     sync.Mutex
	events []audit.Event
	loads  []string
}

func (f *fakeAuditor) Report(e audit.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
}

func (f *fakeAuditor) RecordBankLoad(bank *questionbank.QuestionBank) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads = append(f.loads, bank.Source)
}

func newQuizService(t *testing.T, cfg service.QuizConfig, opts ...service.QuizOption) (*service.QuizService, *fakeAuditor) {
	t.Helper()
	fa := &fakeAuditor{}
	l := loader.New(discardLogger(), fa)
	return service.NewQuizService(l, fa, discardLogger(), cfg, opts...), fa
}

func TestQuizService_LoadUploadAndPlay(t *testing.T) {
	qs, fa := newQuizService(t, service.QuizConfig{})

	bank, err := qs.LoadBank(context.Background(), "s1", "", &source.Upload{Name: "mine.csv", Data: []byte(bankCSV)})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Len() != 2 || len(fa.loads) != 1 || fa.loads[0] != "mine.csv" {
		t.Fatalf("unexpected load: %d questions, loads %v", bank.Len(), fa.loads)
	}

	err = qs.Do("s1", func(s *practicesession.Session) error {
		if err := s.StartRound(); err != nil {
			return err
		}
		// touching every question triggers the repair of question 2
		for _, q := range bank.Questions {
			s.Round().DisplayOptions(q)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if v := qs.View("s1"); v.Status != practicesession.StatusInRound || v.Total != 2 {
		t.Errorf("unexpected view %q total=%d", v.Status, v.Total)
	}
	if len(fa.events) != 1 || fa.events[0].Kind != audit.KindAnswerKeyRepaired {
		t.Errorf("expected one repair event routed to the auditor, got %+v", fa.events)
	}
}

func TestQuizService_SessionsAreIsolated(t *testing.T) {
	qs, _ := newQuizService(t, service.QuizConfig{})
	if _, err := qs.LoadBank(context.Background(), "s1", "", &source.Upload{Name: "a.csv", Data: []byte(bankCSV)}); err != nil {
		t.Fatalf("load: %v", err)
	}

	if v := qs.View("s2"); v.Status != practicesession.StatusNoBank {
		t.Errorf("expected a fresh session for s2, got %q", v.Status)
	}
	if qs.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", qs.Len())
	}
}

func TestQuizService_DefaultBankPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "questions.csv")
	if err := os.WriteFile(file, []byte(bankCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	qs, _ := newQuizService(t, service.QuizConfig{DefaultBank: file})

	bank, err := qs.LoadBank(context.Background(), "s1", "", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Source != "questions.csv" {
		t.Errorf("expected source questions.csv, got %q", bank.Source)
	}
}

func TestQuizService_LoadErrorsLeaveSessionUntouched(t *testing.T) {
	qs, _ := newQuizService(t, service.QuizConfig{})

	_, err := qs.LoadBank(context.Background(), "s1", "", &source.Upload{Name: "bad.csv", Data: []byte("id;tema\n1;x\n")})
	var schemaErr *loader.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if v := qs.View("s1"); v.Status != practicesession.StatusNoBank {
		t.Errorf("expected no bank after failed load, got %q", v.Status)
	}

	_, err = qs.LoadBank(context.Background(), "s1", "", nil)
	if !errors.Is(err, source.ErrNoSource) {
		t.Errorf("expected ErrNoSource without a default bank, got %v", err)
	}
}

func TestQuizService_TimerDefaultsApplied(t *testing.T) {
	qs, _ := newQuizService(t, service.QuizConfig{TimerEnabled: true, TimerDuration: 30 * time.Second})

	v := qs.View("s1")
	if !v.Timer.Enabled || v.Timer.Duration != 30*time.Second {
		t.Errorf("expected timer defaults applied, got %+v", v.Timer)
	}
}

func TestQuizService_OutOfRangeTimerFallsBackToDefault(t *testing.T) {
	qs, _ := newQuizService(t, service.QuizConfig{TimerEnabled: true, TimerDuration: 2 * time.Second})

	if v := qs.View("s1"); v.Timer.Duration != practicesession.DefaultTimerDuration {
		t.Errorf("expected default duration, got %v", v.Timer.Duration)
	}
	err := qs.Do("s1", func(s *practicesession.Session) error {
		return s.SetTimer(true, 0)
	})
	if err != nil {
		t.Errorf("expected the configured duration to stay valid, got %v", err)
	}
}

func TestQuizService_EvictIdle(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	qs, _ := newQuizService(t, service.QuizConfig{IdleTimeout: time.Hour}, service.WithNow(clock))

	qs.View("old")
	now = now.Add(50 * time.Minute)
	qs.View("fresh")
	now = now.Add(20 * time.Minute)

	if n := qs.EvictIdle(); n != 1 {
		t.Errorf("expected 1 eviction, got %d", n)
	}
	if qs.Len() != 1 {
		t.Errorf("expected 1 remaining session, got %d", qs.Len())
	}
}
