package service

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/remaimber-it/quizbank/internal/audit"
	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/id"
	"github.com/remaimber-it/quizbank/internal/loader"
	"github.com/remaimber-it/quizbank/internal/source"
)

// Auditor receives data-quality events and bank load summaries.
type Auditor interface {
	audit.Sink
	RecordBankLoad(bank *questionbank.QuestionBank)
}

type QuizConfig struct {
	DefaultBank   string
	FetchTimeout  time.Duration
	IdleTimeout   time.Duration
	TimerEnabled  bool
	TimerDuration time.Duration
}

// QuizService hosts one practice session per client. Sessions never share
// state; commands on the same session run one at a time.
type QuizService struct {
	loader  *loader.Loader
	auditor Auditor
	logger  *slog.Logger
	cfg     QuizConfig
	client  *http.Client
	now     func() time.Time

	sessionOpts []practicesession.SessionOption

	mu       sync.RWMutex
	sessions map[string]*hostedSession // sessionID → session
}

type hostedSession struct {
	mu       sync.Mutex
	session  *practicesession.Session
	lastUsed time.Time
}

type QuizOption func(*QuizService)

// WithHTTPClient replaces the client used for URL banks.
func WithHTTPClient(c *http.Client) QuizOption {
	return func(qs *QuizService) { qs.client = c }
}

// WithSessionOptions are applied to every new session.
func WithSessionOptions(opts ...practicesession.SessionOption) QuizOption {
	return func(qs *QuizService) { qs.sessionOpts = append(qs.sessionOpts, opts...) }
}

// WithNow replaces the clock used for idle tracking.
func WithNow(now func() time.Time) QuizOption {
	return func(qs *QuizService) { qs.now = now }
}

func NewQuizService(l *loader.Loader, auditor Auditor, logger *slog.Logger, cfg QuizConfig, opts ...QuizOption) *QuizService {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = source.DefaultFetchTimeout
	}
	if practicesession.ValidateTimerDuration(cfg.TimerDuration) != nil {
		cfg.TimerDuration = practicesession.DefaultTimerDuration
	}
	qs := &QuizService{
		loader:   l,
		auditor:  auditor,
		logger:   logger,
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.FetchTimeout},
		now:      time.Now,
		sessions: make(map[string]*hostedSession),
	}
	for _, opt := range opts {
		opt(qs)
	}
	return qs
}

// NewSessionID returns an id for a client that has none.
func (qs *QuizService) NewSessionID() string {
	return id.GenerateID()
}

// Do runs fn on the session with the given id, creating it if needed.
func (qs *QuizService) Do(sessionID string, fn func(*practicesession.Session) error) error {
	hs := qs.session(sessionID)
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.lastUsed = qs.now()
	return fn(hs.session)
}

// View returns the session's current snapshot.
func (qs *QuizService) View(sessionID string) practicesession.View {
	var v practicesession.View
	qs.Do(sessionID, func(s *practicesession.Session) error {
		v = s.Snapshot()
		return nil
	})
	return v
}

// LoadBank fetches a bank (explicit URL, then upload, then the configured
// default), parses it and installs it in the session. Fetching and parsing
// happen outside the session lock.
func (qs *QuizService) LoadBank(ctx context.Context, sessionID, explicitURL string, upload *source.Upload) (*questionbank.QuestionBank, error) {
	src, err := source.Select(explicitURL, upload, qs.cfg.DefaultBank, qs.client)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, qs.cfg.FetchTimeout)
	defer cancel()

	name, data, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	bank, err := qs.loader.Load(name, data)
	if err != nil {
		qs.logger.Warn("bank rejected", "session_id", sessionID, "source", name, "error", err)
		return nil, err
	}
	qs.auditor.RecordBankLoad(bank)

	err = qs.Do(sessionID, func(s *practicesession.Session) error {
		s.LoadBank(bank)
		return nil
	})
	return bank, err
}

// EvictIdle drops sessions unused for longer than the idle timeout and
// returns how many were removed.
func (qs *QuizService) EvictIdle() int {
	if qs.cfg.IdleTimeout <= 0 {
		return 0
	}
	cutoff := qs.now().Add(-qs.cfg.IdleTimeout)

	qs.mu.Lock()
	defer qs.mu.Unlock()

	evicted := 0
	for sid, hs := range qs.sessions {
		hs.mu.Lock()
		idle := hs.lastUsed.Before(cutoff)
		hs.mu.Unlock()
		if idle {
			delete(qs.sessions, sid)
			evicted++
		}
	}
	if evicted > 0 {
		qs.logger.Info("evicted idle sessions", "count", evicted, "remaining", len(qs.sessions))
	}
	return evicted
}

// RunEviction calls EvictIdle every interval until ctx is done.
func (qs *QuizService) RunEviction(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			qs.EvictIdle()
		}
	}
}

// Len is the number of live sessions.
func (qs *QuizService) Len() int {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	return len(qs.sessions)
}

func (qs *QuizService) session(sessionID string) *hostedSession {
	qs.mu.RLock()
	hs, ok := qs.sessions[sessionID]
	qs.mu.RUnlock()
	if ok {
		return hs
	}

	qs.mu.Lock()
	defer qs.mu.Unlock()
	if hs, ok := qs.sessions[sessionID]; ok {
		return hs
	}

	cfg := practicesession.DefaultConfig()
	cfg.TimerEnabled = qs.cfg.TimerEnabled
	cfg.TimerDuration = qs.cfg.TimerDuration
	opts := append([]practicesession.SessionOption{
		practicesession.WithConfig(cfg),
		practicesession.WithSink(qs.auditor),
	}, qs.sessionOpts...)

	hs = &hostedSession{
		session:  practicesession.NewSession(opts...),
		lastUsed: qs.now(),
	}
	qs.sessions[sessionID] = hs
	qs.logger.Debug("session created", "session_id", sessionID)
	return hs
}
