package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/remaimber-it/quizbank/internal/audit"
)

const schema = `
CREATE TABLE IF NOT EXISTS bank_loads (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    encoding TEXT NOT NULL,
    delimiter TEXT NOT NULL,
    questions INTEGER NOT NULL,
    topics TEXT NOT NULL,
    loaded_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS audit_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    kind TEXT NOT NULL,
    bank_id TEXT NOT NULL,
    source TEXT NOT NULL,
    question_id TEXT NOT NULL,
    detail TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_events_bank ON audit_events(bank_id);
`

// DefaultEventLimit applies when a List call gets a non-positive limit.
const DefaultEventLimit = 100

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// audit writes come from several workers; sqlite allows one writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Bank loads
// ============================================================================

func (s *SQLiteStore) SaveBankLoad(ctx context.Context, load BankLoad) error {
	topicsJSON, err := json.Marshal(load.Topics)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO bank_loads (id, source, encoding, delimiter, questions, topics, loaded_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		load.ID, load.Source, load.Encoding, load.Delimiter, load.Questions, string(topicsJSON), formatTime(load.LoadedAt),
	)
	return err
}

// ListBankLoads returns the most recently recorded loads, newest first.
func (s *SQLiteStore) ListBankLoads(ctx context.Context, limit int) ([]BankLoad, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, source, encoding, delimiter, questions, topics, loaded_at FROM bank_loads ORDER BY rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loads []BankLoad
	for rows.Next() {
		var (
			load       BankLoad
			topicsJSON string
			loadedAt   string
		)
		if err := rows.Scan(&load.ID, &load.Source, &load.Encoding, &load.Delimiter, &load.Questions, &topicsJSON, &loadedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(topicsJSON), &load.Topics); err != nil {
			return nil, err
		}
		if load.LoadedAt, err = parseTime(loadedAt); err != nil {
			return nil, err
		}
		loads = append(loads, load)
	}
	return loads, rows.Err()
}

// ============================================================================
// Audit events
// ============================================================================

func (s *SQLiteStore) SaveEvent(ctx context.Context, e audit.Event) error {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO audit_events (kind, bank_id, source, question_id, detail, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		string(e.Kind), e.BankID, e.Source, e.QuestionID, e.Detail, formatTime(at),
	)
	return err
}

// ListEvents returns the most recent events, newest first.
func (s *SQLiteStore) ListEvents(ctx context.Context, limit int) ([]StoredEvent, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, kind, bank_id, source, question_id, detail, created_at FROM audit_events ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []StoredEvent
	for rows.Next() {
		var (
			e         StoredEvent
			kind      string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &kind, &e.BankID, &e.Source, &e.QuestionID, &e.Detail, &createdAt); err != nil {
			return nil, err
		}
		e.Kind = audit.Kind(kind)
		if e.At, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
