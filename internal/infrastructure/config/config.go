package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/loader"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	SessionSecret   string // cookie signing key; required by the server

	AuditDBPath string
	LogLevel    slog.Level

	// Bank loading
	DefaultBank  string // path or http(s) URL
	FetchTimeout time.Duration
	EmptyOptions loader.EmptyOptionsPolicy

	// Session defaults
	TimerEnabled       bool
	TimerDuration      time.Duration
	SessionIdleTimeout time.Duration
}

// Load reads the environment (and .env if present). Invalid values are fatal.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// LoadServer is Load plus the settings only the HTTP server needs.
func LoadServer() *Config {
	cfg := Load()
	cfg.SessionSecret = mustGetenv("SESSION_SECRET")
	return cfg
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	e := env{getenv: getenv}
	cfg := &Config{
		ServerAddress:      e.str("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout:    e.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		SessionSecret:      e.str("SESSION_SECRET", ""),
		AuditDBPath:        e.str("AUDIT_DB_PATH", "quizbank.db"),
		LogLevel:           e.level("LOG_LEVEL", slog.LevelInfo),
		DefaultBank:        e.str("DEFAULT_BANK", "questions.csv"),
		FetchTimeout:       e.duration("FETCH_TIMEOUT", 15*time.Second),
		TimerEnabled:       e.boolean("TIMER_ENABLED", false),
		TimerDuration:      e.duration("TIMER_DURATION", 60*time.Second),
		SessionIdleTimeout: e.duration("SESSION_IDLE_TIMEOUT", 2*time.Hour),
	}

	policy, err := loader.ParseEmptyOptionsPolicy(getenv("EMPTY_OPTIONS_POLICY"))
	if err != nil {
		e.errs = append(e.errs, fmt.Sprintf("EMPTY_OPTIONS_POLICY: %v", err))
	}
	cfg.EmptyOptions = policy

	if err := practicesession.ValidateTimerDuration(cfg.TimerDuration); err != nil {
		e.errs = append(e.errs, fmt.Sprintf("TIMER_DURATION=%s: %v", cfg.TimerDuration, err))
	}

	if len(e.errs) > 0 {
		return nil, fmt.Errorf("invalid environment: %s", strings.Join(e.errs, "; "))
	}
	return cfg, nil
}

type env struct {
	getenv func(string) string
	errs   []string
}

func (e *env) str(k, fallback string) string {
	if v := strings.TrimSpace(e.getenv(k)); v != "" {
		return v
	}
	return fallback
}

func (e *env) duration(k string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(e.getenv(k))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Sprintf("%s=%q is not a valid duration", k, v))
		return fallback
	}
	return d
}

func (e *env) boolean(k string, fallback bool) bool {
	v := strings.TrimSpace(e.getenv(k))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Sprintf("%s=%q is not a valid boolean", k, v))
		return fallback
	}
	return b
}

func (e *env) level(k string, fallback slog.Level) slog.Level {
	v := strings.TrimSpace(e.getenv(k))
	if v == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		e.errs = append(e.errs, fmt.Sprintf("%s=%q is not a valid log level", k, v))
		return fallback
	}
	return l
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}
