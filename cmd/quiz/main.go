package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/remaimber-it/quizbank/internal/audit"
	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/infrastructure/config"
	"github.com/remaimber-it/quizbank/internal/loader"
	"github.com/remaimber-it/quizbank/internal/source"
	"github.com/remaimber-it/quizbank/internal/tui"
)

func main() {
	cfg := config.Load()

	bankFlag := flag.String("bank", cfg.DefaultBank, "path or URL of the question bank")
	urlFlag := flag.String("url", "", "URL of the question bank (overrides -bank)")
	topicsFlag := flag.String("topics", "", "comma-separated topics to practice")
	difficultiesFlag := flag.String("difficulties", "", "comma-separated difficulty levels (1-4)")
	timerFlag := flag.Duration("timer", 0, "per-question time limit, e.g. 45s (0 disables; unset keeps TIMER_ENABLED)")
	logFlag := flag.String("log", "", "write JSON logs to this file")
	flag.Parse()

	timerSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "timer" {
			timerSet = true
		}
	})

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	sink := audit.NewLogSink(logger)

	difficulties, err := parseDifficulties(*difficultiesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -difficulties: %v\n", err)
		os.Exit(2)
	}

	src, err := source.Select(*urlFlag, nil, *bankFlag, &http.Client{Timeout: cfg.FetchTimeout})
	if err != nil {
		fmt.Fprintf(os.Stderr, "no question bank: %v\n", err)
		os.Exit(2)
	}
	name, raw, err := src.Fetch(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch question bank: %v\n", err)
		os.Exit(1)
	}
	bank, err := loader.New(logger, sink, loader.WithEmptyOptionsPolicy(cfg.EmptyOptions)).Load(name, raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load question bank: %v\n", err)
		os.Exit(1)
	}

	sessionCfg := practicesession.DefaultConfig()
	sessionCfg.TimerEnabled = cfg.TimerEnabled
	sessionCfg.TimerDuration = cfg.TimerDuration
	session := practicesession.NewSession(
		practicesession.WithSink(sink),
		practicesession.WithConfig(sessionCfg),
	)
	session.LoadBank(bank)

	if timerSet {
		if err := applyTimerFlag(session, *timerFlag); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -timer: %v\n", err)
			os.Exit(2)
		}
	}
	if err := session.ApplyFilters(splitList(*topicsFlag), difficulties); err != nil {
		fmt.Fprintf(os.Stderr, "start round: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting quiz", "bank_id", bank.ID, "source", bank.Source, "questions", bank.Len())
	if _, err := tea.NewProgram(tui.New(session)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDifficulties(s string) ([]int, error) {
	var out []int
	for _, part := range splitList(s) {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > 4 {
			return nil, fmt.Errorf("%q is not a difficulty level", part)
		}
		out = append(out, n)
	}
	return out, nil
}

// applyTimerFlag turns the timer off for a zero duration and on otherwise.
func applyTimerFlag(session *practicesession.Session, d time.Duration) error {
	if d == 0 {
		return session.SetTimer(false, 0)
	}
	return session.SetTimer(true, d)
}
