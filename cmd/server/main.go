package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/remaimber-it/quizbank/internal/api"
	"github.com/remaimber-it/quizbank/internal/audit"
	"github.com/remaimber-it/quizbank/internal/infrastructure/config"
	"github.com/remaimber-it/quizbank/internal/loader"
	"github.com/remaimber-it/quizbank/internal/service"
	"github.com/remaimber-it/quizbank/internal/store"

	_ "github.com/remaimber-it/quizbank/docs" // generated swagger docs
)

// @title           Quizbank API
// @version         1.0
// @description     Self-study multiple-choice quiz sessions over question banks loaded from CSV or spreadsheet files.

// @host      localhost:8080
// @BasePath  /

const auditWorkers = 2

func main() {
	cfg := config.LoadServer()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.AuditDBPath)
	if err != nil {
		logger.Error("failed to open audit database", "error", err, "path", cfg.AuditDBPath)
		os.Exit(1)
	}
	defer db.Close()

	auditSvc := service.NewAuditService(db, logger, auditWorkers)
	defer auditSvc.Close()

	sink := &serviceAuditor{
		AuditService: auditSvc,
		sinks:        audit.Multi{audit.NewLogSink(logger), auditSvc},
	}
	bankLoader := loader.New(logger, sink, loader.WithEmptyOptionsPolicy(cfg.EmptyOptions))
	quizSvc := service.NewQuizService(bankLoader, sink, logger, service.QuizConfig{
		DefaultBank:   cfg.DefaultBank,
		FetchTimeout:  cfg.FetchTimeout,
		IdleTimeout:   cfg.SessionIdleTimeout,
		TimerEnabled:  cfg.TimerEnabled,
		TimerDuration: cfg.TimerDuration,
	})
	handler := api.NewHandler(quizSvc, auditSvc, api.NewCookieStore([]byte(cfg.SessionSecret)), logger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go quizSvc.RunEviction(ctx, time.Minute)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       cfg.FetchTimeout + 15*time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.FetchTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		stop()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "default_bank", cfg.DefaultBank)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// serviceAuditor logs events before persisting them.
type serviceAuditor struct {
	*service.AuditService
	sinks audit.Multi
}

func (a *serviceAuditor) Report(e audit.Event) {
	a.sinks.Report(e)
}
