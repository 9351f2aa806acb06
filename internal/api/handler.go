package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/loader"
	"github.com/remaimber-it/quizbank/internal/service"
	"github.com/remaimber-it/quizbank/internal/source"
	"github.com/remaimber-it/quizbank/internal/store"
)

const (
	cookieName   = "quizbank"
	sessionIDKey = "session_id"
)

// DiagnosticsLister lists the persisted audit trail.
type DiagnosticsLister interface {
	Events(ctx context.Context, limit int) ([]store.StoredEvent, error)
	BankLoads(ctx context.Context, limit int) ([]store.BankLoad, error)
}

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	quiz    *service.QuizService
	diag    DiagnosticsLister
	cookies sessions.Store
	logger  *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(quiz *service.QuizService, diag DiagnosticsLister, cookies sessions.Store, logger *slog.Logger) *Handler {
	return &Handler{
		quiz:    quiz,
		diag:    diag,
		cookies: cookies,
		logger:  logger,
	}
}

// NewCookieStore returns the session cookie store signed with secret.
func NewCookieStore(secret []byte) *sessions.CookieStore {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return cs
}

// sessionID returns the quiz session bound to the request's cookie, issuing
// a new one when the cookie is missing or invalid. It must run before the
// response is written.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	// Get returns a fresh session alongside a decode error for tampered cookies.
	sess, err := h.cookies.Get(r, cookieName)
	if err != nil {
		h.logger.Debug("discarding invalid session cookie", "error", err)
	}
	if sid, ok := sess.Values[sessionIDKey].(string); ok && sid != "" {
		return sid, true
	}

	sid := h.quiz.NewSessionID()
	sess.Values[sessionIDKey] = sid
	if err := sess.Save(r, w); err != nil {
		h.logger.Error("failed to save session cookie", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return "", false
	}
	return sid, true
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

type validator interface {
	Validate() error
}

// decodeJSON decodes the request body into v. An empty body leaves v at its
// zero value. Returns false if a response was written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleEngineError maps session command errors to HTTP responses. Returns
// true if an error was handled (caller should return).
func (h *Handler) handleEngineError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, practicesession.ErrInvalidLetter),
		errors.Is(err, practicesession.ErrNoSelection),
		errors.Is(err, practicesession.ErrInvalidTimer):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, practicesession.ErrNoBank),
		errors.Is(err, practicesession.ErrNoRound),
		errors.Is(err, practicesession.ErrRoundComplete),
		errors.Is(err, practicesession.ErrInputLocked),
		errors.Is(err, practicesession.ErrFeedbackPending):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("session command failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// handleLoadError maps source and loader errors to HTTP responses.
func (h *Handler) handleLoadError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var (
		decodeErr *loader.DecodeError
		parseErr  *loader.ParseError
		schemaErr *loader.SchemaError
		rowErr    *loader.RowError
		netErr    *source.NetworkError
	)
	switch {
	case errors.As(err, &decodeErr), errors.As(err, &parseErr),
		errors.As(err, &schemaErr), errors.As(err, &rowErr):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &netErr):
		respondError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, source.ErrTooLarge):
		respondError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, source.ErrNoSource):
		respondError(w, http.StatusBadRequest, "no bank given and no default bank configured")
	case errors.Is(err, fs.ErrNotExist):
		respondError(w, http.StatusNotFound, "default bank not found")
	default:
		h.logger.Error("bank load failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load bank")
	}
	return true
}
