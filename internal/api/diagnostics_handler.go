package api

import (
	"net/http"
	"strconv"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type DiagnosticEventResponse struct {
	ID         int64     `json:"id" example:"17"`
	Kind       string    `json:"kind" example:"answer_key_repaired"`
	BankID     string    `json:"bank_id"`
	Source     string    `json:"source" example:"questions.csv"`
	QuestionID string    `json:"question_id" example:"q12"`
	Detail     string    `json:"detail"`
	At         time.Time `json:"at"`
}

type BankLoadResponse struct {
	ID        string    `json:"id" example:"0f8c2d7e1b5a4c3d9e6f7a8b9c0d1e2f"`
	Source    string    `json:"source" example:"questions.csv"`
	Encoding  string    `json:"encoding" example:"utf-8-sig"`
	Delimiter string    `json:"delimiter" example:";"`
	Questions int       `json:"questions" example:"120"`
	Topics    []string  `json:"topics"`
	LoadedAt  time.Time `json:"loaded_at"`
}

type DiagnosticsResponse struct {
	BankLoads []BankLoadResponse        `json:"bank_loads"`
	Events    []DiagnosticEventResponse `json:"events"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listDiagnostics returns recent bank loads and data-quality events.
// @Summary      Audit trail
// @Description  Lists recent bank loads and the repaired answer keys, fabricated options and rejected rows, newest first.
// @Tags         Operators
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of loads and of events (default 100)"
// @Success      200    {object}  DiagnosticsResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /diagnostics [get]
func (h *Handler) listDiagnostics(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	loads, err := h.diag.BankLoads(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list bank loads", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list bank loads")
		return
	}
	events, err := h.diag.Events(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list audit events", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	resp := DiagnosticsResponse{
		BankLoads: make([]BankLoadResponse, 0, len(loads)),
		Events:    make([]DiagnosticEventResponse, 0, len(events)),
	}
	for _, l := range loads {
		resp.BankLoads = append(resp.BankLoads, BankLoadResponse{
			ID:        l.ID,
			Source:    l.Source,
			Encoding:  l.Encoding,
			Delimiter: l.Delimiter,
			Questions: l.Questions,
			Topics:    nonNil(l.Topics),
			LoadedAt:  l.LoadedAt,
		})
	}
	for _, e := range events {
		resp.Events = append(resp.Events, DiagnosticEventResponse{
			ID:         e.ID,
			Kind:       string(e.Kind),
			BankID:     e.BankID,
			Source:     e.Source,
			QuestionID: e.QuestionID,
			Detail:     e.Detail,
			At:         e.At,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}
