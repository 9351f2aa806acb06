package api

import (
	"fmt"
	"net/http"
	"time"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportFilters struct {
	Topics       []string `json:"topics"`
	Difficulties []int    `json:"difficulties"`
}

type ExportData struct {
	Version    string           `json:"version" example:"1.0"`
	ExportedAt string           `json:"exported_at" example:"2024-05-02T10:30:00Z"`
	BankSource string           `json:"bank_source,omitempty" example:"questions.csv"`
	Filters    ExportFilters    `json:"filters"`
	Ledger     []AnswerResponse `json:"ledger"`
	Report     ReportResponse   `json:"report"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportSession downloads the round's answers and report.
// @Summary      Export round
// @Description  Returns every answer of the current round together with its report as a downloadable JSON document.
// @Tags         Statistics
// @Produce      json
// @Success      200  {object}  ExportData
// @Router       /session/export [get]
func (h *Handler) exportSession(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var (
		ledger []practicesession.AnswerRecord
		report practicesession.Report
		view   practicesession.View
	)
	h.quiz.Do(sid, func(s *practicesession.Session) error {
		report = s.Report()
		ledger = s.Ledger()
		view = s.Snapshot()
		return nil
	})

	now := time.Now().UTC()
	data := ExportData{
		Version:    "1.0",
		ExportedAt: now.Format(time.RFC3339),
		BankSource: view.BankSource,
		Filters: ExportFilters{
			Topics:       nonNil(view.ActiveTopics),
			Difficulties: nonNil(view.ActiveDifficulties),
		},
		Ledger: toAnswerResponses(ledger),
		Report: toReportResponse(report),
	}

	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="quiz-round-%s.json"`, now.Format("20060102-150405")))
	respondJSON(w, http.StatusOK, data)
}
