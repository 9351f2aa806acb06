package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Session
	mux.HandleFunc("GET /session", h.getSession)
	mux.HandleFunc("POST /session/bank", h.loadBank)
	mux.HandleFunc("PUT /session/filters", h.applyFilters)
	mux.HandleFunc("PUT /session/timer", h.setTimer)

	// Round
	mux.HandleFunc("POST /session/round", h.startRound)
	mux.HandleFunc("POST /session/select", h.selectOption)
	mux.HandleFunc("POST /session/confirm", h.confirmAnswer)
	mux.HandleFunc("POST /session/advance", h.advanceQuestion)

	// Statistics
	mux.HandleFunc("GET /session/stats", h.getStats)
	mux.HandleFunc("DELETE /session/stats", h.clearStats)
	mux.HandleFunc("GET /session/export", h.exportSession)

	// Operators
	mux.HandleFunc("GET /diagnostics", h.listDiagnostics)
}
