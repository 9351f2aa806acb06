package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/source"
)

// ── Request / Response types ────────────────────────────────────────────────

type LoadBankRequest struct {
	URL string `json:"url,omitempty" example:"https://example.com/questions.csv"`
}

func (r *LoadBankRequest) Validate() error {
	if r.URL != "" && !source.IsURL(r.URL) {
		return errors.New("url must be an http or https address")
	}
	return nil
}

type LoadBankResponse struct {
	ID             string         `json:"id" example:"0f8c2d7e1b5a4c3d9e6f7a8b9c0d1e2f"`
	Source         string         `json:"source" example:"questions.csv"`
	Encoding       string         `json:"encoding" example:"utf-8-sig"`
	Delimiter      string         `json:"delimiter" example:";"`
	TotalQuestions int            `json:"total_questions" example:"120"`
	ByTopic        map[string]int `json:"by_topic"`
	ByDifficulty   map[int]int    `json:"by_difficulty"`
	Session        ViewResponse   `json:"session"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// loadBank loads a question bank into the caller's session.
// @Summary      Load a question bank
// @Description  Accepts a multipart upload (field "file"), a JSON body with a "url", or an empty body to load the configured default bank. Any round in progress is discarded.
// @Tags         Session
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body      LoadBankRequest  false  "Bank URL"
// @Param        file  formData  file             false  "Bank file (.csv, .tsv, .txt, .xlsx)"
// @Success      200   {object}  LoadBankResponse
// @Failure      400   {object}  map[string]string
// @Failure      413   {object}  map[string]string
// @Failure      422   {object}  map[string]string  "file could not be read as a bank"
// @Failure      502   {object}  map[string]string  "URL could not be fetched"
// @Router       /session/bank [post]
func (h *Handler) loadBank(w http.ResponseWriter, r *http.Request) {
	var (
		explicitURL string
		upload      *source.Upload
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		var ok bool
		explicitURL, upload, ok = readUpload(w, r)
		if !ok {
			return
		}
	} else {
		var req LoadBankRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		explicitURL = strings.TrimSpace(req.URL)
	}

	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	bank, err := h.quiz.LoadBank(r.Context(), sid, explicitURL, upload)
	if h.handleLoadError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toLoadBankResponse(bank, toViewResponse(h.quiz.View(sid))))
}

// readUpload extracts the "file" part and an optional "url" field.
func readUpload(w http.ResponseWriter, r *http.Request) (string, *source.Upload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, source.MaxBankSize+1<<20)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, source.ErrTooLarge.Error())
			return "", nil, false
		}
		respondError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return "", nil, false
	}

	explicitURL := strings.TrimSpace(r.FormValue("url"))

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return explicitURL, nil, true
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid file: "+err.Error())
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read upload")
		return "", nil, false
	}
	return explicitURL, &source.Upload{Name: header.Filename, Data: data}, true
}

func toLoadBankResponse(bank *questionbank.QuestionBank, view ViewResponse) LoadBankResponse {
	summary := bank.Summary()
	return LoadBankResponse{
		ID:             bank.ID,
		Source:         bank.Source,
		Encoding:       bank.Encoding,
		Delimiter:      bank.Delimiter,
		TotalQuestions: summary.Total,
		ByTopic:        summary.ByTopic,
		ByDifficulty:   summary.ByDifficulty,
		Session:        view,
	}
}
