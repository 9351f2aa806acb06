package api

import (
	"errors"
	"math"
	"net/http"
	"time"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type FiltersRequest struct {
	Topics       []string `json:"topics" example:"Labor,Puerperium"`
	Difficulties []int    `json:"difficulties" example:"1,2"`
}

func (r *FiltersRequest) Validate() error {
	for _, d := range r.Difficulties {
		if d < questionbank.MinDifficulty || d > questionbank.MaxDifficulty {
			return errors.New("difficulties must be between 1 and 4")
		}
	}
	return nil
}

type TimerRequest struct {
	Enabled         bool `json:"enabled" example:"true"`
	DurationSeconds int  `json:"duration_seconds,omitempty" example:"60"`
}

func (r *TimerRequest) Validate() error {
	if r.DurationSeconds < 0 {
		return errors.New("duration_seconds must not be negative")
	}
	return nil
}

type SelectRequest struct {
	Letter string `json:"letter" example:"B"`
}

func (r *SelectRequest) Validate() error {
	if r.Letter == "" {
		return errors.New("letter is required")
	}
	return nil
}

type OptionResponse struct {
	Letter string `json:"letter" example:"A"`
	Text   string `json:"text" example:"Cervical dilation"`
}

type QuestionResponse struct {
	ID              string           `json:"id" example:"q12"`
	Topic           string           `json:"topic" example:"Labor"`
	Difficulty      int              `json:"difficulty" example:"2"`
	DifficultyLabel string           `json:"difficulty_label" example:"Medium"`
	Prompt          string           `json:"prompt"`
	Options         []OptionResponse `json:"options"`
	Image1          string           `json:"image1,omitempty"`
	Image2          string           `json:"image2,omitempty"`
}

type AnswerResponse struct {
	QuestionID string    `json:"question_id" example:"q12"`
	Topic      string    `json:"topic" example:"Labor"`
	Difficulty int       `json:"difficulty" example:"2"`
	Selected   string    `json:"selected" example:"B"`
	Correct    string    `json:"correct" example:"A"`
	IsCorrect  bool      `json:"is_correct" example:"false"`
	TimedOut   bool      `json:"timed_out" example:"false"`
	AnsweredAt time.Time `json:"answered_at"`
}

type FeedbackResponse struct {
	Correct     string          `json:"correct" example:"A"`
	CorrectText string          `json:"correct_text"`
	Explanation string          `json:"explanation"`
	Outcome     *AnswerResponse `json:"outcome,omitempty"`
}

type ProgressResponse struct {
	Position int `json:"position" example:"3"`
	Total    int `json:"total" example:"20"`
}

type TimerResponse struct {
	Enabled          bool `json:"enabled" example:"true"`
	DurationSeconds  int  `json:"duration_seconds" example:"60"`
	RemainingSeconds int  `json:"remaining_seconds" example:"42"`
}

type CountersResponse struct {
	Answered int `json:"answered" example:"5"`
	Correct  int `json:"correct" example:"4"`
	Wrong    int `json:"wrong" example:"1"`
}

type TopicErrorResponse struct {
	Topic  string `json:"topic" example:"Labor"`
	Errors int    `json:"errors" example:"2"`
}

type ViewResponse struct {
	Status                string               `json:"status" example:"in_round"`
	Phase                 string               `json:"phase,omitempty" example:"awaiting_answer"`
	Message               string               `json:"message,omitempty"`
	BankID                string               `json:"bank_id,omitempty"`
	BankSource            string               `json:"bank_source,omitempty" example:"questions.csv"`
	Progress              ProgressResponse     `json:"progress"`
	Question              *QuestionResponse    `json:"question,omitempty"`
	Selected              string               `json:"selected,omitempty" example:"B"`
	Feedback              *FeedbackResponse    `json:"feedback,omitempty"`
	Timer                 TimerResponse        `json:"timer"`
	Counters              CountersResponse     `json:"counters"`
	Accuracy              float64              `json:"accuracy" example:"0.8"`
	RecentAnswers         []AnswerResponse     `json:"recent_answers"`
	TopicErrors           []TopicErrorResponse `json:"topic_errors"`
	WorstTopic            string               `json:"worst_topic,omitempty" example:"Labor"`
	AvailableTopics       []string             `json:"available_topics"`
	AvailableDifficulties []int                `json:"available_difficulties"`
	ActiveTopics          []string             `json:"active_topics"`
	ActiveDifficulties    []int                `json:"active_difficulties"`
}

type DifficultyStatsResponse struct {
	Difficulty int    `json:"difficulty" example:"2"`
	Label      string `json:"label" example:"Medium"`
	Answered   int    `json:"answered" example:"6"`
	Wrong      int    `json:"wrong" example:"1"`
}

type ReportResponse struct {
	Answered     int                       `json:"answered" example:"10"`
	Correct      int                       `json:"correct" example:"7"`
	Wrong        int                       `json:"wrong" example:"3"`
	Accuracy     float64                   `json:"accuracy" example:"0.7"`
	TopicErrors  []TopicErrorResponse      `json:"topic_errors"`
	WorstTopic   string                    `json:"worst_topic,omitempty" example:"Labor"`
	ByDifficulty []DifficultyStatsResponse `json:"by_difficulty"`
}

// ── Mapping ─────────────────────────────────────────────────────────────────

func toAnswerResponse(rec practicesession.AnswerRecord) AnswerResponse {
	return AnswerResponse{
		QuestionID: rec.QuestionID,
		Topic:      rec.Topic,
		Difficulty: rec.Difficulty,
		Selected:   rec.Selected,
		Correct:    rec.Correct,
		IsCorrect:  rec.IsCorrect,
		TimedOut:   rec.TimedOut,
		AnsweredAt: rec.AnsweredAt,
	}
}

func toAnswerResponses(recs []practicesession.AnswerRecord) []AnswerResponse {
	out := make([]AnswerResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toAnswerResponse(rec))
	}
	return out
}

func toTopicErrors(in []practicesession.TopicErrors) []TopicErrorResponse {
	out := make([]TopicErrorResponse, 0, len(in))
	for _, te := range in {
		out = append(out, TopicErrorResponse{Topic: te.Topic, Errors: te.Errors})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func toViewResponse(v practicesession.View) ViewResponse {
	resp := ViewResponse{
		Status:     string(v.Status),
		Phase:      string(v.Phase),
		Message:    v.Message,
		BankID:     v.BankID,
		BankSource: v.BankSource,
		Progress:   ProgressResponse{Position: v.Position, Total: v.Total},
		Selected:   v.Selected,
		Timer: TimerResponse{
			Enabled:          v.Timer.Enabled,
			DurationSeconds:  int(v.Timer.Duration / time.Second),
			RemainingSeconds: int(math.Ceil(v.Timer.Remaining.Seconds())),
		},
		Counters: CountersResponse{
			Answered: v.Counters.Answered,
			Correct:  v.Counters.Correct,
			Wrong:    v.Counters.Wrong,
		},
		Accuracy:              v.Accuracy,
		RecentAnswers:         toAnswerResponses(v.RecentAnswers),
		TopicErrors:           toTopicErrors(v.TopicErrors),
		WorstTopic:            v.WorstTopic,
		AvailableTopics:       nonNil(v.AvailableTopics),
		AvailableDifficulties: nonNil(v.AvailableDifficulties),
		ActiveTopics:          nonNil(v.ActiveTopics),
		ActiveDifficulties:    nonNil(v.ActiveDifficulties),
	}

	if q := v.Question; q != nil {
		qr := &QuestionResponse{
			ID:              q.ID,
			Topic:           q.Topic,
			Difficulty:      q.Difficulty,
			DifficultyLabel: questionbank.DifficultyLabel(q.Difficulty),
			Prompt:          q.Prompt,
			Image1:          q.Image1,
			Image2:          q.Image2,
		}
		for _, o := range q.Options {
			qr.Options = append(qr.Options, OptionResponse{Letter: o.Letter, Text: o.Text})
		}
		resp.Question = qr
	}

	if fb := v.Feedback; fb != nil {
		fr := &FeedbackResponse{
			Correct:     fb.Correct,
			CorrectText: fb.CorrectText,
			Explanation: fb.Explanation,
		}
		if fb.Record != nil {
			ar := toAnswerResponse(*fb.Record)
			fr.Outcome = &ar
		}
		resp.Feedback = fr
	}
	return resp
}

func toReportResponse(rep practicesession.Report) ReportResponse {
	resp := ReportResponse{
		Answered:     rep.Answered,
		Correct:      rep.Correct,
		Wrong:        rep.Wrong,
		Accuracy:     rep.Accuracy,
		TopicErrors:  toTopicErrors(rep.TopicErrors),
		WorstTopic:   rep.WorstTopic,
		ByDifficulty: make([]DifficultyStatsResponse, 0, len(rep.ByDifficulty)),
	}
	for _, ds := range rep.ByDifficulty {
		resp.ByDifficulty = append(resp.ByDifficulty, DifficultyStatsResponse{
			Difficulty: ds.Difficulty,
			Label:      questionbank.DifficultyLabel(ds.Difficulty),
			Answered:   ds.Answered,
			Wrong:      ds.Wrong,
		})
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// command runs fn against the caller's session and responds with the
// resulting view.
func (h *Handler) command(w http.ResponseWriter, r *http.Request, fn func(*practicesession.Session) error) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var view practicesession.View
	err := h.quiz.Do(sid, func(s *practicesession.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		view = s.Snapshot()
		return nil
	})
	if h.handleEngineError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toViewResponse(view))
}

// getSession returns the caller's session view.
// @Summary      Get session
// @Description  Returns the current state of the caller's quiz session. A session cookie is issued on first use.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  ViewResponse
// @Router       /session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, func(*practicesession.Session) error { return nil })
}

// applyFilters sets topic and difficulty filters.
// @Summary      Apply filters
// @Description  Stores topic and difficulty filters. With a bank loaded the round restarts under the new filters.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      FiltersRequest  true  "Filters (empty lists select everything)"
// @Success      200   {object}  ViewResponse
// @Failure      400   {object}  map[string]string
// @Router       /session/filters [put]
func (h *Handler) applyFilters(w http.ResponseWriter, r *http.Request) {
	var req FiltersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.command(w, r, func(s *practicesession.Session) error {
		return s.ApplyFilters(req.Topics, req.Difficulties)
	})
}

// setTimer configures the per-question timer.
// @Summary      Configure timer
// @Description  Enables or disables the per-question timer. Duration must be between 10 and 600 seconds; zero keeps the current duration.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      TimerRequest  true  "Timer settings"
// @Success      200   {object}  ViewResponse
// @Failure      400   {object}  map[string]string
// @Router       /session/timer [put]
func (h *Handler) setTimer(w http.ResponseWriter, r *http.Request) {
	var req TimerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.command(w, r, func(s *practicesession.Session) error {
		return s.SetTimer(req.Enabled, time.Duration(req.DurationSeconds)*time.Second)
	})
}

// startRound builds a new round.
// @Summary      Start round
// @Description  Builds a fresh randomized round under the active filters. When nothing matches, status is no_matches.
// @Tags         Round
// @Produce      json
// @Success      200  {object}  ViewResponse
// @Failure      409  {object}  map[string]string  "no bank loaded"
// @Router       /session/round [post]
func (h *Handler) startRound(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, func(s *practicesession.Session) error {
		return s.StartRound()
	})
}

// selectOption marks the pending answer.
// @Summary      Select option
// @Tags         Round
// @Accept       json
// @Produce      json
// @Param        body  body      SelectRequest  true  "Display letter"
// @Success      200   {object}  ViewResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /session/select [post]
func (h *Handler) selectOption(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.command(w, r, func(s *practicesession.Session) error {
		return s.SelectOption(req.Letter)
	})
}

// confirmAnswer records the selected option and reveals feedback.
// @Summary      Confirm answer
// @Tags         Round
// @Produce      json
// @Success      200  {object}  ViewResponse
// @Failure      400  {object}  map[string]string  "nothing selected"
// @Failure      409  {object}  map[string]string
// @Router       /session/confirm [post]
func (h *Handler) confirmAnswer(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, func(s *practicesession.Session) error {
		_, err := s.ConfirmAnswer()
		return err
	})
}

// advanceQuestion moves to the next question.
// @Summary      Next question
// @Tags         Round
// @Produce      json
// @Success      200  {object}  ViewResponse
// @Failure      409  {object}  map[string]string
// @Router       /session/advance [post]
func (h *Handler) advanceQuestion(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, func(s *practicesession.Session) error {
		return s.AdvanceQuestion()
	})
}

// getStats returns the round report.
// @Summary      Round statistics
// @Tags         Statistics
// @Produce      json
// @Success      200  {object}  ReportResponse
// @Router       /session/stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var rep practicesession.Report
	h.quiz.Do(sid, func(s *practicesession.Session) error {
		rep = s.Report()
		return nil
	})
	respondJSON(w, http.StatusOK, toReportResponse(rep))
}

// clearStats empties the ledger and counters.
// @Summary      Clear statistics
// @Description  Empties the ledger and counters. The round order and position are kept.
// @Tags         Statistics
// @Produce      json
// @Success      200  {object}  ViewResponse
// @Router       /session/stats [delete]
func (h *Handler) clearStats(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, func(s *practicesession.Session) error {
		s.ClearStatistics()
		return nil
	})
}
