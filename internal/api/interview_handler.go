package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/preptrack/backend/internal/domain/interview"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateInterviewRequest struct {
	Type                string `json:"type" example:"Technical"`
	InterviewDate       string `json:"interview_date" example:"2026-03-01T14:00:00Z"`
	OverallScore        int    `json:"overall_score" example:"7"`
	CommunicationScore  int    `json:"communication_score" example:"5"`
	ProblemSolvingScore int    `json:"problem_solving_score" example:"8"`
	TechnicalScore      int    `json:"technical_score" example:"7"`
	Passed              bool   `json:"passed" example:"true"`
}

func (r *CreateInterviewRequest) Validate() error {
	if r.Type == "" {
		return errors.New("type is required")
	}
	if r.InterviewDate == "" {
		return errors.New("interview_date is required")
	}
	if _, err := time.Parse(time.RFC3339, r.InterviewDate); err != nil {
		return errors.New("interview_date must be RFC 3339")
	}
	return nil
}

type InterviewResponse struct {
	ID                  string    `json:"id" example:"a1b2c3d4e5f6g7h8"`
	Type                string    `json:"type" example:"Technical"`
	InterviewDate       time.Time `json:"interview_date"`
	OverallScore        int       `json:"overall_score" example:"7"`
	CommunicationScore  int       `json:"communication_score" example:"5"`
	ProblemSolvingScore int       `json:"problem_solving_score" example:"8"`
	TechnicalScore      int       `json:"technical_score" example:"7"`
	Passed              bool      `json:"passed" example:"true"`
	Analysis            string    `json:"analysis,omitempty" example:"queued"`
}

func interviewResponse(iv *interview.Result) InterviewResponse {
	return InterviewResponse{
		ID:                  iv.ID,
		Type:                iv.Type,
		InterviewDate:       iv.InterviewDate,
		OverallScore:        iv.OverallScore,
		CommunicationScore:  iv.CommunicationScore,
		ProblemSolvingScore: iv.ProblemSolvingScore,
		TechnicalScore:      iv.TechnicalScore,
		Passed:              iv.Passed,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createInterview records an interview result and queues weak-area analysis.
// @Summary      Record an interview result
// @Description  Saves the result and analyzes its per-dimension scores for weak areas in the background.
// @Tags         Interviews
// @Accept       json
// @Produce      json
// @Param        body  body      CreateInterviewRequest  true  "Interview result"
// @Success      201   {object}  InterviewResponse
// @Failure      400   {object}  map[string]string
// @Router       /interviews [post]
func (h *Handler) createInterview(w http.ResponseWriter, r *http.Request) {
	var req CreateInterviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, _ := time.Parse(time.RFC3339, req.InterviewDate)
	iv, err := interview.New(req.Type, date, req.OverallScore, req.CommunicationScore,
		req.ProblemSolvingScore, req.TechnicalScore, req.Passed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.SaveInterview(iv); err != nil {
		http.Error(w, "failed to save interview", http.StatusInternalServerError)
		return
	}

	h.analysis.Submit(iv)

	resp := interviewResponse(iv)
	resp.Analysis = "queued"
	respondJSON(w, http.StatusCreated, resp)
}

// listInterviews lists all recorded interviews, newest first.
// @Summary      List interviews
// @Tags         Interviews
// @Produce      json
// @Success      200  {array}  InterviewResponse
// @Router       /interviews [get]
func (h *Handler) listInterviews(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.ListInterviews()
	if err != nil {
		http.Error(w, "failed to load interviews", http.StatusInternalServerError)
		return
	}

	responses := make([]InterviewResponse, len(results))
	for i, iv := range results {
		responses[i] = interviewResponse(iv)
	}
	respondJSON(w, http.StatusOK, responses)
}

// getInterview returns a single interview result.
// @Summary      Get an interview
// @Tags         Interviews
// @Produce      json
// @Param        interviewID  path      string  true  "Interview ID"
// @Success      200          {object}  InterviewResponse
// @Failure      404          {object}  map[string]string
// @Router       /interviews/{interviewID} [get]
func (h *Handler) getInterview(w http.ResponseWriter, r *http.Request) {
	interviewID := r.PathValue("interviewID")

	iv, err := h.store.GetInterview(interviewID)
	if h.handleStoreError(w, err, "interview") {
		return
	}

	respondJSON(w, http.StatusOK, interviewResponse(iv))
}

// getInterviewWeakAreas returns the weak areas created for an interview,
// waiting for a pending analysis to finish first.
// @Summary      Get weak areas detected for an interview
// @Tags         Interviews
// @Produce      json
// @Param        interviewID  path      string  true  "Interview ID"
// @Success      200          {array}   WeakAreaResponse
// @Failure      404          {object}  map[string]string
// @Router       /interviews/{interviewID}/weak-areas [get]
func (h *Handler) getInterviewWeakAreas(w http.ResponseWriter, r *http.Request) {
	interviewID := r.PathValue("interviewID")

	if _, err := h.store.GetInterview(interviewID); h.handleStoreError(w, err, "interview") {
		return
	}

	h.analysis.Wait(interviewID)

	outcome, ok := h.analysis.Outcome(interviewID)
	if !ok {
		// Interview predates this process; its analysis outcome is gone.
		respondJSON(w, http.StatusOK, []WeakAreaResponse{})
		return
	}
	if outcome.Err != nil {
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, weakAreaResponses(outcome.Created))
}
