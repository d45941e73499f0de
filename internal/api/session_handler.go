package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/preptrack/backend/internal/domain/studysession"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateStudySessionRequest struct {
	Date              string `json:"date" example:"2026-03-01T19:00:00Z"`
	DurationMinutes   int    `json:"duration_minutes" example:"90"`
	Type              string `json:"type" example:"DSA"`
	ProductivityScore int    `json:"productivity_score" example:"8"`
}

func (r *CreateStudySessionRequest) Validate() error {
	if r.Date == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse(time.RFC3339, r.Date); err != nil {
		return errors.New("date must be RFC 3339")
	}
	if r.DurationMinutes < 0 {
		return errors.New("duration_minutes cannot be negative")
	}
	if r.Type == "" {
		return errors.New("type is required")
	}
	return nil
}

type StudySessionResponse struct {
	ID                string    `json:"id" example:"a1b2c3d4e5f6g7h8"`
	Date              time.Time `json:"date"`
	DurationMinutes   int       `json:"duration_minutes" example:"90"`
	Type              string    `json:"type" example:"DSA"`
	ProductivityScore int       `json:"productivity_score" example:"8"`
}

func studySessionResponse(s *studysession.StudySession) StudySessionResponse {
	return StudySessionResponse{
		ID:                s.ID,
		Date:              s.Date,
		DurationMinutes:   s.DurationMinutes,
		Type:              s.Type,
		ProductivityScore: s.ProductivityScore,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createStudySession logs a block of study time.
// @Summary      Log a study session
// @Tags         StudySessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateStudySessionRequest  true  "Session to log"
// @Success      201   {object}  StudySessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /study-sessions [post]
func (h *Handler) createStudySession(w http.ResponseWriter, r *http.Request) {
	var req CreateStudySessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, _ := time.Parse(time.RFC3339, req.Date)
	session, err := studysession.New(date, req.DurationMinutes, req.Type, req.ProductivityScore)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.SaveStudySession(session); err != nil {
		http.Error(w, "failed to save study session", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, studySessionResponse(session))
}

// listStudySessions lists logged study sessions, newest first.
// @Summary      List study sessions
// @Tags         StudySessions
// @Produce      json
// @Success      200  {array}  StudySessionResponse
// @Router       /study-sessions [get]
func (h *Handler) listStudySessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.ListStudySessions()
	if err != nil {
		http.Error(w, "failed to load study sessions", http.StatusInternalServerError)
		return
	}

	responses := make([]StudySessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = studySessionResponse(s)
	}
	respondJSON(w, http.StatusOK, responses)
}
