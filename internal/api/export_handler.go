package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/preptrack/backend/internal/domain/interview"
	"github.com/preptrack/backend/internal/domain/practiceitem"
	"github.com/preptrack/backend/internal/domain/studysession"
	"github.com/preptrack/backend/internal/domain/weakarea"
	"github.com/preptrack/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportItem struct {
	Track            string     `json:"track"`
	Title            string     `json:"title"`
	Category         string     `json:"category"`
	Difficulty       string     `json:"difficulty"`
	Status           string     `json:"status"`
	AttemptCount     int        `json:"attempt_count"`
	TimeTakenMinutes int        `json:"time_taken_minutes"`
	SolvedOptimally  bool       `json:"solved_optimally"`
	LastAttemptedAt  *time.Time `json:"last_attempted_at,omitempty"`
	NextReviewDate   *time.Time `json:"next_review_date,omitempty"`
}

type ExportInterview struct {
	Type                string    `json:"type"`
	InterviewDate       time.Time `json:"interview_date"`
	OverallScore        int       `json:"overall_score"`
	CommunicationScore  int       `json:"communication_score"`
	ProblemSolvingScore int       `json:"problem_solving_score"`
	TechnicalScore      int       `json:"technical_score"`
	Passed              bool      `json:"passed"`
}

type ExportWeakArea struct {
	Area         string     `json:"area"`
	Category     string     `json:"category"`
	Severity     string     `json:"severity"`
	IdentifiedAt time.Time  `json:"identified_at"`
	IsResolved   bool       `json:"is_resolved"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

type ExportStudySession struct {
	Date              time.Time `json:"date"`
	DurationMinutes   int       `json:"duration_minutes"`
	Type              string    `json:"type"`
	ProductivityScore int       `json:"productivity_score"`
}

type ExportData struct {
	Version       string               `json:"version"`
	ExportedAt    string               `json:"exported_at"`
	Items         []ExportItem         `json:"items"`
	Interviews    []ExportInterview    `json:"interviews"`
	WeakAreas     []ExportWeakArea     `json:"weak_areas"`
	StudySessions []ExportStudySession `json:"study_sessions"`
}

type ImportResult struct {
	ItemsCreated         int `json:"items_created"`
	InterviewsCreated    int `json:"interviews_created"`
	WeakAreasCreated     int `json:"weak_areas_created"`
	StudySessionsCreated int `json:"study_sessions_created"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll dumps the learner's full history as versioned JSON.
// @Summary      Export all data
// @Tags         Backup
// @Produce      json
// @Success      200  {object}  ExportData
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	exportData := ExportData{
		Version:       "1.0",
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		Items:         make([]ExportItem, 0),
		Interviews:    make([]ExportInterview, 0),
		WeakAreas:     make([]ExportWeakArea, 0),
		StudySessions: make([]ExportStudySession, 0),
	}

	for _, track := range []practiceitem.Track{practiceitem.TrackDSA, practiceitem.TrackSystemDesign} {
		items, err := h.store.ListItems(track)
		if err != nil {
			http.Error(w, "failed to load items", http.StatusInternalServerError)
			return
		}
		for _, item := range items {
			exportData.Items = append(exportData.Items, ExportItem{
				Track:            string(item.Track),
				Title:            item.Title,
				Category:         item.Category,
				Difficulty:       string(item.Difficulty),
				Status:           string(item.Status),
				AttemptCount:     item.AttemptCount,
				TimeTakenMinutes: item.TimeTakenMinutes,
				SolvedOptimally:  item.SolvedOptimally,
				LastAttemptedAt:  item.LastAttemptedAt,
				NextReviewDate:   item.NextReviewDate,
			})
		}
	}

	interviews, err := h.store.ListInterviews()
	if err != nil {
		http.Error(w, "failed to load interviews", http.StatusInternalServerError)
		return
	}
	for _, iv := range interviews {
		exportData.Interviews = append(exportData.Interviews, ExportInterview{
			Type:                iv.Type,
			InterviewDate:       iv.InterviewDate,
			OverallScore:        iv.OverallScore,
			CommunicationScore:  iv.CommunicationScore,
			ProblemSolvingScore: iv.ProblemSolvingScore,
			TechnicalScore:      iv.TechnicalScore,
			Passed:              iv.Passed,
		})
	}

	weakAreas, err := h.store.ListWeakAreas()
	if err != nil {
		http.Error(w, "failed to load weak areas", http.StatusInternalServerError)
		return
	}
	for _, wa := range weakAreas {
		exportData.WeakAreas = append(exportData.WeakAreas, ExportWeakArea{
			Area:         wa.Area,
			Category:     wa.Category,
			Severity:     string(wa.Severity),
			IdentifiedAt: wa.IdentifiedAt,
			IsResolved:   wa.IsResolved,
			ResolvedAt:   wa.ResolvedAt,
		})
	}

	sessions, err := h.store.ListStudySessions()
	if err != nil {
		http.Error(w, "failed to load study sessions", http.StatusInternalServerError)
		return
	}
	for _, s := range sessions {
		exportData.StudySessions = append(exportData.StudySessions, ExportStudySession{
			Date:              s.Date,
			DurationMinutes:   s.DurationMinutes,
			Type:              s.Type,
			ProductivityScore: s.ProductivityScore,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=preptrack-export.json")
	json.NewEncoder(w).Encode(exportData)
}

// importAll loads a previously exported history. Re-analysis is not run for
// imported interviews; their weak areas come in through the export itself.
// @Summary      Import exported data
// @Tags         Backup
// @Accept       json
// @Produce      json
// @Param        body  body      ExportData  true  "Previously exported data"
// @Success      201   {object}  ImportResult
// @Failure      400   {object}  map[string]string
// @Router       /import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	result := ImportResult{}

	for _, item := range importData.Items {
		track := practiceitem.Track(item.Track)
		status := practiceitem.Status(item.Status)
		difficulty := practiceitem.Difficulty(item.Difficulty)
		if !track.Valid() || !status.Valid() || !difficulty.Valid() {
			h.logger.Error("skipping item with unknown enum value",
				"title", item.Title, "track", item.Track, "status", item.Status, "difficulty", item.Difficulty)
			continue
		}

		newItem, err := practiceitem.New(track, item.Title, item.Category, difficulty)
		if err != nil {
			h.logger.Error("failed to import item", "title", item.Title, "error", err)
			continue
		}
		newItem.Status = status
		newItem.AttemptCount = item.AttemptCount
		newItem.TimeTakenMinutes = item.TimeTakenMinutes
		newItem.SolvedOptimally = item.SolvedOptimally
		newItem.LastAttemptedAt = item.LastAttemptedAt
		newItem.NextReviewDate = item.NextReviewDate

		if err := h.store.SaveItem(newItem); err != nil {
			h.logger.Error("failed to save imported item", "title", item.Title, "error", err)
			continue
		}
		result.ItemsCreated++
	}

	for _, ivData := range importData.Interviews {
		iv, err := interview.New(ivData.Type, ivData.InterviewDate, ivData.OverallScore,
			ivData.CommunicationScore, ivData.ProblemSolvingScore, ivData.TechnicalScore, ivData.Passed)
		if err != nil {
			h.logger.Error("failed to import interview", "type", ivData.Type, "error", err)
			continue
		}
		if err := h.store.SaveInterview(iv); err != nil {
			h.logger.Error("failed to save imported interview", "error", err)
			continue
		}
		result.InterviewsCreated++
	}

	for _, waData := range importData.WeakAreas {
		severity := weakarea.Severity(waData.Severity)
		if !severity.Valid() {
			h.logger.Error("skipping weak area with unknown severity",
				"area", waData.Area, "severity", waData.Severity)
			continue
		}

		wa := weakarea.New(waData.Area, waData.Category, severity, waData.IdentifiedAt)
		if waData.IsResolved && waData.ResolvedAt != nil {
			wa.Resolve(*waData.ResolvedAt)
		}

		err := h.store.SaveWeakArea(wa)
		if errors.Is(err, store.ErrDuplicateWeakArea) {
			// An unresolved pair already present wins over the import.
			continue
		}
		if err != nil {
			h.logger.Error("failed to save imported weak area", "area", waData.Area, "error", err)
			continue
		}
		result.WeakAreasCreated++
	}

	for _, sData := range importData.StudySessions {
		session, err := studysession.New(sData.Date, sData.DurationMinutes, sData.Type, sData.ProductivityScore)
		if err != nil {
			h.logger.Error("failed to import study session", "error", err)
			continue
		}
		if err := h.store.SaveStudySession(session); err != nil {
			h.logger.Error("failed to save imported study session", "error", err)
			continue
		}
		result.StudySessionsCreated++
	}

	respondJSON(w, http.StatusCreated, result)
}
