package api

import (
	"net/http"
	"time"

	"github.com/preptrack/backend/internal/analytics"
	"github.com/preptrack/backend/internal/domain/practiceitem"
)

// ── Response types ──────────────────────────────────────────────────────────

type CategoryPerformanceResponse struct {
	Category           string  `json:"category" example:"Graphs"`
	TotalProblems      int     `json:"total_problems" example:"12"`
	SolvedCount        int     `json:"solved_count" example:"4"`
	SuccessRate        float64 `json:"success_rate" example:"33.3"`
	AverageTimeMinutes float64 `json:"average_time_minutes" example:"42.5"`
	StrengthLevel      string  `json:"strength_level" example:"Weak"`
}

type DSASummaryResponse struct {
	TotalProblems  int                           `json:"total_problems" example:"120"`
	SolvedCount    int                           `json:"solved_count" example:"65"`
	MasteredCount  int                           `json:"mastered_count" example:"20"`
	CompletionRate float64                       `json:"completion_rate" example:"54.2"`
	Categories     []CategoryPerformanceResponse `json:"categories"`
}

type SystemDesignSummaryResponse struct {
	TotalTopics     int     `json:"total_topics" example:"30"`
	UnderstoodCount int     `json:"understood_count" example:"18"`
	MasteredCount   int     `json:"mastered_count" example:"6"`
	ProgressRate    float64 `json:"progress_rate" example:"60"`
}

type InterviewSummaryResponse struct {
	TotalInterviews            int      `json:"total_interviews" example:"8"`
	PassedCount                int      `json:"passed_count" example:"5"`
	PassRate                   float64  `json:"pass_rate" example:"62.5"`
	AverageOverallScore        float64  `json:"average_overall_score" example:"6.9"`
	AverageCommunicationScore  float64  `json:"average_communication_score" example:"6.1"`
	AverageProblemSolvingScore float64  `json:"average_problem_solving_score" example:"7.4"`
	AverageTechnicalScore      float64  `json:"average_technical_score" example:"7.0"`
	CommonWeaknesses           []string `json:"common_weaknesses"`
}

type StudyTimeSummaryResponse struct {
	TotalSessions       int     `json:"total_sessions" example:"42"`
	TotalStudyHours     int     `json:"total_study_hours" example:"63"`
	AverageProductivity float64 `json:"average_productivity" example:"7.2"`
}

type DashboardResponse struct {
	DSA                   DSASummaryResponse          `json:"dsa"`
	SystemDesign          SystemDesignSummaryResponse `json:"system_design"`
	Interviews            InterviewSummaryResponse    `json:"interviews"`
	StudyTime             StudyTimeSummaryResponse    `json:"study_time"`
	OpenWeakAreas         int                         `json:"open_weak_areas" example:"3"`
	NeedsReview           []ItemResponse              `json:"needs_review"`
	RecommendedFocusAreas []string                    `json:"recommended_focus_areas"`
}

func categoryPerformanceResponses(perf []analytics.CategoryPerformance) []CategoryPerformanceResponse {
	responses := make([]CategoryPerformanceResponse, len(perf))
	for i, p := range perf {
		responses[i] = CategoryPerformanceResponse{
			Category:           p.Category,
			TotalProblems:      p.TotalProblems,
			SolvedCount:        p.SolvedCount,
			SuccessRate:        p.SuccessRate,
			AverageTimeMinutes: p.AverageTimeMinutes,
			StrengthLevel:      string(p.Strength),
		}
	}
	return responses
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getDashboard composes the full dashboard summary over the learner's history.
// @Summary      Dashboard summary
// @Description  Per-domain rollups, open weak areas, due reviews, and recommended focus areas in one payload.
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  DashboardResponse
// @Router       /analytics/dashboard [get]
func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	problems, err := h.store.ListItems(practiceitem.TrackDSA)
	if err != nil {
		http.Error(w, "failed to load problems", http.StatusInternalServerError)
		return
	}
	topics, err := h.store.ListItems(practiceitem.TrackSystemDesign)
	if err != nil {
		http.Error(w, "failed to load topics", http.StatusInternalServerError)
		return
	}
	interviews, err := h.store.ListInterviews()
	if err != nil {
		http.Error(w, "failed to load interviews", http.StatusInternalServerError)
		return
	}
	weakAreas, err := h.store.ListWeakAreas()
	if err != nil {
		http.Error(w, "failed to load weak areas", http.StatusInternalServerError)
		return
	}
	sessions, err := h.store.ListStudySessions()
	if err != nil {
		http.Error(w, "failed to load study sessions", http.StatusInternalServerError)
		return
	}

	d := analytics.BuildDashboard(problems, topics, interviews, weakAreas, sessions, time.Now().UTC())

	respondJSON(w, http.StatusOK, DashboardResponse{
		DSA: DSASummaryResponse{
			TotalProblems:  d.DSA.TotalProblems,
			SolvedCount:    d.DSA.SolvedCount,
			MasteredCount:  d.DSA.MasteredCount,
			CompletionRate: d.DSA.CompletionRate,
			Categories:     categoryPerformanceResponses(d.DSA.Categories),
		},
		SystemDesign: SystemDesignSummaryResponse{
			TotalTopics:     d.SystemDesign.TotalTopics,
			UnderstoodCount: d.SystemDesign.UnderstoodCount,
			MasteredCount:   d.SystemDesign.MasteredCount,
			ProgressRate:    d.SystemDesign.ProgressRate,
		},
		Interviews: InterviewSummaryResponse{
			TotalInterviews:            d.Interviews.TotalInterviews,
			PassedCount:                d.Interviews.PassedCount,
			PassRate:                   d.Interviews.PassRate,
			AverageOverallScore:        d.Interviews.AverageOverallScore,
			AverageCommunicationScore:  d.Interviews.AverageCommunicationScore,
			AverageProblemSolvingScore: d.Interviews.AverageProblemSolvingScore,
			AverageTechnicalScore:      d.Interviews.AverageTechnicalScore,
			CommonWeaknesses:           d.Interviews.CommonWeaknesses,
		},
		StudyTime: StudyTimeSummaryResponse{
			TotalSessions:       d.StudyTime.TotalSessions,
			TotalStudyHours:     d.StudyTime.TotalStudyHours,
			AverageProductivity: d.StudyTime.AverageProductivity,
		},
		OpenWeakAreas:         d.OpenWeakAreas,
		NeedsReview:           itemResponses(d.NeedsReview),
		RecommendedFocusAreas: d.RecommendedFocusAreas,
	})
}

// getCategoryPerformance ranks coding-problem categories, weakest first.
// @Summary      Category performance ranking
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  CategoryPerformanceResponse
// @Router       /analytics/categories [get]
func (h *Handler) getCategoryPerformance(w http.ResponseWriter, r *http.Request) {
	problems, err := h.store.ListItems(practiceitem.TrackDSA)
	if err != nil {
		http.Error(w, "failed to load problems", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, categoryPerformanceResponses(analytics.RankCategories(problems)))
}
