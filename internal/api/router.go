// internal/api/router.go
package api

import "net/http"

// RegisterRoutes attaches every handler to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Coding problems (DSA track)
	mux.HandleFunc("POST /problems", h.createProblem)
	mux.HandleFunc("GET /problems", h.listProblems)
	mux.HandleFunc("GET /problems/{itemID}", h.getItem)
	mux.HandleFunc("DELETE /problems/{itemID}", h.deleteItem)
	mux.HandleFunc("POST /problems/{itemID}/attempts", h.recordAttempt)

	// System-design topics
	mux.HandleFunc("POST /topics", h.createTopic)
	mux.HandleFunc("GET /topics", h.listTopics)
	mux.HandleFunc("GET /topics/{itemID}", h.getItem)
	mux.HandleFunc("DELETE /topics/{itemID}", h.deleteItem)
	mux.HandleFunc("POST /topics/{itemID}/attempts", h.recordAttempt)

	// Review schedule
	mux.HandleFunc("GET /reviews/due", h.listDueReviews)

	// Interviews
	mux.HandleFunc("POST /interviews", h.createInterview)
	mux.HandleFunc("GET /interviews", h.listInterviews)
	mux.HandleFunc("GET /interviews/{interviewID}", h.getInterview)
	mux.HandleFunc("GET /interviews/{interviewID}/weak-areas", h.getInterviewWeakAreas)

	// Weak areas
	mux.HandleFunc("POST /weak-areas", h.createWeakArea)
	mux.HandleFunc("GET /weak-areas", h.listWeakAreas)
	mux.HandleFunc("POST /weak-areas/{weakAreaID}/resolve", h.resolveWeakArea)

	// Study sessions
	mux.HandleFunc("POST /study-sessions", h.createStudySession)
	mux.HandleFunc("GET /study-sessions", h.listStudySessions)

	// Analytics
	mux.HandleFunc("GET /analytics/dashboard", h.getDashboard)
	mux.HandleFunc("GET /analytics/categories", h.getCategoryPerformance)

	// Backup
	mux.HandleFunc("GET /export", h.exportAll)
	mux.HandleFunc("POST /import", h.importAll)
}
