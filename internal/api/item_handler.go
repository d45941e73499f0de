package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/preptrack/backend/internal/analytics"
	"github.com/preptrack/backend/internal/domain/practiceitem"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateItemRequest struct {
	Title      string `json:"title" example:"Two Sum"`
	Category   string `json:"category" example:"Arrays"`
	Difficulty string `json:"difficulty" example:"Easy"`
}

func (r *CreateItemRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Category == "" {
		return errors.New("category is required")
	}
	if !practiceitem.Difficulty(r.Difficulty).Valid() {
		return errors.New("invalid difficulty: must be Easy, Medium, or Hard")
	}
	return nil
}

type RecordAttemptRequest struct {
	Status           string `json:"status" example:"Solved"`
	TimeTakenMinutes int    `json:"time_taken_minutes" example:"35"`
	SolvedOptimally  bool   `json:"solved_optimally" example:"true"`
}

func (r *RecordAttemptRequest) Validate() error {
	if !practiceitem.Status(r.Status).Valid() {
		return errors.New("invalid status: must be NotStarted, Attempted, Solved, Mastered, or Understood")
	}
	if r.TimeTakenMinutes < 0 {
		return errors.New("time_taken_minutes cannot be negative")
	}
	return nil
}

type ItemResponse struct {
	ID               string     `json:"id" example:"a1b2c3d4e5f6g7h8"`
	Track            string     `json:"track" example:"dsa"`
	Title            string     `json:"title" example:"Two Sum"`
	Category         string     `json:"category" example:"Arrays"`
	Difficulty       string     `json:"difficulty" example:"Easy"`
	Status           string     `json:"status" example:"Solved"`
	AttemptCount     int        `json:"attempt_count" example:"2"`
	TimeTakenMinutes int        `json:"time_taken_minutes" example:"35"`
	SolvedOptimally  bool       `json:"solved_optimally" example:"true"`
	LastAttemptedAt  *time.Time `json:"last_attempted_at,omitempty"`
	NextReviewDate   *time.Time `json:"next_review_date,omitempty"`
}

func itemResponse(item *practiceitem.PracticeItem) ItemResponse {
	return ItemResponse{
		ID:               item.ID,
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
	}
}

func itemResponses(items []*practiceitem.PracticeItem) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = itemResponse(item)
	}
	return responses
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createProblem creates a new coding problem.
// @Summary      Create a coding problem
// @Tags         Problems
// @Accept       json
// @Produce      json
// @Param        body  body      CreateItemRequest  true  "Problem to create"
// @Success      201   {object}  ItemResponse
// @Failure      400   {object}  map[string]string
// @Router       /problems [post]
func (h *Handler) createProblem(w http.ResponseWriter, r *http.Request) {
	h.createItem(w, r, practiceitem.TrackDSA)
}

// createTopic creates a new system-design topic.
// @Summary      Create a system-design topic
// @Tags         Topics
// @Accept       json
// @Produce      json
// @Param        body  body      CreateItemRequest  true  "Topic to create"
// @Success      201   {object}  ItemResponse
// @Failure      400   {object}  map[string]string
// @Router       /topics [post]
func (h *Handler) createTopic(w http.ResponseWriter, r *http.Request) {
	h.createItem(w, r, practiceitem.TrackSystemDesign)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request, track practiceitem.Track) {
	var req CreateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := practiceitem.New(track, req.Title, req.Category, practiceitem.Difficulty(req.Difficulty))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.SaveItem(item); err != nil {
		http.Error(w, "failed to save item", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, itemResponse(item))
}

// listProblems lists all coding problems.
// @Summary      List coding problems
// @Tags         Problems
// @Produce      json
// @Success      200  {array}  ItemResponse
// @Router       /problems [get]
func (h *Handler) listProblems(w http.ResponseWriter, r *http.Request) {
	h.listItems(w, practiceitem.TrackDSA)
}

// listTopics lists all system-design topics.
// @Summary      List system-design topics
// @Tags         Topics
// @Produce      json
// @Success      200  {array}  ItemResponse
// @Router       /topics [get]
func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	h.listItems(w, practiceitem.TrackSystemDesign)
}

func (h *Handler) listItems(w http.ResponseWriter, track practiceitem.Track) {
	items, err := h.store.ListItems(track)
	if err != nil {
		http.Error(w, "failed to load items", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, itemResponses(items))
}

// getItem returns a single practice item.
// @Summary      Get a practice item
// @Tags         Problems
// @Produce      json
// @Param        itemID  path      string  true  "Item ID"
// @Success      200     {object}  ItemResponse
// @Failure      404     {object}  map[string]string
// @Router       /problems/{itemID} [get]
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemID")

	item, err := h.store.GetItem(itemID)
	if h.handleStoreError(w, err, "item") {
		return
	}

	respondJSON(w, http.StatusOK, itemResponse(item))
}

// deleteItem removes a practice item.
// @Summary      Delete a practice item
// @Tags         Problems
// @Param        itemID  path  string  true  "Item ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /problems/{itemID} [delete]
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemID")

	if h.handleStoreError(w, h.store.DeleteItem(itemID), "item") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// recordAttempt records one attempt against an item and reschedules its review.
// @Summary      Record an attempt
// @Description  Bumps the attempt count, updates the status, and schedules the next spaced-repetition review.
// @Tags         Problems
// @Accept       json
// @Produce      json
// @Param        itemID  path      string                true  "Item ID"
// @Param        body    body      RecordAttemptRequest  true  "Attempt outcome"
// @Success      200     {object}  ItemResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /problems/{itemID}/attempts [post]
func (h *Handler) recordAttempt(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemID")

	item, err := h.store.GetItem(itemID)
	if h.handleStoreError(w, err, "item") {
		return
	}

	var req RecordAttemptRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	if err := item.RecordAttempt(practiceitem.Status(req.Status), req.TimeTakenMinutes, req.SolvedOptimally, now); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.store.UpdateItem(item); err != nil {
		http.Error(w, "failed to save attempt", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, itemResponse(item))
}

// listDueReviews lists items whose scheduled review is due, soonest first.
// @Summary      List items due for review
// @Tags         Reviews
// @Produce      json
// @Success      200  {array}  ItemResponse
// @Router       /reviews/due [get]
func (h *Handler) listDueReviews(w http.ResponseWriter, r *http.Request) {
	items, err := h.loadAllItems()
	if err != nil {
		http.Error(w, "failed to load items", http.StatusInternalServerError)
		return
	}

	due := analytics.NeedsReview(items, time.Now().UTC())
	respondJSON(w, http.StatusOK, itemResponses(due))
}

// loadAllItems fetches both tracks in one slice.
func (h *Handler) loadAllItems() ([]*practiceitem.PracticeItem, error) {
	problems, err := h.store.ListItems(practiceitem.TrackDSA)
	if err != nil {
		return nil, err
	}
	topics, err := h.store.ListItems(practiceitem.TrackSystemDesign)
	if err != nil {
		return nil, err
	}
	return append(problems, topics...), nil
}
