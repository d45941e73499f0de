package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/preptrack/backend/internal/domain/weakarea"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateWeakAreaRequest struct {
	Area     string `json:"area" example:"Dynamic Programming"`
	Category string `json:"category" example:"DSA"`
	Severity string `json:"severity" example:"Medium"`
}

func (r *CreateWeakAreaRequest) Validate() error {
	if r.Area == "" {
		return errors.New("area is required")
	}
	if r.Category == "" {
		return errors.New("category is required")
	}
	if !weakarea.Severity(r.Severity).Valid() {
		return errors.New("invalid severity: must be Low, Medium, or High")
	}
	return nil
}

type WeakAreaResponse struct {
	ID           string     `json:"id" example:"a1b2c3d4e5f6g7h8"`
	Area         string     `json:"area" example:"Communication Skills"`
	Category     string     `json:"category" example:"Behavioral"`
	Severity     string     `json:"severity" example:"High"`
	IdentifiedAt time.Time  `json:"identified_at"`
	IsResolved   bool       `json:"is_resolved" example:"false"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

func weakAreaResponse(w *weakarea.WeakArea) WeakAreaResponse {
	return WeakAreaResponse{
		ID:           w.ID,
		Area:         w.Area,
		Category:     w.Category,
		Severity:     string(w.Severity),
		IdentifiedAt: w.IdentifiedAt,
		IsResolved:   w.IsResolved,
		ResolvedAt:   w.ResolvedAt,
	}
}

func weakAreaResponses(areas []*weakarea.WeakArea) []WeakAreaResponse {
	responses := make([]WeakAreaResponse, len(areas))
	for i, w := range areas {
		responses[i] = weakAreaResponse(w)
	}
	return responses
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createWeakArea manually flags a weak area.
// @Summary      Flag a weak area manually
// @Description  Fails with 409 when an unresolved weak area for the same (area, category) pair already exists.
// @Tags         WeakAreas
// @Accept       json
// @Produce      json
// @Param        body  body      CreateWeakAreaRequest  true  "Weak area to flag"
// @Success      201   {object}  WeakAreaResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /weak-areas [post]
func (h *Handler) createWeakArea(w http.ResponseWriter, r *http.Request) {
	var req CreateWeakAreaRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	area := weakarea.New(req.Area, req.Category, weakarea.Severity(req.Severity), time.Now().UTC())

	if h.handleStoreError(w, h.store.SaveWeakArea(area), "weak area") {
		return
	}

	respondJSON(w, http.StatusCreated, weakAreaResponse(area))
}

// listWeakAreas lists weak areas, optionally only the unresolved ones.
// @Summary      List weak areas
// @Tags         WeakAreas
// @Produce      json
// @Param        unresolved  query    bool  false  "Only unresolved weak areas"
// @Success      200  {array}  WeakAreaResponse
// @Router       /weak-areas [get]
func (h *Handler) listWeakAreas(w http.ResponseWriter, r *http.Request) {
	var (
		areas []*weakarea.WeakArea
		err   error
	)
	if r.URL.Query().Get("unresolved") == "true" {
		areas, err = h.store.ListUnresolvedWeakAreas()
	} else {
		areas, err = h.store.ListWeakAreas()
	}
	if err != nil {
		http.Error(w, "failed to load weak areas", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, weakAreaResponses(areas))
}

// resolveWeakArea marks a weak area as addressed.
// @Summary      Resolve a weak area
// @Tags         WeakAreas
// @Param        weakAreaID  path  string  true  "Weak area ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /weak-areas/{weakAreaID}/resolve [post]
func (h *Handler) resolveWeakArea(w http.ResponseWriter, r *http.Request) {
	weakAreaID := r.PathValue("weakAreaID")

	if h.handleStoreError(w, h.store.ResolveWeakArea(weakAreaID, time.Now().UTC()), "weak area") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
