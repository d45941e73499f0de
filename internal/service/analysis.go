// internal/service/analysis.go
package service

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preptrack/backend/internal/domain/interview"
	"github.com/preptrack/backend/internal/domain/weakarea"
	"github.com/preptrack/backend/internal/store"
	"github.com/preptrack/backend/internal/worker"
)

// AnalysisStore is the slice of the persistence port the analysis needs.
type AnalysisStore interface {
	ListUnresolvedWeakAreas() ([]*weakarea.WeakArea, error)
	SaveWeakArea(w *weakarea.WeakArea) error
}

// AnalysisOutcome is the recorded result of analyzing one interview.
type AnalysisOutcome struct {
	InterviewID string
	Created     []*weakarea.WeakArea
	Err         error
}

// AnalysisService runs weak-area detection for recorded interviews in the
// background. It owns the per-interview WaitGroups so callers can block until
// an analysis has been persisted, and it serializes the read-existing →
// detect → persist sequence so two concurrent analyses can never create the
// same (area, category) pair twice.
type AnalysisService struct {
	store  AnalysisStore
	logger *slog.Logger
	pool   *worker.Pool[AnalysisOutcome]

	// detectMu covers the check-then-act window of the dedup invariant.
	detectMu sync.Mutex

	mu       sync.RWMutex
	pending  map[string]*sync.WaitGroup // interviewID → WaitGroup
	outcomes map[string]AnalysisOutcome
}

// NewAnalysisService creates an AnalysisService with the given number of
// background workers and starts collecting their results.
func NewAnalysisService(s AnalysisStore, logger *slog.Logger, workers int) *AnalysisService {
	if workers < 1 {
		workers = 1
	}
	as := &AnalysisService{
		store:    s,
		logger:   logger,
		pool:     worker.NewPool[AnalysisOutcome](workers, 16),
		pending:  make(map[string]*sync.WaitGroup),
		outcomes: make(map[string]AnalysisOutcome),
	}
	go as.collect()
	return as
}

// Submit queues an interview result for weak-area analysis.
// Call this after the interview itself has been saved.
func (as *AnalysisService) Submit(iv *interview.Result) {
	wg := &sync.WaitGroup{}
	wg.Add(1)

	as.mu.Lock()
	as.pending[iv.ID] = wg
	as.mu.Unlock()

	as.pool.Submit(iv.ID, func() AnalysisOutcome {
		return as.analyze(iv)
	})
}

// Wait blocks until the analysis for the given interview has finished and its
// outcome is recorded. Returns immediately for unknown interview IDs.
func (as *AnalysisService) Wait(interviewID string) {
	as.mu.RLock()
	wg, ok := as.pending[interviewID]
	as.mu.RUnlock()

	if ok {
		wg.Wait()
	}
}

// Outcome returns the recorded analysis outcome for an interview.
func (as *AnalysisService) Outcome(interviewID string) (AnalysisOutcome, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	outcome, ok := as.outcomes[interviewID]
	return outcome, ok
}

// analyze runs one detection pass under the dedup lock and persists whatever
// the detector flagged.
func (as *AnalysisService) analyze(iv *interview.Result) AnalysisOutcome {
	as.detectMu.Lock()
	defer as.detectMu.Unlock()

	existing, err := as.store.ListUnresolvedWeakAreas()
	if err != nil {
		return AnalysisOutcome{InterviewID: iv.ID, Err: err}
	}

	detected := weakarea.Detect(iv, existing, time.Now().UTC())

	var created []*weakarea.WeakArea
	for _, w := range detected {
		err := as.store.SaveWeakArea(w)
		if errors.Is(err, store.ErrDuplicateWeakArea) {
			// The storage constraint caught a pair the snapshot missed.
			// Suppression, not failure.
			as.logger.Warn("duplicate weak area suppressed by store",
				"area", w.Area,
				"category", w.Category,
			)
			continue
		}
		if err != nil {
			return AnalysisOutcome{InterviewID: iv.ID, Created: created, Err: err}
		}
		created = append(created, w)
	}

	return AnalysisOutcome{InterviewID: iv.ID, Created: created}
}

// collect drains the worker pool, records outcomes, and releases waiters.
func (as *AnalysisService) collect() {
	for result := range as.pool.Results() {
		outcome := result.Output

		if outcome.Err != nil {
			as.logger.Error("interview analysis failed",
				"interview_id", outcome.InterviewID,
				"error", outcome.Err,
			)
		} else {
			as.logger.Info("interview analyzed",
				"interview_id", outcome.InterviewID,
				"weak_areas_created", len(outcome.Created),
			)
		}

		as.mu.Lock()
		as.outcomes[outcome.InterviewID] = outcome
		wg := as.pending[outcome.InterviewID]
		as.mu.Unlock()

		if wg != nil {
			wg.Done()
		}
	}
}
