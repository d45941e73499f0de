package service_test

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/preptrack/backend/internal/domain/interview"
	"github.com/preptrack/backend/internal/domain/weakarea"
	"github.com/preptrack/backend/internal/service"
	"github.com/preptrack/backend/internal/store"
)

// memStore is an in-memory AnalysisStore enforcing the same unresolved
// (area, category) uniqueness as the SQLite index.
type memStore struct {
	mu    sync.Mutex
	areas []*weakarea.WeakArea
}

func (m *memStore) ListUnresolvedWeakAreas() ([]*weakarea.WeakArea, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var open []*weakarea.WeakArea
	for _, w := range m.areas {
		if !w.IsResolved {
			open = append(open, w)
		}
	}
	return open, nil
}

func (m *memStore) SaveWeakArea(w *weakarea.WeakArea) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.areas {
		if !existing.IsResolved && existing.Area == w.Area && existing.Category == w.Category {
			return store.ErrDuplicateWeakArea
		}
	}
	m.areas = append(m.areas, w)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newInterview(t *testing.T, communication, problemSolving, technical int) *interview.Result {
	t.Helper()
	iv, err := interview.New("Technical", time.Now(), 7, communication, problemSolving, technical, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return iv
}

func TestSubmit_CreatesWeakAreas(t *testing.T) {
	ms := &memStore{}
	svc := service.NewAnalysisService(ms, discardLogger(), 2)

	iv := newInterview(t, 3, 8, 8)
	svc.Submit(iv)
	svc.Wait(iv.ID)

	outcome, ok := svc.Outcome(iv.ID)
	if !ok {
		t.Fatal("expected an outcome to be recorded")
	}
	if outcome.Err != nil {
		t.Fatalf("unexpected analysis error: %v", outcome.Err)
	}
	if len(outcome.Created) != 1 {
		t.Fatalf("expected 1 weak area created, got %d", len(outcome.Created))
	}
	if outcome.Created[0].Area != "Communication Skills" {
		t.Errorf("expected communication weak area, got %q", outcome.Created[0].Area)
	}

	open, _ := ms.ListUnresolvedWeakAreas()
	if len(open) != 1 {
		t.Errorf("expected 1 persisted weak area, got %d", len(open))
	}
}

func TestSubmit_ConcurrentInterviewsNeverDuplicate(t *testing.T) {
	ms := &memStore{}
	svc := service.NewAnalysisService(ms, discardLogger(), 4)

	// Every interview flags the same (Communication Skills, Behavioral) pair.
	var ivs []*interview.Result
	for i := 0; i < 10; i++ {
		ivs = append(ivs, newInterview(t, 2, 8, 8))
	}
	for _, iv := range ivs {
		svc.Submit(iv)
	}
	for _, iv := range ivs {
		svc.Wait(iv.ID)
	}

	open, _ := ms.ListUnresolvedWeakAreas()
	if len(open) != 1 {
		t.Fatalf("expected exactly 1 unresolved weak area after 10 analyses, got %d", len(open))
	}

	created := 0
	for _, iv := range ivs {
		outcome, ok := svc.Outcome(iv.ID)
		if !ok {
			t.Fatalf("missing outcome for interview %s", iv.ID)
		}
		if outcome.Err != nil {
			t.Fatalf("unexpected analysis error: %v", outcome.Err)
		}
		created += len(outcome.Created)
	}
	if created != 1 {
		t.Errorf("expected 1 total creation across all analyses, got %d", created)
	}
}

func TestSubmit_CleanInterviewCreatesNothing(t *testing.T) {
	ms := &memStore{}
	svc := service.NewAnalysisService(ms, discardLogger(), 1)

	iv := newInterview(t, 9, 9, 9)
	svc.Submit(iv)
	svc.Wait(iv.ID)

	outcome, _ := svc.Outcome(iv.ID)
	if len(outcome.Created) != 0 {
		t.Errorf("expected no weak areas, got %d", len(outcome.Created))
	}
}

func TestWait_UnknownInterviewReturnsImmediately(t *testing.T) {
	svc := service.NewAnalysisService(&memStore{}, discardLogger(), 1)

	done := make(chan struct{})
	go func() {
		svc.Wait("no-such-interview")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked on an unknown interview ID")
	}
}

func TestSubmit_ResolvedPairIsDetectedAgain(t *testing.T) {
	ms := &memStore{}
	svc := service.NewAnalysisService(ms, discardLogger(), 1)

	first := newInterview(t, 3, 8, 8)
	svc.Submit(first)
	svc.Wait(first.ID)

	// Resolve the flagged pair, then analyze another weak interview.
	ms.mu.Lock()
	for _, w := range ms.areas {
		w.Resolve(time.Now())
	}
	ms.mu.Unlock()

	second := newInterview(t, 3, 8, 8)
	svc.Submit(second)
	svc.Wait(second.ID)

	outcome, _ := svc.Outcome(second.ID)
	if len(outcome.Created) != 1 {
		t.Fatalf("expected pair re-detected after resolution, got %d created", len(outcome.Created))
	}

	ms.mu.Lock()
	total := len(ms.areas)
	ms.mu.Unlock()
	if total != 2 {
		t.Errorf("expected 2 weak areas over the pair's history, got %d", total)
	}
}

// failingStore returns an error from the snapshot read.
type failingStore struct{ memStore }

func (f *failingStore) ListUnresolvedWeakAreas() ([]*weakarea.WeakArea, error) {
	return nil, fmt.Errorf("disk on fire")
}

func TestSubmit_StoreErrorRecordedInOutcome(t *testing.T) {
	svc := service.NewAnalysisService(&failingStore{}, discardLogger(), 1)

	iv := newInterview(t, 3, 8, 8)
	svc.Submit(iv)
	svc.Wait(iv.ID)

	outcome, ok := svc.Outcome(iv.ID)
	if !ok {
		t.Fatal("expected an outcome even on failure")
	}
	if outcome.Err == nil {
		t.Error("expected the store error to be recorded")
	}
}
