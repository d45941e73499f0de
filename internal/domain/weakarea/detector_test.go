package weakarea_test

import (
	"testing"
	"time"

	"github.com/preptrack/backend/internal/domain/interview"
	"github.com/preptrack/backend/internal/domain/weakarea"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newInterview(t *testing.T, communication, problemSolving, technical int) *interview.Result {
	t.Helper()
	iv, err := interview.New("Technical", now, 7, communication, problemSolving, technical, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return iv
}

func TestDetect_LowCommunication(t *testing.T) {
	iv := newInterview(t, 3, 8, 8)

	detected := weakarea.Detect(iv, nil, now)

	if len(detected) != 1 {
		t.Fatalf("expected 1 weak area, got %d", len(detected))
	}

	w := detected[0]
	if w.Area != "Communication Skills" {
		t.Errorf("expected area %q, got %q", "Communication Skills", w.Area)
	}
	if w.Category != "Behavioral" {
		t.Errorf("expected category %q, got %q", "Behavioral", w.Category)
	}
	if w.Severity != weakarea.SeverityHigh {
		t.Errorf("expected severity %q, got %q", weakarea.SeverityHigh, w.Severity)
	}
	if w.IsResolved {
		t.Error("new weak area should not be resolved")
	}
	if !w.IdentifiedAt.Equal(now) {
		t.Errorf("expected identified at %v, got %v", now, w.IdentifiedAt)
	}
}

func TestDetect_AllDimensionsLow(t *testing.T) {
	iv := newInterview(t, 5, 4, 2)

	detected := weakarea.Detect(iv, nil, now)

	if len(detected) != 3 {
		t.Fatalf("expected 3 weak areas, got %d", len(detected))
	}

	byArea := make(map[string]*weakarea.WeakArea)
	for _, w := range detected {
		byArea[w.Area] = w
	}

	if w := byArea["Communication Skills"]; w == nil || w.Severity != weakarea.SeverityMedium {
		t.Errorf("expected medium communication weak area, got %+v", w)
	}
	if w := byArea["Problem Solving Approach"]; w == nil || w.Severity != weakarea.SeverityMedium || w.Category != "Technical" {
		t.Errorf("expected medium problem solving weak area for the interview type, got %+v", w)
	}
	if w := byArea["Technical Knowledge"]; w == nil || w.Severity != weakarea.SeverityHigh {
		t.Errorf("expected high technical weak area, got %+v", w)
	}
}

func TestDetect_ThresholdBoundaries(t *testing.T) {
	// A score of exactly 6 does not flag; exactly 4 flags at medium.
	iv := newInterview(t, 6, 4, 6)

	detected := weakarea.Detect(iv, nil, now)

	if len(detected) != 1 {
		t.Fatalf("expected 1 weak area, got %d", len(detected))
	}
	if detected[0].Area != "Problem Solving Approach" {
		t.Errorf("expected problem solving flagged, got %q", detected[0].Area)
	}
	if detected[0].Severity != weakarea.SeverityMedium {
		t.Errorf("expected severity %q at score 4, got %q", weakarea.SeverityMedium, detected[0].Severity)
	}
}

func TestDetect_StrongInterviewFlagsNothing(t *testing.T) {
	iv := newInterview(t, 9, 8, 10)

	if detected := weakarea.Detect(iv, nil, now); len(detected) != 0 {
		t.Errorf("expected no weak areas, got %d", len(detected))
	}
}

func TestDetect_DeduplicatesAgainstExisting(t *testing.T) {
	iv := newInterview(t, 3, 8, 5)

	existing := []*weakarea.WeakArea{
		weakarea.New("Communication Skills", "Behavioral", weakarea.SeverityMedium, now.AddDate(0, 0, -7)),
	}

	detected := weakarea.Detect(iv, existing, now)

	if len(detected) != 1 {
		t.Fatalf("expected only the technical weak area, got %d", len(detected))
	}
	if detected[0].Area != "Technical Knowledge" {
		t.Errorf("expected area %q, got %q", "Technical Knowledge", detected[0].Area)
	}
}

func TestDetect_NoSeverityEscalationOnRepeat(t *testing.T) {
	existing := []*weakarea.WeakArea{
		weakarea.New("Communication Skills", "Behavioral", weakarea.SeverityMedium, now.AddDate(0, 0, -7)),
	}

	// A worse repeat score still produces nothing while the pair is open.
	iv := newInterview(t, 1, 8, 8)

	if detected := weakarea.Detect(iv, existing, now); len(detected) != 0 {
		t.Errorf("expected dedup to suppress creation, got %d weak areas", len(detected))
	}
	if existing[0].Severity != weakarea.SeverityMedium {
		t.Errorf("expected existing severity untouched, got %q", existing[0].Severity)
	}
}

func TestDetect_ResolvedPairDetectsAgain(t *testing.T) {
	resolved := weakarea.New("Communication Skills", "Behavioral", weakarea.SeverityMedium, now.AddDate(0, 0, -30))
	resolved.Resolve(now.AddDate(0, 0, -1))

	iv := newInterview(t, 3, 8, 8)

	detected := weakarea.Detect(iv, []*weakarea.WeakArea{resolved}, now)
	if len(detected) != 1 {
		t.Fatalf("expected resolved pair to be detectable again, got %d", len(detected))
	}
}

func TestResolve(t *testing.T) {
	w := weakarea.New("Communication Skills", "Behavioral", weakarea.SeverityMedium, now)

	resolvedAt := now.AddDate(0, 0, 3)
	w.Resolve(resolvedAt)

	if !w.IsResolved {
		t.Error("expected weak area to be resolved")
	}
	if w.ResolvedAt == nil || !w.ResolvedAt.Equal(resolvedAt) {
		t.Errorf("expected resolved at %v, got %v", resolvedAt, w.ResolvedAt)
	}
}
