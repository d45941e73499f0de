package weakarea

import (
	"time"

	"github.com/preptrack/backend/internal/id"
)

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// WeakArea flags a skill/category pair that needs remediation. At most one
// unresolved WeakArea may exist per (area, category) pair; the detector and
// the storage layer both uphold that invariant.
type WeakArea struct {
	ID           string
	Area         string // human label, e.g. "Communication Skills"
	Category     string
	Severity     Severity
	IdentifiedAt time.Time
	IsResolved   bool
	ResolvedAt   *time.Time
}

func New(area, category string, severity Severity, now time.Time) *WeakArea {
	return &WeakArea{
		ID:           id.New(),
		Area:         area,
		Category:     category,
		Severity:     severity,
		IdentifiedAt: now,
	}
}

// Resolve marks the weak area as addressed. Resolving frees the
// (area, category) pair for future detections.
func (w *WeakArea) Resolve(now time.Time) {
	w.IsResolved = true
	w.ResolvedAt = &now
}
