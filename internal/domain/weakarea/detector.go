package weakarea

import (
	"time"

	"github.com/preptrack/backend/internal/domain/interview"
)

const (
	// A dimension score below this flags a weak area.
	detectThreshold = 6
	// A dimension score below this makes the weak area high severity.
	highSeverityThreshold = 4
)

// Detect inspects a single interview result and returns the weak areas that
// should be created for it. The three dimensions are evaluated independently,
// so one interview can flag zero to three areas. A pair that already has an
// unresolved entry in existingUnresolved is silently skipped, never updated.
//
// Callers must serialize the read-existing/detect/persist sequence; Detect
// itself is a pure function over its inputs.
func Detect(iv *interview.Result, existingUnresolved []*WeakArea, now time.Time) []*WeakArea {
	open := make(map[[2]string]struct{}, len(existingUnresolved))
	for _, w := range existingUnresolved {
		if w.IsResolved {
			continue
		}
		open[[2]string{w.Area, w.Category}] = struct{}{}
	}

	var detected []*WeakArea
	add := func(score int, area, category string) {
		if score >= detectThreshold {
			return
		}
		if _, exists := open[[2]string{area, category}]; exists {
			return
		}
		detected = append(detected, New(area, category, severityFor(score), now))
	}

	add(iv.CommunicationScore, "Communication Skills", "Behavioral")
	add(iv.ProblemSolvingScore, "Problem Solving Approach", iv.Type)
	add(iv.TechnicalScore, "Technical Knowledge", iv.Type)

	return detected
}

func severityFor(score int) Severity {
	if score < highSeverityThreshold {
		return SeverityHigh
	}
	return SeverityMedium
}
