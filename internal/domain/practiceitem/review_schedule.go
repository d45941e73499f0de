package practiceitem

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidAttemptCount is returned when the next review is requested for an
// attempt count below 1. Callers increment the count before scheduling, so a
// zero or negative value is always a caller bug.
var ErrInvalidAttemptCount = errors.New("attempt count must be at least 1")

// reviewIntervalDays is the spaced-repetition progression: each clean attempt
// pushes the next review further out, clamping at 30 days.
var reviewIntervalDays = [...]int{1, 3, 7, 14, 30}

// NextReviewDate computes when the item should come up for review again.
// The interval grows with the attempt count; an attempt that was not solved
// optimally halves the interval (integer division, floored at 1 day).
func NextReviewDate(attemptCount int, solvedOptimally bool, now time.Time) (time.Time, error) {
	if attemptCount < 1 {
		return time.Time{}, fmt.Errorf("schedule review for attempt %d: %w", attemptCount, ErrInvalidAttemptCount)
	}

	idx := attemptCount - 1
	if idx >= len(reviewIntervalDays) {
		idx = len(reviewIntervalDays) - 1
	}

	interval := reviewIntervalDays[idx]
	if !solvedOptimally {
		interval /= 2
		if interval < 1 {
			interval = 1
		}
	}

	return now.AddDate(0, 0, interval), nil
}
