package practiceitem_test

import (
	"errors"
	"testing"
	"time"

	"github.com/preptrack/backend/internal/domain/practiceitem"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func days(n int) time.Time {
	return now.AddDate(0, 0, n)
}

func TestNextReviewDate_Progression(t *testing.T) {
	tests := []struct {
		name            string
		attemptCount    int
		solvedOptimally bool
		want            time.Time
	}{
		{"first attempt optimal", 1, true, days(1)},
		{"second attempt optimal", 2, true, days(3)},
		{"third attempt optimal", 3, true, days(7)},
		{"fourth attempt optimal", 4, true, days(14)},
		{"fifth attempt optimal", 5, true, days(30)},
		{"clamps past table end", 20, true, days(30)},
		{"first attempt suboptimal floors at one day", 1, false, days(1)},
		{"third attempt suboptimal halves interval", 3, false, days(3)},
		{"fifth attempt suboptimal", 5, false, days(15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := practiceitem.NextReviewDate(tt.attemptCount, tt.solvedOptimally, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNextReviewDate_Bounds(t *testing.T) {
	for attempts := 1; attempts <= 10; attempts++ {
		for _, optimal := range []bool{true, false} {
			got, err := practiceitem.NextReviewDate(attempts, optimal, now)
			if err != nil {
				t.Fatalf("attempts=%d optimal=%v: unexpected error: %v", attempts, optimal, err)
			}
			if got.Before(days(1)) {
				t.Errorf("attempts=%d optimal=%v: review %v sooner than one day out", attempts, optimal, got)
			}
			if got.After(days(30)) {
				t.Errorf("attempts=%d optimal=%v: review %v later than thirty days out", attempts, optimal, got)
			}
		}
	}
}

func TestNextReviewDate_MonotonicInAttempts(t *testing.T) {
	prev, _ := practiceitem.NextReviewDate(1, true, now)
	for attempts := 2; attempts <= 10; attempts++ {
		got, err := practiceitem.NextReviewDate(attempts, true, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Before(prev) {
			t.Errorf("attempts=%d: review %v earlier than previous %v", attempts, got, prev)
		}
		prev = got
	}
}

func TestNextReviewDate_SuboptimalNeverLater(t *testing.T) {
	for attempts := 1; attempts <= 10; attempts++ {
		optimal, _ := practiceitem.NextReviewDate(attempts, true, now)
		suboptimal, err := practiceitem.NextReviewDate(attempts, false, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if suboptimal.After(optimal) {
			t.Errorf("attempts=%d: suboptimal review %v later than optimal %v", attempts, suboptimal, optimal)
		}
	}
}

func TestNextReviewDate_InvalidAttemptCount(t *testing.T) {
	for _, attempts := range []int{0, -1, -100} {
		_, err := practiceitem.NextReviewDate(attempts, true, now)
		if !errors.Is(err, practiceitem.ErrInvalidAttemptCount) {
			t.Errorf("attempts=%d: expected ErrInvalidAttemptCount, got %v", attempts, err)
		}
	}
}
