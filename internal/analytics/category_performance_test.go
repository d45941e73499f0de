package analytics_test

import (
	"testing"

	"github.com/preptrack/backend/internal/analytics"
	"github.com/preptrack/backend/internal/domain/practiceitem"
)

func item(t *testing.T, category string, status practiceitem.Status, minutes int) *practiceitem.PracticeItem {
	t.Helper()
	p, err := practiceitem.New(practiceitem.TrackDSA, "Problem", category, practiceitem.DifficultyMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Status = status
	p.TimeTakenMinutes = minutes
	return p
}

func TestRankCategories(t *testing.T) {
	items := []*practiceitem.PracticeItem{
		item(t, "Arrays", practiceitem.StatusSolved, 20),
		item(t, "Arrays", practiceitem.StatusSolved, 40),
		item(t, "Arrays", practiceitem.StatusAttempted, 60),
		item(t, "Graphs", practiceitem.StatusAttempted, 50),
		item(t, "Graphs", practiceitem.StatusNotStarted, 0),
	}

	perf := analytics.RankCategories(items)

	if len(perf) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(perf))
	}

	// Weakest first.
	if perf[0].Category != "Graphs" {
		t.Errorf("expected Graphs ranked first, got %q", perf[0].Category)
	}
	if perf[0].SuccessRate != 0 {
		t.Errorf("expected 0%% success for Graphs, got %v", perf[0].SuccessRate)
	}

	arrays := perf[1]
	if arrays.TotalProblems != 3 || arrays.SolvedCount != 2 {
		t.Errorf("expected 2/3 solved for Arrays, got %d/%d", arrays.SolvedCount, arrays.TotalProblems)
	}
	if want := float64(2) / float64(3) * 100; arrays.SuccessRate != want {
		t.Errorf("expected success rate %v, got %v", want, arrays.SuccessRate)
	}
	// Average time covers all items in the category, not just solved ones.
	if arrays.AverageTimeMinutes != 40 {
		t.Errorf("expected average time 40, got %v", arrays.AverageTimeMinutes)
	}
}

func TestRankCategories_MasteredCountsAsSolved(t *testing.T) {
	items := []*practiceitem.PracticeItem{
		item(t, "Arrays", practiceitem.StatusMastered, 10),
	}

	perf := analytics.RankCategories(items)
	if perf[0].SolvedCount != 1 {
		t.Errorf("expected mastered item counted as solved, got %d", perf[0].SolvedCount)
	}
}

func TestRankCategories_StrengthThresholds(t *testing.T) {
	tests := []struct {
		name     string
		solved   int
		total    int
		strength analytics.StrengthLevel
	}{
		{"exactly 70 is strong", 7, 10, analytics.StrengthStrong},
		{"just below 70 is average", 69, 100, analytics.StrengthAverage},
		{"exactly 40 is average", 4, 10, analytics.StrengthAverage},
		{"just below 40 is weak", 39, 100, analytics.StrengthWeak},
		{"zero is weak", 0, 5, analytics.StrengthWeak},
		{"full marks is strong", 5, 5, analytics.StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []*practiceitem.PracticeItem
			for i := 0; i < tt.total; i++ {
				status := practiceitem.StatusAttempted
				if i < tt.solved {
					status = practiceitem.StatusSolved
				}
				items = append(items, item(t, "Arrays", status, 30))
			}

			perf := analytics.RankCategories(items)
			if perf[0].Strength != tt.strength {
				t.Errorf("%d/%d solved: expected %q, got %q", tt.solved, tt.total, tt.strength, perf[0].Strength)
			}
			if perf[0].SuccessRate < 0 || perf[0].SuccessRate > 100 {
				t.Errorf("success rate %v out of range", perf[0].SuccessRate)
			}
		})
	}
}

func TestRankCategories_Empty(t *testing.T) {
	if perf := analytics.RankCategories(nil); len(perf) != 0 {
		t.Errorf("expected empty ranking for no items, got %d entries", len(perf))
	}
}
