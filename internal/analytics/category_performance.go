package analytics

import (
	"sort"

	"github.com/preptrack/backend/internal/domain/practiceitem"
)

type StrengthLevel string

const (
	StrengthStrong  StrengthLevel = "Strong"
	StrengthAverage StrengthLevel = "Average"
	StrengthWeak    StrengthLevel = "Weak"
)

// Strength thresholds on the success-rate percentage, inclusive lower bounds.
const (
	strongAbove  = 70.0
	averageAbove = 40.0
)

// CategoryPerformance is the per-category reduction over practice items.
type CategoryPerformance struct {
	Category           string
	TotalProblems      int
	SolvedCount        int
	SuccessRate        float64 // 0-100
	AverageTimeMinutes float64 // mean over all items, not just solved ones
	Strength           StrengthLevel
}

// RankCategories groups items by category and computes one performance record
// per category, weakest first, so consumers can read "what to focus on next"
// straight off the front of the slice. Ties keep category discovery order.
func RankCategories(items []*practiceitem.PracticeItem) []CategoryPerformance {
	var order []string
	groups := make(map[string][]*practiceitem.PracticeItem)
	for _, item := range items {
		if _, seen := groups[item.Category]; !seen {
			order = append(order, item.Category)
		}
		groups[item.Category] = append(groups[item.Category], item)
	}

	perf := make([]CategoryPerformance, 0, len(order))
	for _, cat := range order {
		group := groups[cat]

		solved := 0
		totalMinutes := 0
		for _, item := range group {
			if item.Status.Solved() {
				solved++
			}
			totalMinutes += item.TimeTakenMinutes
		}

		rate := percentage(solved, len(group))
		avgTime := 0.0
		if len(group) > 0 {
			avgTime = float64(totalMinutes) / float64(len(group))
		}

		perf = append(perf, CategoryPerformance{
			Category:           cat,
			TotalProblems:      len(group),
			SolvedCount:        solved,
			SuccessRate:        rate,
			AverageTimeMinutes: avgTime,
			Strength:           strengthFor(rate),
		})
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].SuccessRate < perf[j].SuccessRate
	})

	return perf
}

func strengthFor(successRate float64) StrengthLevel {
	switch {
	case successRate >= strongAbove:
		return StrengthStrong
	case successRate >= averageAbove:
		return StrengthAverage
	default:
		return StrengthWeak
	}
}

// percentage is the shared zero-guarded rate: an empty denominator yields 0,
// never a division by zero.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
