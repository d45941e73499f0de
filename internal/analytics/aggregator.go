package analytics

import (
	"sort"
	"time"

	"github.com/preptrack/backend/internal/domain/interview"
	"github.com/preptrack/backend/internal/domain/practiceitem"
	"github.com/preptrack/backend/internal/domain/studysession"
	"github.com/preptrack/backend/internal/domain/weakarea"
)

// Aggregate-level weakness threshold: a dimension whose averaged score falls
// below this lands in CommonWeaknesses. Not the same number as the
// per-interview detection threshold in the weakarea package (6); the two
// signals operate at different granularities.
const commonWeaknessThreshold = 7.0

const maxFocusAreas = 3

type DSASummary struct {
	TotalProblems  int
	SolvedCount    int
	MasteredCount  int
	CompletionRate float64 // solved / total, 0-100
	Categories     []CategoryPerformance
}

type SystemDesignSummary struct {
	TotalTopics     int
	UnderstoodCount int
	MasteredCount   int
	ProgressRate    float64 // understood-or-mastered / total, 0-100
}

type InterviewSummary struct {
	TotalInterviews            int
	PassedCount                int
	PassRate                   float64
	AverageOverallScore        float64
	AverageCommunicationScore  float64
	AverageProblemSolvingScore float64
	AverageTechnicalScore      float64
	CommonWeaknesses           []string
}

type StudyTimeSummary struct {
	TotalSessions int
	// Whole hours only: sum(minutes) / 60 with integer division, partial
	// hours are dropped.
	TotalStudyHours     int
	AverageProductivity float64
}

// Dashboard is the composite summary the UI renders on one screen.
type Dashboard struct {
	DSA                   DSASummary
	SystemDesign          SystemDesignSummary
	Interviews            InterviewSummary
	StudyTime             StudyTimeSummary
	OpenWeakAreas         int
	NeedsReview           []*practiceitem.PracticeItem
	RecommendedFocusAreas []string
}

func SummarizeDSA(items []*practiceitem.PracticeItem) DSASummary {
	solved, mastered := 0, 0
	for _, item := range items {
		if item.Status.Solved() {
			solved++
		}
		if item.Status == practiceitem.StatusMastered {
			mastered++
		}
	}
	return DSASummary{
		TotalProblems:  len(items),
		SolvedCount:    solved,
		MasteredCount:  mastered,
		CompletionRate: percentage(solved, len(items)),
		Categories:     RankCategories(items),
	}
}

func SummarizeSystemDesign(topics []*practiceitem.PracticeItem) SystemDesignSummary {
	understood, mastered := 0, 0
	for _, topic := range topics {
		if topic.Status.Understood() {
			understood++
		}
		if topic.Status == practiceitem.StatusMastered {
			mastered++
		}
	}
	return SystemDesignSummary{
		TotalTopics:     len(topics),
		UnderstoodCount: understood,
		MasteredCount:   mastered,
		ProgressRate:    percentage(understood, len(topics)),
	}
}

func SummarizeInterviews(results []*interview.Result) InterviewSummary {
	passed := 0
	var overall, communication, problemSolving, technical int
	for _, r := range results {
		if r.Passed {
			passed++
		}
		overall += r.OverallScore
		communication += r.CommunicationScore
		problemSolving += r.ProblemSolvingScore
		technical += r.TechnicalScore
	}

	s := InterviewSummary{
		TotalInterviews:            len(results),
		PassedCount:                passed,
		PassRate:                   percentage(passed, len(results)),
		AverageOverallScore:        mean(overall, len(results)),
		AverageCommunicationScore:  mean(communication, len(results)),
		AverageProblemSolvingScore: mean(problemSolving, len(results)),
		AverageTechnicalScore:      mean(technical, len(results)),
	}

	if len(results) > 0 {
		if s.AverageCommunicationScore < commonWeaknessThreshold {
			s.CommonWeaknesses = append(s.CommonWeaknesses, "Communication")
		}
		if s.AverageProblemSolvingScore < commonWeaknessThreshold {
			s.CommonWeaknesses = append(s.CommonWeaknesses, "Problem Solving")
		}
		if s.AverageTechnicalScore < commonWeaknessThreshold {
			s.CommonWeaknesses = append(s.CommonWeaknesses, "Technical Knowledge")
		}
	}

	return s
}

func SummarizeStudyTime(sessions []*studysession.StudySession) StudyTimeSummary {
	totalMinutes := 0
	totalProductivity := 0
	for _, s := range sessions {
		totalMinutes += s.DurationMinutes
		totalProductivity += s.ProductivityScore
	}
	return StudyTimeSummary{
		TotalSessions:       len(sessions),
		TotalStudyHours:     totalMinutes / 60,
		AverageProductivity: mean(totalProductivity, len(sessions)),
	}
}

// NeedsReview returns the items whose scheduled review is at or before now,
// soonest first.
func NeedsReview(items []*practiceitem.PracticeItem, now time.Time) []*practiceitem.PracticeItem {
	var due []*practiceitem.PracticeItem
	for _, item := range items {
		if item.DueForReview(now) {
			due = append(due, item)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReviewDate.Before(*due[j].NextReviewDate)
	})
	return due
}

// RecommendedFocusAreas lists up to three categories whose progressed fraction
// is strictly below one half. Coding problems count when solved, system-design
// topics when understood. Categories keep their discovery order so the output
// is deterministic across runs.
func RecommendedFocusAreas(items []*practiceitem.PracticeItem) []string {
	var order []string
	total := make(map[string]int)
	solved := make(map[string]int)
	for _, item := range items {
		if _, seen := total[item.Category]; !seen {
			order = append(order, item.Category)
		}
		total[item.Category]++

		progressed := item.Status.Solved()
		if item.Track == practiceitem.TrackSystemDesign {
			progressed = item.Status.Understood()
		}
		if progressed {
			solved[item.Category]++
		}
	}

	var focus []string
	for _, cat := range order {
		if float64(solved[cat])/float64(total[cat]) < 0.5 {
			focus = append(focus, cat)
			if len(focus) == maxFocusAreas {
				break
			}
		}
	}
	return focus
}

// BuildDashboard composes every per-domain rollup into the single summary the
// dashboard endpoint returns. All inputs are snapshots; nothing is mutated.
func BuildDashboard(
	problems, topics []*practiceitem.PracticeItem,
	interviews []*interview.Result,
	weakAreas []*weakarea.WeakArea,
	sessions []*studysession.StudySession,
	now time.Time,
) Dashboard {
	open := 0
	for _, w := range weakAreas {
		if !w.IsResolved {
			open++
		}
	}

	all := make([]*practiceitem.PracticeItem, 0, len(problems)+len(topics))
	all = append(all, problems...)
	all = append(all, topics...)

	return Dashboard{
		DSA:                   SummarizeDSA(problems),
		SystemDesign:          SummarizeSystemDesign(topics),
		Interviews:            SummarizeInterviews(interviews),
		StudyTime:             SummarizeStudyTime(sessions),
		OpenWeakAreas:         open,
		NeedsReview:           NeedsReview(all, now),
		RecommendedFocusAreas: RecommendedFocusAreas(all),
	}
}

func mean(sum, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
