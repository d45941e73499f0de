package practiceitem

import (
	"fmt"
	"time"

	"github.com/preptrack/backend/internal/id"
)

// Track distinguishes the two kinds of practice items the learner works
// through: coding problems and system-design topics.
type Track string

const (
	TrackDSA          Track = "dsa"
	TrackSystemDesign Track = "system_design"
)

func (t Track) Valid() bool {
	return t == TrackDSA || t == TrackSystemDesign
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Status is a closed set. String values coming in over the API must be
// checked with Valid before they reach the domain.
type Status string

const (
	StatusNotStarted Status = "NotStarted"
	StatusAttempted  Status = "Attempted"
	StatusSolved     Status = "Solved"
	StatusMastered   Status = "Mastered"
	StatusUnderstood Status = "Understood"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusAttempted, StatusSolved, StatusMastered, StatusUnderstood:
		return true
	}
	return false
}

// Solved reports whether the item counts as solved for success-rate purposes.
func (s Status) Solved() bool {
	return s == StatusSolved || s == StatusMastered
}

// Understood reports whether a system-design topic counts toward progress.
func (s Status) Understood() bool {
	return s == StatusUnderstood || s == StatusMastered
}

// PracticeItem is a single coding problem or system-design topic together
// with the learner's attempt history against it.
type PracticeItem struct {
	ID               string
	Track            Track
	Title            string
	Category         string
	Difficulty       Difficulty
	Status           Status
	AttemptCount     int
	TimeTakenMinutes int
	SolvedOptimally  bool
	LastAttemptedAt  *time.Time
	NextReviewDate   *time.Time // set only after the first attempt
}

func New(track Track, title, category string, difficulty Difficulty) (*PracticeItem, error) {
	if title == "" {
		return nil, fmt.Errorf("practice item title cannot be empty")
	}
	if category == "" {
		return nil, fmt.Errorf("practice item category cannot be empty")
	}
	return &PracticeItem{
		ID:         id.New(),
		Track:      track,
		Title:      title,
		Category:   category,
		Difficulty: difficulty,
		Status:     StatusNotStarted,
	}, nil
}

// RecordAttempt applies a single attempt to the item: it bumps the attempt
// count, updates the outcome fields, and schedules the next review from the
// new attempt count. The status must come from the closed set.
func (p *PracticeItem) RecordAttempt(status Status, timeTakenMinutes int, solvedOptimally bool, now time.Time) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}
	if timeTakenMinutes < 0 {
		return fmt.Errorf("time taken cannot be negative")
	}

	p.AttemptCount++
	next, err := NextReviewDate(p.AttemptCount, solvedOptimally, now)
	if err != nil {
		return err
	}

	p.Status = status
	p.TimeTakenMinutes = timeTakenMinutes
	p.SolvedOptimally = solvedOptimally
	p.LastAttemptedAt = &now
	p.NextReviewDate = &next
	return nil
}

// DueForReview reports whether the item has a scheduled review at or before now.
func (p *PracticeItem) DueForReview(now time.Time) bool {
	return p.NextReviewDate != nil && !p.NextReviewDate.After(now)
}
