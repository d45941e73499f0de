package interview

import (
	"fmt"
	"time"

	"github.com/preptrack/backend/internal/id"
)

const maxScore = 10

// Result records the outcome of a single mock interview. Results are
// immutable once recorded; creating one triggers weak-area detection.
type Result struct {
	ID                  string
	Type                string // track label, e.g. "Technical", "Behavioral"
	InterviewDate       time.Time
	OverallScore        int
	CommunicationScore  int
	ProblemSolvingScore int
	TechnicalScore      int
	Passed              bool
}

func New(interviewType string, date time.Time, overall, communication, problemSolving, technical int, passed bool) (*Result, error) {
	if interviewType == "" {
		return nil, fmt.Errorf("interview type cannot be empty")
	}
	for _, s := range []struct {
		name  string
		value int
	}{
		{"overall", overall},
		{"communication", communication},
		{"problem solving", problemSolving},
		{"technical", technical},
	} {
		if s.value < 0 || s.value > maxScore {
			return nil, fmt.Errorf("%s score %d out of range 0-%d", s.name, s.value, maxScore)
		}
	}

	return &Result{
		ID:                  id.New(),
		Type:                interviewType,
		InterviewDate:       date,
		OverallScore:        overall,
		CommunicationScore:  communication,
		ProblemSolvingScore: problemSolving,
		TechnicalScore:      technical,
		Passed:              passed,
	}, nil
}
