package interview_test

import (
	"testing"
	"time"

	"github.com/preptrack/backend/internal/domain/interview"
)

func TestNewResult(t *testing.T) {
	date := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)

	iv, err := interview.New("Technical", date, 7, 8, 6, 7, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if iv.ID == "" {
		t.Error("expected non-empty ID")
	}
	if iv.Type != "Technical" {
		t.Errorf("expected type %q, got %q", "Technical", iv.Type)
	}
	if !iv.InterviewDate.Equal(date) {
		t.Errorf("expected date %v, got %v", date, iv.InterviewDate)
	}
	if !iv.Passed {
		t.Error("expected passed to be true")
	}
}

func TestNewResultRejectsEmptyType(t *testing.T) {
	if _, err := interview.New("", time.Now(), 5, 5, 5, 5, false); err == nil {
		t.Error("expected error for empty interview type")
	}
}

func TestNewResultRejectsOutOfRangeScores(t *testing.T) {
	cases := []struct {
		name                                            string
		overall, communication, problemSolving, technical int
	}{
		{"overall too high", 11, 5, 5, 5},
		{"communication negative", 5, -1, 5, 5},
		{"problem solving too high", 5, 5, 11, 5},
		{"technical negative", 5, 5, 5, -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interview.New("Technical", time.Now(), tc.overall, tc.communication, tc.problemSolving, tc.technical, false)
			if err == nil {
				t.Error("expected error for out-of-range score")
			}
		})
	}
}

func TestNewResultAcceptsBoundaryScores(t *testing.T) {
	if _, err := interview.New("Behavioral", time.Now(), 0, 0, 10, 10, false); err != nil {
		t.Errorf("unexpected error for boundary scores: %v", err)
	}
}
