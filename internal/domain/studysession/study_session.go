package studysession

import (
	"fmt"
	"time"

	"github.com/preptrack/backend/internal/id"
)

const maxProductivity = 10

// StudySession is one logged block of study time.
type StudySession struct {
	ID                string
	Date              time.Time
	DurationMinutes   int
	Type              string // category label, e.g. "DSA", "System Design"
	ProductivityScore int    // 0-10 self assessment
}

func New(date time.Time, durationMinutes int, sessionType string, productivityScore int) (*StudySession, error) {
	if durationMinutes < 0 {
		return nil, fmt.Errorf("duration cannot be negative")
	}
	if sessionType == "" {
		return nil, fmt.Errorf("session type cannot be empty")
	}
	if productivityScore < 0 || productivityScore > maxProductivity {
		return nil, fmt.Errorf("productivity score %d out of range 0-%d", productivityScore, maxProductivity)
	}
	return &StudySession{
		ID:                id.New(),
		Date:              date,
		DurationMinutes:   durationMinutes,
		Type:              sessionType,
		ProductivityScore: productivityScore,
	}, nil
}
