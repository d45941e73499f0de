package store

import (
	"errors"
	"time"

	"github.com/preptrack/backend/internal/domain/interview"
	"github.com/preptrack/backend/internal/domain/practiceitem"
	"github.com/preptrack/backend/internal/domain/studysession"
	"github.com/preptrack/backend/internal/domain/weakarea"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrDuplicateWeakArea surfaces the storage-level dedup constraint: at
	// most one unresolved weak area per (area, category) pair.
	ErrDuplicateWeakArea = errors.New("unresolved weak area already exists for this area and category")
)

// Store is the persistence port. The derivation core never sees it; only the
// service and HTTP layers load snapshots through it and persist derived
// results back.
type Store interface {
	// Practice items (coding problems and system-design topics)
	SaveItem(item *practiceitem.PracticeItem) error
	GetItem(id string) (*practiceitem.PracticeItem, error)
	ListItems(track practiceitem.Track) ([]*practiceitem.PracticeItem, error)
	UpdateItem(item *practiceitem.PracticeItem) error
	DeleteItem(id string) error

	// Interview results
	SaveInterview(iv *interview.Result) error
	GetInterview(id string) (*interview.Result, error)
	ListInterviews() ([]*interview.Result, error)

	// Weak areas
	SaveWeakArea(w *weakarea.WeakArea) error
	ListWeakAreas() ([]*weakarea.WeakArea, error)
	ListUnresolvedWeakAreas() ([]*weakarea.WeakArea, error)
	ResolveWeakArea(id string, now time.Time) error

	// Study sessions
	SaveStudySession(s *studysession.StudySession) error
	ListStudySessions() ([]*studysession.StudySession, error)
}
