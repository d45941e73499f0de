// internal/store/sqlite.go
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/preptrack/backend/internal/domain/interview"
	"github.com/preptrack/backend/internal/domain/practiceitem"
	"github.com/preptrack/backend/internal/domain/studysession"
	"github.com/preptrack/backend/internal/domain/weakarea"
)

const schema = `
CREATE TABLE IF NOT EXISTS practice_items (
    id TEXT PRIMARY KEY,
    track TEXT NOT NULL,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    status TEXT NOT NULL,
    attempt_count INTEGER NOT NULL DEFAULT 0,
    time_taken_minutes INTEGER NOT NULL DEFAULT 0,
    solved_optimally INTEGER NOT NULL DEFAULT 0,
    last_attempted_at TEXT,
    next_review_date TEXT
);

CREATE TABLE IF NOT EXISTS interview_results (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    interview_date TEXT NOT NULL,
    overall_score INTEGER NOT NULL,
    communication_score INTEGER NOT NULL,
    problem_solving_score INTEGER NOT NULL,
    technical_score INTEGER NOT NULL,
    passed INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS weak_areas (
    id TEXT PRIMARY KEY,
    area TEXT NOT NULL,
    category TEXT NOT NULL,
    severity TEXT NOT NULL,
    identified_at TEXT NOT NULL,
    is_resolved INTEGER NOT NULL DEFAULT 0,
    resolved_at TEXT
);

-- Storage-level backstop for the dedup invariant: only one unresolved
-- weak area per (area, category) pair.
CREATE UNIQUE INDEX IF NOT EXISTS idx_weak_areas_open
    ON weak_areas(area, category) WHERE is_resolved = 0;

CREATE TABLE IF NOT EXISTS study_sessions (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    duration_minutes INTEGER NOT NULL,
    type TEXT NOT NULL,
    productivity_score INTEGER NOT NULL
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Timestamps are stored as RFC 3339 strings in UTC so comparisons in SQL and
// Go agree.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func parseTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ============================================================================
// Practice items
// ============================================================================

func (s *SQLiteStore) SaveItem(item *practiceitem.PracticeItem) error {
	_, err := s.db.Exec(`
		INSERT INTO practice_items
			(id, track, title, category, difficulty, status, attempt_count,
			 time_taken_minutes, solved_optimally, last_attempted_at, next_review_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, string(item.Track), item.Title, item.Category, string(item.Difficulty),
		string(item.Status), item.AttemptCount, item.TimeTakenMinutes,
		boolToInt(item.SolvedOptimally), formatTimePtr(item.LastAttemptedAt),
		formatTimePtr(item.NextReviewDate),
	)
	return err
}

func (s *SQLiteStore) GetItem(id string) (*practiceitem.PracticeItem, error) {
	row := s.db.QueryRow(`
		SELECT id, track, title, category, difficulty, status, attempt_count,
		       time_taken_minutes, solved_optimally, last_attempted_at, next_review_date
		FROM practice_items WHERE id = ?`, id)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *SQLiteStore) ListItems(track practiceitem.Track) ([]*practiceitem.PracticeItem, error) {
	rows, err := s.db.Query(`
		SELECT id, track, title, category, difficulty, status, attempt_count,
		       time_taken_minutes, solved_optimally, last_attempted_at, next_review_date
		FROM practice_items WHERE track = ?`, string(track))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*practiceitem.PracticeItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) UpdateItem(item *practiceitem.PracticeItem) error {
	result, err := s.db.Exec(`
		UPDATE practice_items
		SET status = ?, attempt_count = ?, time_taken_minutes = ?,
		    solved_optimally = ?, last_attempted_at = ?, next_review_date = ?
		WHERE id = ?`,
		string(item.Status), item.AttemptCount, item.TimeTakenMinutes,
		boolToInt(item.SolvedOptimally), formatTimePtr(item.LastAttemptedAt),
		formatTimePtr(item.NextReviewDate), item.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *SQLiteStore) DeleteItem(id string) error {
	result, err := s.db.Exec("DELETE FROM practice_items WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*practiceitem.PracticeItem, error) {
	var item practiceitem.PracticeItem
	var track, difficulty, status string
	var solvedOptimally int
	var lastAttemptedAt, nextReviewDate sql.NullString

	err := row.Scan(&item.ID, &track, &item.Title, &item.Category, &difficulty,
		&status, &item.AttemptCount, &item.TimeTakenMinutes, &solvedOptimally,
		&lastAttemptedAt, &nextReviewDate)
	if err != nil {
		return nil, err
	}

	item.Track = practiceitem.Track(track)
	item.Difficulty = practiceitem.Difficulty(difficulty)
	item.Status = practiceitem.Status(status)
	item.SolvedOptimally = solvedOptimally != 0

	if item.LastAttemptedAt, err = parseTimePtr(lastAttemptedAt); err != nil {
		return nil, err
	}
	if item.NextReviewDate, err = parseTimePtr(nextReviewDate); err != nil {
		return nil, err
	}
	return &item, nil
}

// ============================================================================
// Interview results
// ============================================================================

func (s *SQLiteStore) SaveInterview(iv *interview.Result) error {
	_, err := s.db.Exec(`
		INSERT INTO interview_results
			(id, type, interview_date, overall_score, communication_score,
			 problem_solving_score, technical_score, passed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		iv.ID, iv.Type, formatTime(iv.InterviewDate), iv.OverallScore,
		iv.CommunicationScore, iv.ProblemSolvingScore, iv.TechnicalScore,
		boolToInt(iv.Passed),
	)
	return err
}

func (s *SQLiteStore) GetInterview(id string) (*interview.Result, error) {
	row := s.db.QueryRow(`
		SELECT id, type, interview_date, overall_score, communication_score,
		       problem_solving_score, technical_score, passed
		FROM interview_results WHERE id = ?`, id)

	iv, err := scanInterview(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return iv, err
}

func (s *SQLiteStore) ListInterviews() ([]*interview.Result, error) {
	rows, err := s.db.Query(`
		SELECT id, type, interview_date, overall_score, communication_score,
		       problem_solving_score, technical_score, passed
		FROM interview_results ORDER BY interview_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*interview.Result
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, iv)
	}
	return results, rows.Err()
}

func scanInterview(row rowScanner) (*interview.Result, error) {
	var iv interview.Result
	var date string
	var passed int

	err := row.Scan(&iv.ID, &iv.Type, &date, &iv.OverallScore,
		&iv.CommunicationScore, &iv.ProblemSolvingScore, &iv.TechnicalScore, &passed)
	if err != nil {
		return nil, err
	}

	if iv.InterviewDate, err = parseTime(date); err != nil {
		return nil, err
	}
	iv.Passed = passed != 0
	return &iv, nil
}

// ============================================================================
// Weak areas
// ============================================================================

func (s *SQLiteStore) SaveWeakArea(w *weakarea.WeakArea) error {
	_, err := s.db.Exec(`
		INSERT INTO weak_areas (id, area, category, severity, identified_at, is_resolved, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Area, w.Category, string(w.Severity), formatTime(w.IdentifiedAt),
		boolToInt(w.IsResolved), formatTimePtr(w.ResolvedAt),
	)
	if isUniqueViolation(err) {
		return ErrDuplicateWeakArea
	}
	return err
}

// isUniqueViolation reports whether err is the driver's UNIQUE constraint
// error. The only unique constraints besides primary keys are on the
// idx_weak_areas_open index, so no message inspection is needed.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func (s *SQLiteStore) ListWeakAreas() ([]*weakarea.WeakArea, error) {
	return s.queryWeakAreas(`
		SELECT id, area, category, severity, identified_at, is_resolved, resolved_at
		FROM weak_areas ORDER BY identified_at DESC`)
}

func (s *SQLiteStore) ListUnresolvedWeakAreas() ([]*weakarea.WeakArea, error) {
	return s.queryWeakAreas(`
		SELECT id, area, category, severity, identified_at, is_resolved, resolved_at
		FROM weak_areas WHERE is_resolved = 0 ORDER BY identified_at DESC`)
}

func (s *SQLiteStore) queryWeakAreas(query string) ([]*weakarea.WeakArea, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []*weakarea.WeakArea
	for rows.Next() {
		var w weakarea.WeakArea
		var severity, identifiedAt string
		var isResolved int
		var resolvedAt sql.NullString

		if err := rows.Scan(&w.ID, &w.Area, &w.Category, &severity, &identifiedAt, &isResolved, &resolvedAt); err != nil {
			return nil, err
		}

		w.Severity = weakarea.Severity(severity)
		if w.IdentifiedAt, err = parseTime(identifiedAt); err != nil {
			return nil, err
		}
		w.IsResolved = isResolved != 0
		if w.ResolvedAt, err = parseTimePtr(resolvedAt); err != nil {
			return nil, err
		}
		areas = append(areas, &w)
	}
	return areas, rows.Err()
}

func (s *SQLiteStore) ResolveWeakArea(id string, now time.Time) error {
	result, err := s.db.Exec(`
		UPDATE weak_areas SET is_resolved = 1, resolved_at = ?
		WHERE id = ? AND is_resolved = 0`,
		formatTime(now), id,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// ============================================================================
// Study sessions
// ============================================================================

func (s *SQLiteStore) SaveStudySession(session *studysession.StudySession) error {
	_, err := s.db.Exec(`
		INSERT INTO study_sessions (id, date, duration_minutes, type, productivity_score)
		VALUES (?, ?, ?, ?, ?)`,
		session.ID, formatTime(session.Date), session.DurationMinutes,
		session.Type, session.ProductivityScore,
	)
	return err
}

func (s *SQLiteStore) ListStudySessions() ([]*studysession.StudySession, error) {
	rows, err := s.db.Query(`
		SELECT id, date, duration_minutes, type, productivity_score
		FROM study_sessions ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*studysession.StudySession
	for rows.Next() {
		var session studysession.StudySession
		var date string
		if err := rows.Scan(&session.ID, &date, &session.DurationMinutes, &session.Type, &session.ProductivityScore); err != nil {
			return nil, err
		}
		if session.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}
	return sessions, rows.Err()
}

// ============================================================================
// helpers
// ============================================================================

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
