package domain

import (
	"time"

	"github.com/google/uuid"
)

// StudyConfig holds scheduling settings shared by every learner.
type StudyConfig struct {
	Location        *time.Location
	StreakScanDays  int
	MaxCalendarDays int
}

// DailyReviewSubject is the subject id under which the cross-subject daily
// review session is stored.
var DailyReviewSubject = uuid.Nil

// ActivityDay holds the outcome count for one calendar day.
type ActivityDay struct {
	Date  string // YYYY-MM-DD in the study location
	Count int
}

// SessionKey addresses one study session.
type SessionKey struct {
	UserID    uuid.UUID
	SubjectID uuid.UUID
	Mode      StudyMode
}

// SessionProgress is the mode-dependent resume payload of a study session.
// Only the fields relevant to the mode are meaningful:
//   - flashcard, match, write: Index (and Total when known)
//   - learn: Mastered, Total
//   - test: Index, Total
//   - review: Date, Done, Correct (and Total when known)
type SessionProgress struct {
	Index    int
	Mastered int
	Total    int
	Date     string
	Done     int
	Correct  int
}

// StudySession is the resume state of a learner in one subject and mode.
type StudySession struct {
	UserID    uuid.UUID
	SubjectID uuid.UUID
	Mode      StudyMode
	Progress  SessionProgress
	Completed bool
	UpdatedAt time.Time
}

// Key returns the address of the session.
func (s *StudySession) Key() SessionKey {
	return SessionKey{UserID: s.UserID, SubjectID: s.SubjectID, Mode: s.Mode}
}

// DifficultyCounts holds the number of cards per difficulty tier.
type DifficultyCounts struct {
	Unrated int
	Medium  int
	Hard    int
	Easy    int
	Total   int
}

// Dashboard holds aggregated study statistics for the user.
type Dashboard struct {
	DueCount             int
	StudiedToday         int
	Streak               int
	Difficulty           DifficultyCounts
	ReviewCompletedToday bool
}

// DailyReview is the cross-subject review queue for today.
type DailyReview struct {
	Cards          []CardRef
	CompletedToday bool
}

// ModeProgress is the resume summary of one study mode within a subject.
type ModeProgress struct {
	Mode      StudyMode
	Percent   int
	Completed bool
	Resumable bool
	UpdatedAt *time.Time
}

// AcceptsUpdate reports whether next may overwrite s through a progress
// update. A completed session only accepts completed updates, except a review
// session for a different day, which starts a new run.
func (s *StudySession) AcceptsUpdate(next *StudySession) bool {
	if s == nil || !s.Completed || next.Completed {
		return true
	}
	return s.Mode == StudyModeReview && s.Progress.Date != next.Progress.Date
}
