// Package studysession implements durable study session storage using
// PostgreSQL. The progress payload is stored as JSONB.
package studysession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yoonbyeo/quizflow/internal/adapter/postgres"
	"github.com/yoonbyeo/quizflow/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new study session repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var sessionColumns = []string{"user_id", "subject_id", "mode", "progress", "completed", "updated_at"}

// upsertSQL applies last-writer-wins on updated_at and refuses to move a
// completed session back to in-progress. A review session of another day is
// a new run and may replace a completed one.
const upsertSQL = `
INSERT INTO study_sessions (user_id, subject_id, mode, progress, completed, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, subject_id, mode) DO UPDATE SET
    progress = EXCLUDED.progress,
    completed = EXCLUDED.completed,
    updated_at = EXCLUDED.updated_at
WHERE study_sessions.updated_at <= EXCLUDED.updated_at
  AND (NOT study_sessions.completed
       OR EXCLUDED.completed
       OR (study_sessions.mode = 'review'
           AND study_sessions.progress->>'date' IS DISTINCT FROM EXCLUDED.progress->>'date'))`

const deleteSQL = `
DELETE FROM study_sessions
WHERE user_id = $1 AND subject_id = $2 AND mode = $3`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the session stored under key.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) Get(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error) {
	query, args, err := postgres.Builder().
		Select(sessionColumns...).
		From("study_sessions").
		Where(squirrel.Eq{"user_id": key.UserID}).
		Where(squirrel.Eq{"subject_id": key.SubjectID}).
		Where(squirrel.Eq{"mode": string(key.Mode)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get session query: %w", err)
	}

	session, err := scanSession(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "study_session", key.Mode)
	}
	return session, nil
}

// ListBySubject returns every mode's session of one subject, most recently
// updated first.
func (r *Repo) ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]domain.StudySession, error) {
	query, args, err := postgres.Builder().
		Select(sessionColumns...).
		From("study_sessions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"subject_id": subjectID}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sessions query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]domain.StudySession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert stores the session unless the stored row is newer or the write
// would regress a completed session. It reports whether the row was written.
func (r *Repo) Upsert(ctx context.Context, session *domain.StudySession) (bool, error) {
	progress, err := marshalProgress(session.Progress)
	if err != nil {
		return false, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, upsertSQL,
		session.UserID, session.SubjectID, string(session.Mode),
		progress, session.Completed, session.UpdatedAt.UTC(),
	)
	if err != nil {
		return false, postgres.MapError(err, "study_session", session.Mode)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the session stored under key. Deleting a missing session
// is not an error.
func (r *Repo) Delete(ctx context.Context, key domain.SessionKey) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, key.UserID, key.SubjectID, string(key.Mode))
	if err != nil {
		return postgres.MapError(err, "study_session", key.Mode)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.StudySession, error) {
	var (
		s        domain.StudySession
		mode     string
		progress []byte
		updated  time.Time
	)

	if err := row.Scan(&s.UserID, &s.SubjectID, &mode, &progress, &s.Completed, &updated); err != nil {
		return nil, err
	}

	p, err := unmarshalProgress(progress)
	if err != nil {
		return nil, err
	}

	s.Mode = domain.StudyMode(mode)
	s.Progress = p
	s.UpdatedAt = updated.UTC()
	return &s, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for SessionProgress
// ---------------------------------------------------------------------------

// progressJSON is the stored shape of domain.SessionProgress. Fields a mode
// does not use are omitted and decode to zero.
type progressJSON struct {
	Idx      int    `json:"idx,omitempty"`
	Mastered int    `json:"mastered,omitempty"`
	Total    int    `json:"total,omitempty"`
	Date     string `json:"date,omitempty"`
	Done     int    `json:"done,omitempty"`
	Correct  int    `json:"correct,omitempty"`
}

func marshalProgress(p domain.SessionProgress) ([]byte, error) {
	data, err := json.Marshal(progressJSON{
		Idx:      p.Index,
		Mastered: p.Mastered,
		Total:    p.Total,
		Date:     p.Date,
		Done:     p.Done,
		Correct:  p.Correct,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal session progress: %w", err)
	}
	return data, nil
}

func unmarshalProgress(data []byte) (domain.SessionProgress, error) {
	if len(data) == 0 {
		return domain.SessionProgress{}, nil
	}

	var j progressJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return domain.SessionProgress{}, fmt.Errorf("unmarshal session progress: %w", err)
	}

	return domain.SessionProgress{
		Index:    j.Idx,
		Mastered: j.Mastered,
		Total:    j.Total,
		Date:     j.Date,
		Done:     j.Done,
		Correct:  j.Correct,
	}, nil
}
