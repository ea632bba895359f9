// Package subject implements read access to subjects and their ordered cards
// using PostgreSQL. Subjects are authored elsewhere; this repository never
// writes them.
package subject

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yoonbyeo/quizflow/internal/adapter/postgres"
	"github.com/yoonbyeo/quizflow/internal/domain"
)

// Repo provides subject queries backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new subject repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const hasCardSQL = `
SELECT EXISTS(
    SELECT 1
    FROM cards c
    JOIN subjects s ON s.id = c.subject_id
    WHERE c.id = $1 AND s.user_id = $2
)`

// selectSubjects returns subjects with card ids aggregated in card position order.
func selectSubjects() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"s.id", "s.user_id", "s.title", "s.created_at",
			"COALESCE(array_agg(c.id ORDER BY c.position) FILTER (WHERE c.id IS NOT NULL), '{}') AS card_ids",
		).
		From("subjects s").
		LeftJoin("cards c ON c.subject_id = s.id").
		GroupBy("s.id")
}

// ListByUser returns the user's subjects in creation order.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error) {
	query, args, err := selectSubjects().
		Where(squirrel.Eq{"s.user_id": userID}).
		OrderBy("s.created_at", "s.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subjects query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	subjects := make([]domain.Subject, 0)
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subjects: %w", err)
	}
	return subjects, nil
}

// GetByID returns one subject owned by the user.
// Returns domain.ErrNotFound if it does not exist or belongs to someone else.
func (r *Repo) GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error) {
	query, args, err := selectSubjects().
		Where(squirrel.Eq{"s.id": subjectID}).
		Where(squirrel.Eq{"s.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get subject query: %w", err)
	}

	s, err := scanSubject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subject", subjectID)
	}
	return s, nil
}

// HasCard reports whether the card belongs to one of the user's subjects.
func (r *Repo) HasCard(ctx context.Context, userID, cardID uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, hasCardSQL, cardID, userID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "card", cardID)
	}
	return exists, nil
}

func scanSubject(row pgx.Row) (*domain.Subject, error) {
	var s domain.Subject
	if err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.CreatedAt, &s.CardIDs); err != nil {
		return nil, err
	}
	return &s, nil
}
