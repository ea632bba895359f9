// Package cardstat implements per-learner card scheduling state persistence
// using PostgreSQL. Queries are assembled with squirrel.
package cardstat

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yoonbyeo/quizflow/internal/adapter/postgres"
	"github.com/yoonbyeo/quizflow/internal/domain"
)

// Repo provides card stat persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new card stat repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const table = "card_stats"

var columns = []string{
	"user_id", "card_id", "correct", "incorrect", "streak",
	"difficulty", "interval_days", "next_review", "last_reviewed",
}

// upsertSuffix overwrites every mutable column of an existing row.
var upsertSuffix = `ON CONFLICT (user_id, card_id) DO UPDATE SET
	correct = EXCLUDED.correct,
	incorrect = EXCLUDED.incorrect,
	streak = EXCLUDED.streak,
	difficulty = EXCLUDED.difficulty,
	interval_days = EXCLUDED.interval_days,
	next_review = EXCLUDED.next_review,
	last_reviewed = EXCLUDED.last_reviewed
RETURNING ` + strings.Join(columns, ", ")

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the stat of one card for a user.
// Returns domain.ErrNotFound if the card was never answered.
func (r *Repo) Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.CardStat, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"card_id": cardID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get card stat query: %w", err)
	}

	stat, err := scanStat(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card_stat", cardID)
	}
	return stat, nil
}

// ListByUser returns every stat the user has accumulated.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CardStat, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("card_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list card stats query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list card stats: %w", err)
	}
	defer rows.Close()

	return scanStats(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the stat or overwrites the existing row for the same
// (user, card) pair and returns the stored row.
func (r *Repo) Upsert(ctx context.Context, stat *domain.CardStat) (*domain.CardStat, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			stat.UserID, stat.CardID, stat.Correct, stat.Incorrect, stat.Streak,
			string(stat.Difficulty), stat.Interval, stat.NextReview, stat.LastReviewed,
		).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert card stat query: %w", err)
	}

	saved, err := scanStat(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card_stat", stat.CardID)
	}
	return saved, nil
}

// DeleteByCardIDs removes the user's stats for the given cards and returns
// the number of rows deleted.
func (r *Repo) DeleteByCardIDs(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (int64, error) {
	if len(cardIDs) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"card_id": cardIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete card stats query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "card_stats of user", userID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanStat(row pgx.Row) (*domain.CardStat, error) {
	var (
		s          domain.CardStat
		difficulty string
	)

	err := row.Scan(
		&s.UserID, &s.CardID, &s.Correct, &s.Incorrect, &s.Streak,
		&difficulty, &s.Interval, &s.NextReview, &s.LastReviewed,
	)
	if err != nil {
		return nil, err
	}

	s.Difficulty = domain.Difficulty(difficulty)
	return &s, nil
}

func scanStats(rows pgx.Rows) ([]domain.CardStat, error) {
	var stats []domain.CardStat
	for rows.Next() {
		s, err := scanStat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card stat: %w", err)
		}
		stats = append(stats, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate card stats: %w", err)
	}
	return stats, nil
}
