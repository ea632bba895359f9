// Package activity implements the per-day study activity ledger using
// PostgreSQL. Days are exchanged as YYYY-MM-DD keys and stored in a DATE column.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/adapter/postgres"
	"github.com/yoonbyeo/quizflow/internal/domain"
)

const dayLayout = "2006-01-02"

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new activity repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const incrementSQL = `
INSERT INTO activity (user_id, day, count)
VALUES ($1, $2, 1)
ON CONFLICT (user_id, day) DO UPDATE SET count = activity.count + 1
RETURNING count`

// Increment adds one outcome to the user's count for day and returns the
// new count. The row is created on first use.
func (r *Repo) Increment(ctx context.Context, userID uuid.UUID, day string) (int, error) {
	date, err := parseDay(day)
	if err != nil {
		return 0, err
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, incrementSQL, userID, date).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "activity", day)
	}
	return count, nil
}

// ListRange returns the non-empty days in [from, to], oldest first.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.ActivityDay, error) {
	fromDate, err := parseDay(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseDay(to)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Select("day", "count").
		From("activity").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"day": fromDate}).
		Where(squirrel.LtOrEq{"day": toDate}).
		OrderBy("day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activity query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	days := make([]domain.ActivityDay, 0)
	for rows.Next() {
		var (
			day   time.Time
			count int
		)
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("scan activity day: %w", err)
		}
		days = append(days, domain.ActivityDay{Date: day.Format(dayLayout), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity days: %w", err)
	}
	return days, nil
}

// parseDay converts a day key to the UTC midnight value bound to the DATE
// column, so the stored date never shifts with the session time zone.
func parseDay(day string) (time.Time, error) {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return time.Time{}, domain.NewValidationError("day", "must be YYYY-MM-DD")
	}
	return t, nil
}
