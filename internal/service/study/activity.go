package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/pkg/ctxutil"
)

// RecordActivity counts one outcome towards the learner's activity for the
// day containing now.
func (s *Service) RecordActivity(ctx context.Context, userID uuid.UUID, now time.Time) error {
	day := DayKey(now, s.cfg.Location)
	count, err := s.activity.Increment(ctx, userID, day)
	if err != nil {
		return fmt.Errorf("increment activity %s: %w", day, err)
	}

	s.log.DebugContext(ctx, "activity recorded",
		slog.String("user_id", userID.String()),
		slog.String("day", day),
		slog.Int("count", count),
	)
	return nil
}

// GetStreak returns the learner's current run of consecutive study days.
func (s *Service) GetStreak(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	days, err := s.loadStreakWindow(ctx, userID, now)
	if err != nil {
		return 0, err
	}

	return ComputeStreak(days, now, s.cfg.Location, s.cfg.StreakScanDays), nil
}

// GetCalendar returns the activity count of every day in the input range,
// including days without activity.
func (s *Service) GetCalendar(ctx context.Context, input CalendarInput) (map[string]int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	from, to, err := input.Range(s.cfg.Location, s.cfg.MaxCalendarDays)
	if err != nil {
		return nil, err
	}

	days, err := s.activity.ListRange(ctx, userID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	return BuildCalendar(days, from, to), nil
}

// loadStreakWindow loads the activity days a streak computation can reach.
func (s *Service) loadStreakWindow(ctx context.Context, userID uuid.UUID, now time.Time) (map[string]int, error) {
	today := DayStart(now, s.cfg.Location).In(s.cfg.Location)
	from := DayKey(addDays(today, -s.cfg.StreakScanDays), s.cfg.Location)
	to := DayKey(today, s.cfg.Location)

	days, err := s.activity.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	counts := make(map[string]int, len(days))
	for _, d := range days {
		counts[d.Date] = d.Count
	}
	return counts, nil
}

// ComputeStreak counts consecutive days with activity ending today, or ending
// yesterday when nothing was studied today yet. A run that ended before
// yesterday does not count. At most maxScan days are inspected.
func ComputeStreak(days map[string]int, now time.Time, loc *time.Location, maxScan int) int {
	cursor := DayStart(now, loc).In(loc)
	if days[DayKey(cursor, loc)] <= 0 {
		cursor = addDays(cursor, -1)
		if days[DayKey(cursor, loc)] <= 0 {
			return 0
		}
	}

	streak := 0
	for streak < maxScan && days[DayKey(cursor, loc)] > 0 {
		streak++
		cursor = addDays(cursor, -1)
	}
	return streak
}

// BuildCalendar returns a count for every day in [from, to]. from and to must
// be midnights in the same location.
func BuildCalendar(days []domain.ActivityDay, from, to time.Time) map[string]int {
	loc := from.Location()
	calendar := make(map[string]int)
	for d := from; !d.After(to); d = addDays(d, 1) {
		calendar[DayKey(d, loc)] = 0
	}
	for _, d := range days {
		if _, ok := calendar[d.Date]; ok {
			calendar[d.Date] = d.Count
		}
	}
	return calendar
}
