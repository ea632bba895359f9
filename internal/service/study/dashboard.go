package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/pkg/ctxutil"
)

// GetDashboard returns aggregated study statistics for the user.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	now := s.clock.Now()

	var (
		subjects []domain.Subject
		stats    map[uuid.UUID]*domain.CardStat
		days     map[string]int
		review   *domain.StudySession
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subjects, stats, err = s.loadSubjectsAndStats(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		days, err = s.loadStreakWindow(gctx, userID, now)
		return err
	})
	g.Go(func() error {
		var err error
		review, err = s.loadReviewSession(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, fmt.Errorf("load dashboard: %w", err)
	}

	dashboard := domain.Dashboard{
		DueCount:             len(BuildDueQueue(subjects, stats, now)),
		StudiedToday:         days[DayKey(now, s.cfg.Location)],
		Streak:               ComputeStreak(days, now, s.cfg.Location, s.cfg.StreakScanDays),
		Difficulty:           countDifficulties(subjects, stats),
		ReviewCompletedToday: IsReviewCompletedToday(review, now, s.cfg.Location),
	}

	s.log.InfoContext(ctx, "dashboard loaded",
		slog.String("user_id", userID.String()),
		slog.Int("due_count", dashboard.DueCount),
		slog.Int("streak", dashboard.Streak),
	)

	return dashboard, nil
}

// countDifficulties tallies every card of every subject by tier. Cards that
// were never answered are unrated.
func countDifficulties(subjects []domain.Subject, stats map[uuid.UUID]*domain.CardStat) domain.DifficultyCounts {
	var counts domain.DifficultyCounts
	for _, subject := range subjects {
		for _, cardID := range subject.CardIDs {
			counts.Total++

			tier := domain.DifficultyUnrated
			if st, ok := stats[cardID]; ok {
				// Recomputed from counters so a stale stored tier never leaks out.
				tier = ClassifyDifficulty(st.Correct, st.Incorrect, st.Streak)
			}

			switch tier {
			case domain.DifficultyEasy:
				counts.Easy++
			case domain.DifficultyMedium:
				counts.Medium++
			case domain.DifficultyHard:
				counts.Hard++
			default:
				counts.Unrated++
			}
		}
	}
	return counts
}
