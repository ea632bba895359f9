package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/pkg/ctxutil"
)

// BuildDueQueue returns the cards due at now, in subject order and then card
// order within each subject. A card is due when it has no stat, was never
// scheduled, or its next review is not after now.
func BuildDueQueue(subjects []domain.Subject, stats map[uuid.UUID]*domain.CardStat, now time.Time) []domain.CardRef {
	queue := make([]domain.CardRef, 0)
	for _, subject := range subjects {
		for _, cardID := range subject.CardIDs {
			if stats[cardID].IsDue(now) {
				queue = append(queue, domain.CardRef{SubjectID: subject.ID, CardID: cardID})
			}
		}
	}
	return queue
}

// IsReviewCompletedToday reports whether the daily review session was
// completed on the current day. A completion stamped on an earlier day does
// not count.
func IsReviewCompletedToday(session *domain.StudySession, now time.Time, loc *time.Location) bool {
	if session == nil || session.Mode != domain.StudyModeReview || !session.Completed {
		return false
	}
	return session.Progress.Date == DayKey(now, loc)
}

// GetDueCards returns every card of the learner that is due now.
func (s *Service) GetDueCards(ctx context.Context) ([]domain.CardRef, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now()

	subjects, stats, err := s.loadSubjectsAndStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	queue := BuildDueQueue(subjects, stats, now)

	s.log.InfoContext(ctx, "due cards built",
		slog.String("user_id", userID.String()),
		slog.Int("subjects", len(subjects)),
		slog.Int("due", len(queue)),
	)

	return queue, nil
}

// GetDailyReview returns today's review queue. Once the daily review session
// has been completed today the queue is empty.
func (s *Service) GetDailyReview(ctx context.Context) (domain.DailyReview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DailyReview{}, domain.ErrUnauthorized
	}

	now := s.clock.Now()

	session, err := s.loadReviewSession(ctx, userID)
	if err != nil {
		return domain.DailyReview{}, err
	}

	if IsReviewCompletedToday(session, now, s.cfg.Location) {
		return domain.DailyReview{Cards: []domain.CardRef{}, CompletedToday: true}, nil
	}

	subjects, stats, err := s.loadSubjectsAndStats(ctx, userID)
	if err != nil {
		return domain.DailyReview{}, err
	}

	return domain.DailyReview{Cards: BuildDueQueue(subjects, stats, now)}, nil
}

// loadSubjectsAndStats loads the learner's subjects and card stats in parallel.
func (s *Service) loadSubjectsAndStats(ctx context.Context, userID uuid.UUID) ([]domain.Subject, map[uuid.UUID]*domain.CardStat, error) {
	var (
		subjects []domain.Subject
		statList []domain.CardStat
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subjects, err = s.subjects.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list subjects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		statList, err = s.stats.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("list card stats: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return subjects, indexStats(statList), nil
}

// loadReviewSession returns the daily review session, or nil if none exists.
func (s *Service) loadReviewSession(ctx context.Context, userID uuid.UUID) (*domain.StudySession, error) {
	session, err := s.sessions.Get(ctx, domain.SessionKey{
		UserID:    userID,
		SubjectID: domain.DailyReviewSubject,
		Mode:      domain.StudyModeReview,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review session: %w", err)
	}
	return session, nil
}

func indexStats(stats []domain.CardStat) map[uuid.UUID]*domain.CardStat {
	byCard := make(map[uuid.UUID]*domain.CardStat, len(stats))
	for i := range stats {
		byCard[stats[i].CardID] = &stats[i]
	}
	return byCard
}
