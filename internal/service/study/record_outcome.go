package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/pkg/ctxutil"
)

// ApplyOutcome computes the stat of a card after one outcome.
// existing is nil for a card that has never been answered.
func ApplyOutcome(existing *domain.CardStat, userID, cardID uuid.UUID, correct bool, now time.Time) domain.CardStat {
	next := domain.CardStat{UserID: userID, CardID: cardID}
	var prevInterval *int
	if existing != nil {
		next.Correct = existing.Correct
		next.Incorrect = existing.Incorrect
		next.Streak = existing.Streak
		prevInterval = existing.Interval
	}

	if correct {
		next.Correct++
		next.Streak++
	} else {
		next.Incorrect++
		next.Streak = 0
	}

	next.Difficulty = ClassifyDifficulty(next.Correct, next.Incorrect, next.Streak)

	interval := NextInterval(prevInterval, correct)
	nextReview := NextReview(now, interval)
	reviewed := now
	next.Interval = &interval
	next.NextReview = &nextReview
	next.LastReviewed = &reviewed

	return next
}

// RecordOutcome applies one learner outcome to a card's stat, persists it and
// counts it towards today's activity. The activity write is independent of the
// stat write: a failure there is logged and does not fail the call.
func (s *Service) RecordOutcome(ctx context.Context, input RecordOutcomeInput) (*domain.CardStat, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	owned, err := s.subjects.HasCard(ctx, userID, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("check card: %w", err)
	}
	if !owned {
		return nil, fmt.Errorf("card %s: %w", input.CardID, domain.ErrNotFound)
	}

	now := s.clock.Now()

	existing, err := s.stats.Get(ctx, userID, input.CardID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get card stat: %w", err)
		}
		existing = nil
	}

	next := ApplyOutcome(existing, userID, input.CardID, input.Correct, now)

	saved, err := s.stats.Upsert(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("save card stat: %w", err)
	}

	if err := s.RecordActivity(ctx, userID, now); err != nil {
		s.log.WarnContext(ctx, "activity not recorded",
			slog.String("user_id", userID.String()),
			slog.String("card_id", input.CardID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "outcome recorded",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.Bool("correct", input.Correct),
		slog.String("difficulty", saved.Difficulty.String()),
		slog.Int("streak", saved.Streak),
	)

	return saved, nil
}
