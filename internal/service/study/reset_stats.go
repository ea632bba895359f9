package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/pkg/ctxutil"
)

// ResetSubjectStats deletes the learner's stats for every card of a subject.
// Activity history is kept.
func (s *Service) ResetSubjectStats(ctx context.Context, subjectID uuid.UUID) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if subjectID == uuid.Nil {
		return 0, domain.NewValidationError("subject_id", "required")
	}

	var deleted int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		subject, err := s.subjects.GetByID(txCtx, userID, subjectID)
		if err != nil {
			return fmt.Errorf("get subject: %w", err)
		}

		if len(subject.CardIDs) == 0 {
			return nil
		}

		deleted, err = s.stats.DeleteByCardIDs(txCtx, userID, subject.CardIDs)
		if err != nil {
			return fmt.Errorf("delete card stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "subject stats reset",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", subjectID.String()),
		slog.Int64("deleted", deleted),
	)

	return deleted, nil
}
