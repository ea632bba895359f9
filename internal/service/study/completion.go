package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/pkg/ctxutil"
)

// ProgressPercent normalizes a mode-specific progress payload to 0..100.
// cardCount is used when the payload does not carry its own total.
func ProgressPercent(mode domain.StudyMode, p domain.SessionProgress, completed bool, cardCount int) int {
	if completed {
		return 100
	}

	total := p.Total
	if total <= 0 {
		total = cardCount
	}
	if total <= 0 {
		return 0
	}

	var done int
	switch mode {
	case domain.StudyModeLearn:
		done = p.Mastered
	case domain.StudyModeReview:
		done = p.Done
	default:
		done = p.Index
	}

	return clampPercent(done * 100 / total)
}

func clampPercent(v int) int {
	return max(0, min(100, v))
}

// GetSubjectProgress returns one resume summary per study mode for a subject.
func (s *Service) GetSubjectProgress(ctx context.Context, subjectID uuid.UUID) ([]domain.ModeProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	subject, err := s.subjects.GetByID(ctx, userID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}

	sessions, err := s.sessions.ListBySubject(ctx, userID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return summarizeModes(sessions, len(subject.CardIDs), s.clock.Now(), s.cfg.Location), nil
}

func summarizeModes(sessions []domain.StudySession, cardCount int, now time.Time, loc *time.Location) []domain.ModeProgress {
	byMode := make(map[domain.StudyMode]*domain.StudySession, len(sessions))
	for i := range sessions {
		byMode[sessions[i].Mode] = &sessions[i]
	}

	out := make([]domain.ModeProgress, 0, len(domain.AllStudyModes))
	for _, mode := range domain.AllStudyModes {
		row := domain.ModeProgress{Mode: mode}
		session, ok := byMode[mode]
		if !ok {
			out = append(out, row)
			continue
		}

		completed := session.Completed
		if mode == domain.StudyModeReview {
			completed = IsReviewCompletedToday(session, now, loc)
		}

		progress := session.Progress
		if mode == domain.StudyModeReview && progress.Date != DayKey(now, loc) {
			// Yesterday's review says nothing about today's.
			progress = domain.SessionProgress{}
		}

		updated := session.UpdatedAt
		row.Completed = completed
		row.Percent = ProgressPercent(mode, progress, completed, cardCount)
		row.Resumable = !completed && row.Percent > 0
		row.UpdatedAt = &updated
		out = append(out, row)
	}
	return out
}
