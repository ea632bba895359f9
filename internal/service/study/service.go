package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/yoonbyeo/quizflow/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardStatRepo interface {
	Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.CardStat, error)
	Upsert(ctx context.Context, stat *domain.CardStat) (*domain.CardStat, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CardStat, error)
	DeleteByCardIDs(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (int64, error)
}

type activityRepo interface {
	Increment(ctx context.Context, userID uuid.UUID, day string) (int, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.ActivityDay, error)
}

type subjectRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error)
	GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
	HasCard(ctx context.Context, userID, cardID uuid.UUID) (bool, error)
}

type sessionRepo interface {
	Get(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error)
	ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]domain.StudySession, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements review scheduling, activity tracking and due-queue logic.
type Service struct {
	stats    cardStatRepo
	activity activityRepo
	subjects subjectRepo
	sessions sessionRepo
	tx       txManager
	clock    clockwork.Clock
	log      *slog.Logger
	cfg      domain.StudyConfig
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	clock clockwork.Clock,
	stats cardStatRepo,
	activity activityRepo,
	subjects subjectRepo,
	sessions sessionRepo,
	tx txManager,
	cfg domain.StudyConfig,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		stats:    stats,
		activity: activity,
		subjects: subjects,
		sessions: sessions,
		tx:       tx,
		clock:    clock,
		log:      log.With("service", "study"),
		cfg:      cfg,
	}
}
