package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/domain"
)

type sessionLoader interface {
	Load(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error)
}

type sessionLister interface {
	ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]domain.StudySession, error)
}

// StudySessions is the session view of the study service. Single sessions,
// such as today's review, are loaded through the sync manager so progress
// still inside the debounce window is seen. Per-subject listings come from
// the durable store.
type StudySessions struct {
	sync sessionLoader
	list sessionLister
}

// NewStudySessions combines the sync manager with the durable session store.
func NewStudySessions(sync sessionLoader, list sessionLister) StudySessions {
	return StudySessions{sync: sync, list: list}
}

func (s StudySessions) Get(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error) {
	return s.sync.Load(ctx, key)
}

func (s StudySessions) ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]domain.StudySession, error) {
	return s.list.ListBySubject(ctx, userID, subjectID)
}
