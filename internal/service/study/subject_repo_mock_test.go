package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/yoonbyeo/quizflow/internal/domain"
	"sync"
)

var _ subjectRepo = &subjectRepoMock{}

type subjectRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error)
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID, subjectID uuid.UUID) (*domain.Subject, error)
	HasCardFunc    func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (bool, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SubjectID uuid.UUID
		}
		HasCard []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
	lockGetByID    sync.RWMutex
	lockHasCard    sync.RWMutex
}

func (mock *subjectRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Subject, error) {
	if mock.ListByUserFunc == nil {
		panic("subjectRepoMock.ListByUserFunc: method is nil but subjectRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *subjectRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *subjectRepoMock) GetByID(ctx context.Context, userID uuid.UUID, subjectID uuid.UUID) (*domain.Subject, error) {
	if mock.GetByIDFunc == nil {
		panic("subjectRepoMock.GetByIDFunc: method is nil but subjectRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SubjectID uuid.UUID
	}{
		Ctx:       ctx,
		UserID:    userID,
		SubjectID: subjectID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, subjectID)
}

func (mock *subjectRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SubjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SubjectID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *subjectRepoMock) HasCard(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (bool, error) {
	if mock.HasCardFunc == nil {
		panic("subjectRepoMock.HasCardFunc: method is nil but subjectRepo.HasCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		CardID: cardID,
	}
	mock.lockHasCard.Lock()
	mock.calls.HasCard = append(mock.calls.HasCard, callInfo)
	mock.lockHasCard.Unlock()
	return mock.HasCardFunc(ctx, userID, cardID)
}

func (mock *subjectRepoMock) HasCardCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}
	mock.lockHasCard.RLock()
	calls = mock.calls.HasCard
	mock.lockHasCard.RUnlock()
	return calls
}
