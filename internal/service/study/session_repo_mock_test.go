package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/yoonbyeo/quizflow/internal/domain"
	"sync"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetFunc           func(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error)
	ListBySubjectFunc func(ctx context.Context, userID uuid.UUID, subjectID uuid.UUID) ([]domain.StudySession, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			Key domain.SessionKey
		}
		ListBySubject []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			SubjectID uuid.UUID
		}
	}
	lockGet           sync.RWMutex
	lockListBySubject sync.RWMutex
}

func (mock *sessionRepoMock) Get(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error) {
	if mock.GetFunc == nil {
		panic("sessionRepoMock.GetFunc: method is nil but sessionRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.SessionKey
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *sessionRepoMock) GetCalls() []struct {
	Ctx context.Context
	Key domain.SessionKey
} {
	var calls []struct {
		Ctx context.Context
		Key domain.SessionKey
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListBySubject(ctx context.Context, userID uuid.UUID, subjectID uuid.UUID) ([]domain.StudySession, error) {
	if mock.ListBySubjectFunc == nil {
		panic("sessionRepoMock.ListBySubjectFunc: method is nil but sessionRepo.ListBySubject was just called")
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
	mock.lockListBySubject.Lock()
	mock.calls.ListBySubject = append(mock.calls.ListBySubject, callInfo)
	mock.lockListBySubject.Unlock()
	return mock.ListBySubjectFunc(ctx, userID, subjectID)
}

func (mock *sessionRepoMock) ListBySubjectCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	SubjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		SubjectID uuid.UUID
	}
	mock.lockListBySubject.RLock()
	calls = mock.calls.ListBySubject
	mock.lockListBySubject.RUnlock()
	return calls
}
