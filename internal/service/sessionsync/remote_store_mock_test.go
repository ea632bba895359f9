package sessionsync

import (
	"context"
	"github.com/yoonbyeo/quizflow/internal/domain"
	"sync"
)

var _ remoteStore = &remoteStoreMock{}

type remoteStoreMock struct {
	GetFunc    func(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error)
	UpsertFunc func(ctx context.Context, session *domain.StudySession) (bool, error)
	DeleteFunc func(ctx context.Context, key domain.SessionKey) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Key domain.SessionKey
		}
		Upsert []struct {
			Ctx     context.Context
			Session *domain.StudySession
		}
		Delete []struct {
			Ctx context.Context
			Key domain.SessionKey
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *remoteStoreMock) Get(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error) {
	if mock.GetFunc == nil {
		panic("remoteStoreMock.GetFunc: method is nil but remoteStore.Get was just called")
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

func (mock *remoteStoreMock) GetCalls() []struct {
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

func (mock *remoteStoreMock) Upsert(ctx context.Context, session *domain.StudySession) (bool, error) {
	if mock.UpsertFunc == nil {
		panic("remoteStoreMock.UpsertFunc: method is nil but remoteStore.Upsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Session *domain.StudySession
	}{
		Ctx:     ctx,
		Session: session,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, session)
}

func (mock *remoteStoreMock) UpsertCalls() []struct {
	Ctx     context.Context
	Session *domain.StudySession
} {
	var calls []struct {
		Ctx     context.Context
		Session *domain.StudySession
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *remoteStoreMock) Delete(ctx context.Context, key domain.SessionKey) error {
	if mock.DeleteFunc == nil {
		panic("remoteStoreMock.DeleteFunc: method is nil but remoteStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.SessionKey
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *remoteStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key domain.SessionKey
} {
	var calls []struct {
		Ctx context.Context
		Key domain.SessionKey
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
