package rest

import (
	"context"
	"github.com/yoonbyeo/quizflow/internal/domain"
	"sync"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	LoadFunc  func(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error)
	SaveFunc  func(ctx context.Context, key domain.SessionKey, progress domain.SessionProgress, completed bool) (*domain.StudySession, error)
	ClearFunc func(ctx context.Context, key domain.SessionKey) error

	calls struct {
		Load []struct {
			Ctx context.Context
			Key domain.SessionKey
		}
		Save []struct {
			Ctx       context.Context
			Key       domain.SessionKey
			Progress  domain.SessionProgress
			Completed bool
		}
		Clear []struct {
			Ctx context.Context
			Key domain.SessionKey
		}
	}
	lockLoad  sync.RWMutex
	lockSave  sync.RWMutex
	lockClear sync.RWMutex
}

func (mock *sessionStoreMock) Load(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error) {
	if mock.LoadFunc == nil {
		panic("sessionStoreMock.LoadFunc: method is nil but sessionStore.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.SessionKey
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, key)
}

func (mock *sessionStoreMock) LoadCalls() []struct {
	Ctx context.Context
	Key domain.SessionKey
} {
	var calls []struct {
		Ctx context.Context
		Key domain.SessionKey
	}
	mock.lockLoad.RLock()
	calls = mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Save(ctx context.Context, key domain.SessionKey, progress domain.SessionProgress, completed bool) (*domain.StudySession, error) {
	if mock.SaveFunc == nil {
		panic("sessionStoreMock.SaveFunc: method is nil but sessionStore.Save was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Key       domain.SessionKey
		Progress  domain.SessionProgress
		Completed bool
	}{
		Ctx:       ctx,
		Key:       key,
		Progress:  progress,
		Completed: completed,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, key, progress, completed)
}

func (mock *sessionStoreMock) SaveCalls() []struct {
	Ctx       context.Context
	Key       domain.SessionKey
	Progress  domain.SessionProgress
	Completed bool
} {
	var calls []struct {
		Ctx       context.Context
		Key       domain.SessionKey
		Progress  domain.SessionProgress
		Completed bool
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Clear(ctx context.Context, key domain.SessionKey) error {
	if mock.ClearFunc == nil {
		panic("sessionStoreMock.ClearFunc: method is nil but sessionStore.Clear was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.SessionKey
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockClear.Lock()
	mock.calls.Clear = append(mock.calls.Clear, callInfo)
	mock.lockClear.Unlock()
	return mock.ClearFunc(ctx, key)
}

func (mock *sessionStoreMock) ClearCalls() []struct {
	Ctx context.Context
	Key domain.SessionKey
} {
	var calls []struct {
		Ctx context.Context
		Key domain.SessionKey
	}
	mock.lockClear.RLock()
	calls = mock.calls.Clear
	mock.lockClear.RUnlock()
	return calls
}
