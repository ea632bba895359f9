package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/yoonbyeo/quizflow/internal/domain"
	"sync"
)

var _ cardStatRepo = &cardStatRepoMock{}

type cardStatRepoMock struct {
	GetFunc             func(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.CardStat, error)
	UpsertFunc          func(ctx context.Context, stat *domain.CardStat) (*domain.CardStat, error)
	ListByUserFunc      func(ctx context.Context, userID uuid.UUID) ([]domain.CardStat, error)
	DeleteByCardIDsFunc func(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (int64, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
			CardID uuid.UUID
		}
		Upsert []struct {
			Ctx  context.Context
			Stat *domain.CardStat
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteByCardIDs []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			CardIDs []uuid.UUID
		}
	}
	lockGet             sync.RWMutex
	lockUpsert          sync.RWMutex
	lockListByUser      sync.RWMutex
	lockDeleteByCardIDs sync.RWMutex
}

func (mock *cardStatRepoMock) Get(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) (*domain.CardStat, error) {
	if mock.GetFunc == nil {
		panic("cardStatRepoMock.GetFunc: method is nil but cardStatRepo.Get was just called")
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
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, cardID)
}

func (mock *cardStatRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	CardID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		CardID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *cardStatRepoMock) Upsert(ctx context.Context, stat *domain.CardStat) (*domain.CardStat, error) {
	if mock.UpsertFunc == nil {
		panic("cardStatRepoMock.UpsertFunc: method is nil but cardStatRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Stat *domain.CardStat
	}{
		Ctx:  ctx,
		Stat: stat,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, stat)
}

func (mock *cardStatRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Stat *domain.CardStat
} {
	var calls []struct {
		Ctx  context.Context
		Stat *domain.CardStat
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *cardStatRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CardStat, error) {
	if mock.ListByUserFunc == nil {
		panic("cardStatRepoMock.ListByUserFunc: method is nil but cardStatRepo.ListByUser was just called")
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

func (mock *cardStatRepoMock) ListByUserCalls() []struct {
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

func (mock *cardStatRepoMock) DeleteByCardIDs(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (int64, error) {
	if mock.DeleteByCardIDsFunc == nil {
		panic("cardStatRepoMock.DeleteByCardIDsFunc: method is nil but cardStatRepo.DeleteByCardIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		CardIDs []uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		CardIDs: cardIDs,
	}
	mock.lockDeleteByCardIDs.Lock()
	mock.calls.DeleteByCardIDs = append(mock.calls.DeleteByCardIDs, callInfo)
	mock.lockDeleteByCardIDs.Unlock()
	return mock.DeleteByCardIDsFunc(ctx, userID, cardIDs)
}

func (mock *cardStatRepoMock) DeleteByCardIDsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	CardIDs []uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		CardIDs []uuid.UUID
	}
	mock.lockDeleteByCardIDs.RLock()
	calls = mock.calls.DeleteByCardIDs
	mock.lockDeleteByCardIDs.RUnlock()
	return calls
}
