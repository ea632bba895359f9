package study

import (
	"context"
	"github.com/google/uuid"
	"github.com/yoonbyeo/quizflow/internal/domain"
	"sync"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	IncrementFunc func(ctx context.Context, userID uuid.UUID, day string) (int, error)
	ListRangeFunc func(ctx context.Context, userID uuid.UUID, from string, to string) ([]domain.ActivityDay, error)

	calls struct {
		Increment []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Day    string
		}
		ListRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   string
			To     string
		}
	}
	lockIncrement sync.RWMutex
	lockListRange sync.RWMutex
}

func (mock *activityRepoMock) Increment(ctx context.Context, userID uuid.UUID, day string) (int, error) {
	if mock.IncrementFunc == nil {
		panic("activityRepoMock.IncrementFunc: method is nil but activityRepo.Increment was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Day    string
	}{
		Ctx:    ctx,
		UserID: userID,
		Day:    day,
	}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, callInfo)
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, userID, day)
}

func (mock *activityRepoMock) IncrementCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Day    string
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Day    string
	}
	mock.lockIncrement.RLock()
	calls = mock.calls.Increment
	mock.lockIncrement.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListRange(ctx context.Context, userID uuid.UUID, from string, to string) ([]domain.ActivityDay, error) {
	if mock.ListRangeFunc == nil {
		panic("activityRepoMock.ListRangeFunc: method is nil but activityRepo.ListRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   string
		To     string
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
		To:     to,
	}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, userID, from, to)
}

func (mock *activityRepoMock) ListRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   string
	To     string
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   string
		To     string
	}
	mock.lockListRange.RLock()
	calls = mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}
