package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/internal/service/study"
	"sync"
)

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	RecordOutcomeFunc      func(ctx context.Context, input study.RecordOutcomeInput) (*domain.CardStat, error)
	GetDueCardsFunc        func(ctx context.Context) ([]domain.CardRef, error)
	GetDailyReviewFunc     func(ctx context.Context) (domain.DailyReview, error)
	GetStreakFunc          func(ctx context.Context) (int, error)
	GetCalendarFunc        func(ctx context.Context, input study.CalendarInput) (map[string]int, error)
	GetDashboardFunc       func(ctx context.Context) (domain.Dashboard, error)
	GetSubjectProgressFunc func(ctx context.Context, subjectID uuid.UUID) ([]domain.ModeProgress, error)
	ResetSubjectStatsFunc  func(ctx context.Context, subjectID uuid.UUID) (int64, error)

	calls struct {
		RecordOutcome []struct {
			Ctx   context.Context
			Input study.RecordOutcomeInput
		}
		GetDueCards []struct {
			Ctx context.Context
		}
		GetDailyReview []struct {
			Ctx context.Context
		}
		GetStreak []struct {
			Ctx context.Context
		}
		GetCalendar []struct {
			Ctx   context.Context
			Input study.CalendarInput
		}
		GetDashboard []struct {
			Ctx context.Context
		}
		GetSubjectProgress []struct {
			Ctx       context.Context
			SubjectID uuid.UUID
		}
		ResetSubjectStats []struct {
			Ctx       context.Context
			SubjectID uuid.UUID
		}
	}
	lockRecordOutcome      sync.RWMutex
	lockGetDueCards        sync.RWMutex
	lockGetDailyReview     sync.RWMutex
	lockGetStreak          sync.RWMutex
	lockGetCalendar        sync.RWMutex
	lockGetDashboard       sync.RWMutex
	lockGetSubjectProgress sync.RWMutex
	lockResetSubjectStats  sync.RWMutex
}

func (mock *studyServiceMock) RecordOutcome(ctx context.Context, input study.RecordOutcomeInput) (*domain.CardStat, error) {
	if mock.RecordOutcomeFunc == nil {
		panic("studyServiceMock.RecordOutcomeFunc: method is nil but studyService.RecordOutcome was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.RecordOutcomeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRecordOutcome.Lock()
	mock.calls.RecordOutcome = append(mock.calls.RecordOutcome, callInfo)
	mock.lockRecordOutcome.Unlock()
	return mock.RecordOutcomeFunc(ctx, input)
}

func (mock *studyServiceMock) RecordOutcomeCalls() []struct {
	Ctx   context.Context
	Input study.RecordOutcomeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input study.RecordOutcomeInput
	}
	mock.lockRecordOutcome.RLock()
	calls = mock.calls.RecordOutcome
	mock.lockRecordOutcome.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetDueCards(ctx context.Context) ([]domain.CardRef, error) {
	if mock.GetDueCardsFunc == nil {
		panic("studyServiceMock.GetDueCardsFunc: method is nil but studyService.GetDueCards was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetDueCards.Lock()
	mock.calls.GetDueCards = append(mock.calls.GetDueCards, callInfo)
	mock.lockGetDueCards.Unlock()
	return mock.GetDueCardsFunc(ctx)
}

func (mock *studyServiceMock) GetDueCardsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetDueCards.RLock()
	calls = mock.calls.GetDueCards
	mock.lockGetDueCards.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetDailyReview(ctx context.Context) (domain.DailyReview, error) {
	if mock.GetDailyReviewFunc == nil {
		panic("studyServiceMock.GetDailyReviewFunc: method is nil but studyService.GetDailyReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetDailyReview.Lock()
	mock.calls.GetDailyReview = append(mock.calls.GetDailyReview, callInfo)
	mock.lockGetDailyReview.Unlock()
	return mock.GetDailyReviewFunc(ctx)
}

func (mock *studyServiceMock) GetDailyReviewCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetDailyReview.RLock()
	calls = mock.calls.GetDailyReview
	mock.lockGetDailyReview.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetStreak(ctx context.Context) (int, error) {
	if mock.GetStreakFunc == nil {
		panic("studyServiceMock.GetStreakFunc: method is nil but studyService.GetStreak was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetStreak.Lock()
	mock.calls.GetStreak = append(mock.calls.GetStreak, callInfo)
	mock.lockGetStreak.Unlock()
	return mock.GetStreakFunc(ctx)
}

func (mock *studyServiceMock) GetStreakCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetStreak.RLock()
	calls = mock.calls.GetStreak
	mock.lockGetStreak.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetCalendar(ctx context.Context, input study.CalendarInput) (map[string]int, error) {
	if mock.GetCalendarFunc == nil {
		panic("studyServiceMock.GetCalendarFunc: method is nil but studyService.GetCalendar was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.CalendarInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockGetCalendar.Lock()
	mock.calls.GetCalendar = append(mock.calls.GetCalendar, callInfo)
	mock.lockGetCalendar.Unlock()
	return mock.GetCalendarFunc(ctx, input)
}

func (mock *studyServiceMock) GetCalendarCalls() []struct {
	Ctx   context.Context
	Input study.CalendarInput
} {
	var calls []struct {
		Ctx   context.Context
		Input study.CalendarInput
	}
	mock.lockGetCalendar.RLock()
	calls = mock.calls.GetCalendar
	mock.lockGetCalendar.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	if mock.GetDashboardFunc == nil {
		panic("studyServiceMock.GetDashboardFunc: method is nil but studyService.GetDashboard was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetDashboard.Lock()
	mock.calls.GetDashboard = append(mock.calls.GetDashboard, callInfo)
	mock.lockGetDashboard.Unlock()
	return mock.GetDashboardFunc(ctx)
}

func (mock *studyServiceMock) GetDashboardCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetDashboard.RLock()
	calls = mock.calls.GetDashboard
	mock.lockGetDashboard.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetSubjectProgress(ctx context.Context, subjectID uuid.UUID) ([]domain.ModeProgress, error) {
	if mock.GetSubjectProgressFunc == nil {
		panic("studyServiceMock.GetSubjectProgressFunc: method is nil but studyService.GetSubjectProgress was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SubjectID uuid.UUID
	}{
		Ctx:       ctx,
		SubjectID: subjectID,
	}
	mock.lockGetSubjectProgress.Lock()
	mock.calls.GetSubjectProgress = append(mock.calls.GetSubjectProgress, callInfo)
	mock.lockGetSubjectProgress.Unlock()
	return mock.GetSubjectProgressFunc(ctx, subjectID)
}

func (mock *studyServiceMock) GetSubjectProgressCalls() []struct {
	Ctx       context.Context
	SubjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		SubjectID uuid.UUID
	}
	mock.lockGetSubjectProgress.RLock()
	calls = mock.calls.GetSubjectProgress
	mock.lockGetSubjectProgress.RUnlock()
	return calls
}

func (mock *studyServiceMock) ResetSubjectStats(ctx context.Context, subjectID uuid.UUID) (int64, error) {
	if mock.ResetSubjectStatsFunc == nil {
		panic("studyServiceMock.ResetSubjectStatsFunc: method is nil but studyService.ResetSubjectStats was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SubjectID uuid.UUID
	}{
		Ctx:       ctx,
		SubjectID: subjectID,
	}
	mock.lockResetSubjectStats.Lock()
	mock.calls.ResetSubjectStats = append(mock.calls.ResetSubjectStats, callInfo)
	mock.lockResetSubjectStats.Unlock()
	return mock.ResetSubjectStatsFunc(ctx, subjectID)
}

func (mock *studyServiceMock) ResetSubjectStatsCalls() []struct {
	Ctx       context.Context
	SubjectID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		SubjectID uuid.UUID
	}
	mock.lockResetSubjectStats.RLock()
	calls = mock.calls.ResetSubjectStats
	mock.lockResetSubjectStats.RUnlock()
	return calls
}
