package sessionsync

import "github.com/yoonbyeo/quizflow/internal/domain"

// SyncPolicy reconciles the local and durable copies of one session.
// It returns the copy to serve and whether the local copy must be pushed
// to the durable store because the durable one is missing or older.
type SyncPolicy interface {
	Resolve(local, durable *domain.StudySession) (winner *domain.StudySession, repush bool)
}

// LastWriteWins prefers the copy with the later UpdatedAt. The durable copy
// wins ties, and always wins when it is completed and the local copy would
// reopen it.
type LastWriteWins struct{}

func (LastWriteWins) Resolve(local, durable *domain.StudySession) (*domain.StudySession, bool) {
	switch {
	case durable == nil:
		return local, local != nil
	case local == nil:
		return durable, false
	case !durable.AcceptsUpdate(local):
		return durable, false
	case local.UpdatedAt.After(durable.UpdatedAt):
		return local, true
	default:
		return durable, false
	}
}
