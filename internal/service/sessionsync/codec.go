package sessionsync

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yoonbyeo/quizflow/internal/domain"
)

// localKey addresses a session in the local cache.
func localKey(key domain.SessionKey) string {
	return fmt.Sprintf("session:%s:%s:%s", key.UserID, key.SubjectID, key.Mode)
}

// localEntry is the cached shape of a session. The key fields are implied by
// the cache key and not stored.
type localEntry struct {
	Progress  progressJSON `json:"progress"`
	Completed bool         `json:"completed"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type progressJSON struct {
	Idx      int    `json:"idx,omitempty"`
	Mastered int    `json:"mastered,omitempty"`
	Total    int    `json:"total,omitempty"`
	Date     string `json:"date,omitempty"`
	Done     int    `json:"done,omitempty"`
	Correct  int    `json:"correct,omitempty"`
}

func encodeEntry(s *domain.StudySession) ([]byte, error) {
	data, err := json.Marshal(localEntry{
		Progress: progressJSON{
			Idx:      s.Progress.Index,
			Mastered: s.Progress.Mastered,
			Total:    s.Progress.Total,
			Date:     s.Progress.Date,
			Done:     s.Progress.Done,
			Correct:  s.Progress.Correct,
		},
		Completed: s.Completed,
		UpdatedAt: s.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode session entry: %w", err)
	}
	return data, nil
}

func decodeEntry(key domain.SessionKey, data []byte) (*domain.StudySession, error) {
	var e localEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode session entry: %w", err)
	}
	if e.UpdatedAt.IsZero() {
		return nil, fmt.Errorf("decode session entry: missing updatedAt")
	}

	return &domain.StudySession{
		UserID:    key.UserID,
		SubjectID: key.SubjectID,
		Mode:      key.Mode,
		Progress: domain.SessionProgress{
			Index:    e.Progress.Idx,
			Mastered: e.Progress.Mastered,
			Total:    e.Progress.Total,
			Date:     e.Progress.Date,
			Done:     e.Progress.Done,
			Correct:  e.Progress.Correct,
		},
		Completed: e.Completed,
		UpdatedAt: e.UpdatedAt.UTC(),
	}, nil
}
