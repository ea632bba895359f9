package rest

import (
	"time"

	"github.com/yoonbyeo/quizflow/internal/domain"
)

type cardRefResponse struct {
	SubjectID string `json:"subjectId"`
	CardID    string `json:"cardId"`
}

type cardStatResponse struct {
	CardID       string     `json:"cardId"`
	Correct      int        `json:"correct"`
	Incorrect    int        `json:"incorrect"`
	Streak       int        `json:"streak"`
	Difficulty   string     `json:"difficulty"`
	IntervalDays *int       `json:"intervalDays"`
	NextReview   *time.Time `json:"nextReview"`
	LastReviewed *time.Time `json:"lastReviewed"`
}

type dueResponse struct {
	Cards []cardRefResponse `json:"cards"`
	Count int               `json:"count"`
}

type dailyReviewResponse struct {
	Cards          []cardRefResponse `json:"cards"`
	CompletedToday bool              `json:"completedToday"`
}

type streakResponse struct {
	Streak int `json:"streak"`
}

type calendarResponse struct {
	From string         `json:"from"`
	To   string         `json:"to"`
	Days map[string]int `json:"days"`
}

type difficultyResponse struct {
	Unrated int `json:"unrated"`
	Medium  int `json:"medium"`
	Hard    int `json:"hard"`
	Easy    int `json:"easy"`
	Total   int `json:"total"`
}

type dashboardResponse struct {
	DueCount             int                `json:"dueCount"`
	StudiedToday         int                `json:"studiedToday"`
	Streak               int                `json:"streak"`
	Difficulty           difficultyResponse `json:"difficulty"`
	ReviewCompletedToday bool               `json:"reviewCompletedToday"`
}

type modeProgressResponse struct {
	Mode      string     `json:"mode"`
	Percent   int        `json:"percent"`
	Completed bool       `json:"completed"`
	Resumable bool       `json:"resumable"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type resetResponse struct {
	Deleted int64 `json:"deleted"`
}

type progressBody struct {
	Index    int    `json:"index,omitempty"`
	Mastered int    `json:"mastered,omitempty"`
	Total    int    `json:"total,omitempty"`
	Date     string `json:"date,omitempty"`
	Done     int    `json:"done,omitempty"`
	Correct  int    `json:"correct,omitempty"`
}

type saveSessionRequest struct {
	Progress  progressBody `json:"progress"`
	Completed bool         `json:"completed"`
}

type sessionResponse struct {
	SubjectID string       `json:"subjectId"`
	Mode      string       `json:"mode"`
	Progress  progressBody `json:"progress"`
	Completed bool         `json:"completed"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func toCardRefs(refs []domain.CardRef) []cardRefResponse {
	out := make([]cardRefResponse, len(refs))
	for i, ref := range refs {
		out[i] = cardRefResponse{SubjectID: ref.SubjectID.String(), CardID: ref.CardID.String()}
	}
	return out
}

func toCardStatResponse(s *domain.CardStat) cardStatResponse {
	return cardStatResponse{
		CardID:       s.CardID.String(),
		Correct:      s.Correct,
		Incorrect:    s.Incorrect,
		Streak:       s.Streak,
		Difficulty:   s.Difficulty.String(),
		IntervalDays: s.Interval,
		NextReview:   s.NextReview,
		LastReviewed: s.LastReviewed,
	}
}

func toDashboardResponse(d domain.Dashboard) dashboardResponse {
	return dashboardResponse{
		DueCount:     d.DueCount,
		StudiedToday: d.StudiedToday,
		Streak:       d.Streak,
		Difficulty: difficultyResponse{
			Unrated: d.Difficulty.Unrated,
			Medium:  d.Difficulty.Medium,
			Hard:    d.Difficulty.Hard,
			Easy:    d.Difficulty.Easy,
			Total:   d.Difficulty.Total,
		},
		ReviewCompletedToday: d.ReviewCompletedToday,
	}
}

func toModeProgress(rows []domain.ModeProgress) []modeProgressResponse {
	out := make([]modeProgressResponse, len(rows))
	for i, row := range rows {
		out[i] = modeProgressResponse{
			Mode:      row.Mode.String(),
			Percent:   row.Percent,
			Completed: row.Completed,
			Resumable: row.Resumable,
			UpdatedAt: row.UpdatedAt,
		}
	}
	return out
}

func (p progressBody) toDomain() domain.SessionProgress {
	return domain.SessionProgress{
		Index:    p.Index,
		Mastered: p.Mastered,
		Total:    p.Total,
		Date:     p.Date,
		Done:     p.Done,
		Correct:  p.Correct,
	}
}

func toSessionResponse(s *domain.StudySession) sessionResponse {
	subject := s.SubjectID.String()
	if s.SubjectID == domain.DailyReviewSubject {
		subject = dailySubjectAlias
	}
	return sessionResponse{
		SubjectID: subject,
		Mode:      s.Mode.String(),
		Progress: progressBody{
			Index:    s.Progress.Index,
			Mastered: s.Progress.Mastered,
			Total:    s.Progress.Total,
			Date:     s.Progress.Date,
			Done:     s.Progress.Done,
			Correct:  s.Progress.Correct,
		},
		Completed: s.Completed,
		UpdatedAt: s.UpdatedAt,
	}
}
