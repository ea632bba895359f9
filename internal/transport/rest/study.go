package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/internal/service/study"
)

type studyService interface {
	RecordOutcome(ctx context.Context, input study.RecordOutcomeInput) (*domain.CardStat, error)
	GetDueCards(ctx context.Context) ([]domain.CardRef, error)
	GetDailyReview(ctx context.Context) (domain.DailyReview, error)
	GetStreak(ctx context.Context) (int, error)
	GetCalendar(ctx context.Context, input study.CalendarInput) (map[string]int, error)
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
	GetSubjectProgress(ctx context.Context, subjectID uuid.UUID) ([]domain.ModeProgress, error)
	ResetSubjectStats(ctx context.Context, subjectID uuid.UUID) (int64, error)
}

// StudyHandler serves review scheduling and activity endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

// Register mounts the study routes on mux under prefix.
func (h *StudyHandler) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("POST "+prefix+"/study/outcomes", h.RecordOutcome)
	mux.HandleFunc("GET "+prefix+"/study/due", h.Due)
	mux.HandleFunc("GET "+prefix+"/study/daily-review", h.DailyReview)
	mux.HandleFunc("GET "+prefix+"/study/streak", h.Streak)
	mux.HandleFunc("GET "+prefix+"/study/calendar", h.Calendar)
	mux.HandleFunc("GET "+prefix+"/study/dashboard", h.Dashboard)
	mux.HandleFunc("GET "+prefix+"/subjects/{subjectID}/progress", h.SubjectProgress)
	mux.HandleFunc("DELETE "+prefix+"/subjects/{subjectID}/stats", h.ResetSubjectStats)
}

type recordOutcomeRequest struct {
	CardID  string `json:"cardId"`
	Correct *bool  `json:"correct"`
}

// RecordOutcome handles POST /study/outcomes.
func (h *StudyHandler) RecordOutcome(w http.ResponseWriter, r *http.Request) {
	var req recordOutcomeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Correct == nil {
		handleError(h.log, w, r, domain.NewValidationError("correct", "required"))
		return
	}
	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("cardId", "must be a UUID"))
		return
	}

	stat, err := h.svc.RecordOutcome(r.Context(), study.RecordOutcomeInput{CardID: cardID, Correct: *req.Correct})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardStatResponse(stat))
}

// Due handles GET /study/due.
func (h *StudyHandler) Due(w http.ResponseWriter, r *http.Request) {
	refs, err := h.svc.GetDueCards(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dueResponse{Cards: toCardRefs(refs), Count: len(refs)})
}

// DailyReview handles GET /study/daily-review.
func (h *StudyHandler) DailyReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.svc.GetDailyReview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dailyReviewResponse{
		Cards:          toCardRefs(review.Cards),
		CompletedToday: review.CompletedToday,
	})
}

// Streak handles GET /study/streak.
func (h *StudyHandler) Streak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.svc.GetStreak(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, streakResponse{Streak: streak})
}

// Calendar handles GET /study/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *StudyHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	input := study.CalendarInput{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	days, err := h.svc.GetCalendar(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, calendarResponse{From: input.From, To: input.To, Days: days})
}

// Dashboard handles GET /study/dashboard.
func (h *StudyHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(dashboard))
}

// SubjectProgress handles GET /subjects/{subjectID}/progress.
func (h *StudyHandler) SubjectProgress(w http.ResponseWriter, r *http.Request) {
	subjectID, err := uuid.Parse(r.PathValue("subjectID"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("subjectID", "must be a UUID"))
		return
	}

	rows, err := h.svc.GetSubjectProgress(r.Context(), subjectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toModeProgress(rows))
}

// ResetSubjectStats handles DELETE /subjects/{subjectID}/stats.
func (h *StudyHandler) ResetSubjectStats(w http.ResponseWriter, r *http.Request) {
	subjectID, err := uuid.Parse(r.PathValue("subjectID"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("subjectID", "must be a UUID"))
		return
	}

	deleted, err := h.svc.ResetSubjectStats(r.Context(), subjectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resetResponse{Deleted: deleted})
}
