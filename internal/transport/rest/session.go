package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/pkg/ctxutil"
)

// dailySubjectAlias addresses the cross-subject daily review session in paths.
const dailySubjectAlias = "daily"

type sessionStore interface {
	Load(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error)
	Save(ctx context.Context, key domain.SessionKey, progress domain.SessionProgress, completed bool) (*domain.StudySession, error)
	Clear(ctx context.Context, key domain.SessionKey) error
}

// SessionHandler serves study session resume endpoints.
type SessionHandler struct {
	store sessionStore
	log   *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(store sessionStore, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{store: store, log: logger.With("handler", "session")}
}

// Register mounts the session routes on mux under prefix.
func (h *SessionHandler) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/sessions/{subjectID}/{mode}", h.Get)
	mux.HandleFunc("PUT "+prefix+"/sessions/{subjectID}/{mode}", h.Save)
	mux.HandleFunc("DELETE "+prefix+"/sessions/{subjectID}/{mode}", h.Clear)
}

// Get handles GET /sessions/{subjectID}/{mode}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	key, err := sessionKey(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.store.Load(r.Context(), key)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Save handles PUT /sessions/{subjectID}/{mode}.
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	key, err := sessionKey(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req saveSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.store.Save(r.Context(), key, req.Progress.toDomain(), req.Completed)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Clear handles DELETE /sessions/{subjectID}/{mode}.
func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	key, err := sessionKey(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.store.Clear(r.Context(), key); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// sessionKey builds the session address from the path and the caller.
// The daily review lives under "daily" (or the nil UUID) and only in review mode.
func sessionKey(r *http.Request) (domain.SessionKey, error) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return domain.SessionKey{}, domain.ErrUnauthorized
	}

	mode := domain.StudyMode(r.PathValue("mode"))
	if !mode.IsValid() {
		return domain.SessionKey{}, domain.NewValidationError("mode", "unknown study mode")
	}

	raw := r.PathValue("subjectID")
	subjectID := domain.DailyReviewSubject
	if raw != dailySubjectAlias {
		var err error
		subjectID, err = uuid.Parse(raw)
		if err != nil {
			return domain.SessionKey{}, domain.NewValidationError("subjectID", "must be a UUID or \"daily\"")
		}
	}

	if subjectID == domain.DailyReviewSubject && mode != domain.StudyModeReview {
		return domain.SessionKey{}, domain.NewValidationError("mode", "the daily session only supports review")
	}

	return domain.SessionKey{UserID: userID, SubjectID: subjectID, Mode: mode}, nil
}
