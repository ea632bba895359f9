package ctxutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	traceKey     ctxKey = "trace"
)

// WithUserID stores the user ID in the context and records it on the
// request trace, if any.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if tr := TraceFromCtx(ctx); tr != nil {
		tr.setUserID(id)
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Trace collects identifiers resolved deeper in the handler chain so that
// outer middleware (the access log) can report them after the call returns.
type Trace struct {
	mu     sync.Mutex
	userID uuid.UUID
}

// WithTrace attaches a fresh Trace to the context.
func WithTrace(ctx context.Context) (context.Context, *Trace) {
	tr := &Trace{}
	return context.WithValue(ctx, traceKey, tr), tr
}

// TraceFromCtx returns the request trace, or nil.
func TraceFromCtx(ctx context.Context) *Trace {
	tr, _ := ctx.Value(traceKey).(*Trace)
	return tr
}

// UserID returns the learner recorded on the trace, or uuid.Nil.
func (t *Trace) UserID() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.userID
}

func (t *Trace) setUserID(id uuid.UUID) {
	t.mu.Lock()
	t.userID = id
	t.mu.Unlock()
}
