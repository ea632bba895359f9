// Package sessionsync keeps study session progress mirrored in two tiers:
// a local cache that is written synchronously on every change, and a durable
// store that receives debounced, best-effort writes.
package sessionsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/yoonbyeo/quizflow/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type localStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type remoteStore interface {
	Get(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error)
	Upsert(ctx context.Context, session *domain.StudySession) (bool, error)
	Delete(ctx context.Context, key domain.SessionKey) error
}

// Config holds the timing of durable writes.
type Config struct {
	DebounceWindow time.Duration
	RemoteTimeout  time.Duration
}

// inflightWrite is a durable write that has left the debounce window.
type inflightWrite struct {
	key  domain.SessionKey
	done chan struct{}
}

// pendingWrite is a durable write waiting for its debounce window to pass.
type pendingWrite struct {
	ctx     context.Context
	session *domain.StudySession
	timer   clockwork.Timer
	gen     uint64
}

// Manager owns the dual-write, debounce and fallback-read policy of study
// sessions. A session whose key has no learner (uuid.Nil) stays local.
type Manager struct {
	local  localStore
	remote remoteStore
	policy SyncPolicy
	clock  clockwork.Clock
	log    *slog.Logger
	cfg    Config

	mu       sync.Mutex
	gen      uint64
	pending  map[domain.SessionKey]*pendingWrite
	inflight map[uint64]inflightWrite
	closed   bool
}

// NewManager creates a Manager. A nil policy means LastWriteWins.
func NewManager(
	log *slog.Logger,
	clock clockwork.Clock,
	local localStore,
	remote remoteStore,
	policy SyncPolicy,
	cfg Config,
) *Manager {
	if policy == nil {
		policy = LastWriteWins{}
	}
	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = 5 * time.Second
	}
	return &Manager{
		local:    local,
		remote:   remote,
		policy:   policy,
		clock:    clock,
		log:      log.With("service", "sessionsync"),
		cfg:      cfg,
		pending:  make(map[domain.SessionKey]*pendingWrite),
		inflight: make(map[uint64]inflightWrite),
	}
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

// Load returns the freshest known copy of the session. The local copy is
// read first; when a learner is known the durable copy is fetched and the
// policy picks between them. A durable failure falls back to the local copy.
// Returns domain.ErrNotFound when neither tier has the session.
func (m *Manager) Load(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error) {
	if !key.Mode.IsValid() {
		return nil, domain.NewValidationError("mode", "unknown study mode")
	}

	local := m.readLocal(ctx, key)
	if key.UserID == uuid.Nil {
		return orNotFound(local)
	}

	durable, err := m.readRemote(ctx, key)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		m.log.WarnContext(ctx, "durable session read failed, serving local copy",
			slog.String("mode", key.Mode.String()),
			slog.String("subject_id", key.SubjectID.String()),
			slog.String("error", err.Error()),
		)
		return orNotFound(local)
	}

	winner, repush := m.policy.Resolve(local, durable)
	switch {
	case winner == nil:
	case repush:
		m.schedule(ctx, winner, false)
	case winner != local:
		m.dropPending(key)
		_ = m.writeLocal(ctx, winner)
	}

	return orNotFound(winner)
}

func orNotFound(s *domain.StudySession) (*domain.StudySession, error) {
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

// Save records new progress. The local copy is written before Save returns;
// the durable write is deferred by the debounce window and replaced by any
// later Save of the same session. A save that would move a completed session
// back to in-progress fails with domain.ErrSessionCompleted.
func (m *Manager) Save(
	ctx context.Context,
	key domain.SessionKey,
	progress domain.SessionProgress,
	completed bool,
) (*domain.StudySession, error) {
	if !key.Mode.IsValid() {
		return nil, domain.NewValidationError("mode", "unknown study mode")
	}
	if key.Mode == domain.StudyModeReview && progress.Date == "" {
		return nil, domain.NewValidationError("progress.date", "required for review sessions")
	}

	next := &domain.StudySession{
		UserID:    key.UserID,
		SubjectID: key.SubjectID,
		Mode:      key.Mode,
		Progress:  progress,
		Completed: completed,
		UpdatedAt: m.clock.Now().UTC().Truncate(time.Microsecond),
	}

	current := m.latestLocal(ctx, key)
	if current == nil && key.UserID != uuid.Nil {
		// an evicted or never-cached session may still be completed durably
		durable, err := m.readRemote(ctx, key)
		if err != nil {
			m.log.WarnContext(ctx, "durable session read failed, saving without it",
				slog.String("mode", key.Mode.String()),
				slog.String("subject_id", key.SubjectID.String()),
				slog.String("error", err.Error()),
			)
		}
		current = durable
	}
	if current != nil {
		if !current.AcceptsUpdate(next) {
			return nil, domain.ErrSessionCompleted
		}
		// updated_at must keep increasing for last-writer-wins
		if !next.UpdatedAt.After(current.UpdatedAt) {
			next.UpdatedAt = current.UpdatedAt.Add(time.Microsecond)
		}
	}

	localErr := m.writeLocal(ctx, next)
	if key.UserID == uuid.Nil {
		if localErr != nil {
			return nil, localErr
		}
		return next, nil
	}

	m.schedule(ctx, next, true)
	return next, nil
}

// ---------------------------------------------------------------------------
// Clear
// ---------------------------------------------------------------------------

// Clear removes both copies of the session and drops its pending write.
// This is the only way back from a completed session. Like durable writes,
// a failed durable delete is logged and not returned.
func (m *Manager) Clear(ctx context.Context, key domain.SessionKey) error {
	if !key.Mode.IsValid() {
		return domain.NewValidationError("mode", "unknown study mode")
	}

	// an in-flight write finishing after the delete would resurrect the session
	for _, done := range m.dropPending(key) {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := m.local.Delete(ctx, localKey(key)); err != nil {
		m.log.WarnContext(ctx, "local session delete failed",
			slog.String("mode", key.Mode.String()),
			slog.String("error", err.Error()),
		)
	}

	if key.UserID == uuid.Nil {
		return nil
	}

	rctx, cancel := context.WithTimeout(ctx, m.cfg.RemoteTimeout)
	defer cancel()
	if err := m.remote.Delete(rctx, key); err != nil {
		m.log.WarnContext(ctx, "durable session delete failed",
			slog.String("user_id", key.UserID.String()),
			slog.String("subject_id", key.SubjectID.String()),
			slog.String("mode", key.Mode.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	m.log.InfoContext(ctx, "session cleared",
		slog.String("user_id", key.UserID.String()),
		slog.String("subject_id", key.SubjectID.String()),
		slog.String("mode", key.Mode.String()),
	)
	return nil
}

// ---------------------------------------------------------------------------
// Flush / Close
// ---------------------------------------------------------------------------

// Flush sends every pending write now and waits for in-flight writes.
// It returns the joined durable errors; they are otherwise only logged.
func (m *Manager) Flush(ctx context.Context) error {
	m.mu.Lock()
	writes := make([]*pendingWrite, 0, len(m.pending))
	for key, p := range m.pending {
		p.timer.Stop()
		delete(m.pending, key)
		writes = append(writes, p)
	}
	waiting := make([]chan struct{}, 0, len(m.inflight))
	for _, w := range m.inflight {
		waiting = append(waiting, w.done)
	}
	m.mu.Unlock()

	var (
		errsMu sync.Mutex
		errs   []error
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range writes {
		g.Go(func() error {
			if err := m.push(gctx, p.session); err != nil {
				errsMu.Lock()
				errs = append(errs, err)
				errsMu.Unlock()
			}
			return nil
		})
	}
	for _, done := range waiting {
		g.Go(func() error {
			select {
			case <-done:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// Close cancels every pending write without sending it. Later saves stay
// local. Call Flush first to keep pending progress.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, p := range m.pending {
		p.timer.Stop()
		delete(m.pending, key)
	}
	m.closed = true
}

// ---------------------------------------------------------------------------
// Debounce
// ---------------------------------------------------------------------------

// schedule arms the debounce timer for s. When replace is false an already
// pending write for the same key is kept, since it is at least as new.
func (m *Manager) schedule(ctx context.Context, s *domain.StudySession, replace bool) {
	key := s.Key()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		m.log.DebugContext(ctx, "manager closed, durable write skipped", slog.String("mode", key.Mode.String()))
		return
	}

	p, ok := m.pending[key]
	if ok && !replace {
		return
	}
	if ok {
		p.timer.Stop()
	} else {
		p = &pendingWrite{}
		m.pending[key] = p
	}

	m.gen++
	gen := m.gen
	p.ctx = context.WithoutCancel(ctx)
	p.session = s
	p.gen = gen
	p.timer = m.clock.AfterFunc(m.cfg.DebounceWindow, func() { m.fire(key, gen) })
}

// fire sends the pending write of key if it is still generation gen.
func (m *Manager) fire(key domain.SessionKey, gen uint64) {
	m.mu.Lock()
	p, ok := m.pending[key]
	if !ok || p.gen != gen {
		m.mu.Unlock()
		return
	}
	delete(m.pending, key)
	done := make(chan struct{})
	m.inflight[gen] = inflightWrite{key: key, done: done}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.inflight, gen)
		m.mu.Unlock()
		close(done)
	}()

	_ = m.push(p.ctx, p.session)
}

// dropPending cancels the pending write of key and returns the completion
// channels of its in-flight writes.
func (m *Manager) dropPending(key domain.SessionKey) []chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.pending[key]; ok {
		p.timer.Stop()
		delete(m.pending, key)
	}

	var waiting []chan struct{}
	for _, w := range m.inflight {
		if w.key == key {
			waiting = append(waiting, w.done)
		}
	}
	return waiting
}

// push writes s to the durable store. Failures are logged and returned.
func (m *Manager) push(ctx context.Context, s *domain.StudySession) error {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.RemoteTimeout)
	defer cancel()

	applied, err := m.remote.Upsert(ctx, s)
	if err != nil {
		m.log.WarnContext(ctx, "durable session write failed",
			slog.String("user_id", s.UserID.String()),
			slog.String("subject_id", s.SubjectID.String()),
			slog.String("mode", s.Mode.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("push session %s: %w", s.Mode, err)
	}
	if !applied {
		m.log.DebugContext(ctx, "durable session is newer, write ignored",
			slog.String("subject_id", s.SubjectID.String()),
			slog.String("mode", s.Mode.String()),
		)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Local tier helpers
// ---------------------------------------------------------------------------

// latestLocal returns the pending write if any, otherwise the cached copy.
func (m *Manager) latestLocal(ctx context.Context, key domain.SessionKey) *domain.StudySession {
	m.mu.Lock()
	p, ok := m.pending[key]
	m.mu.Unlock()
	if ok {
		return p.session
	}
	return m.readLocal(ctx, key)
}

// readLocal returns the cached copy or nil. A corrupt entry is removed.
func (m *Manager) readLocal(ctx context.Context, key domain.SessionKey) *domain.StudySession {
	data, ok, err := m.local.Get(ctx, localKey(key))
	if err != nil {
		m.log.WarnContext(ctx, "local session read failed",
			slog.String("mode", key.Mode.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if !ok {
		return nil
	}

	s, err := decodeEntry(key, data)
	if err != nil {
		m.log.WarnContext(ctx, "discarding corrupt local session",
			slog.String("mode", key.Mode.String()),
			slog.String("error", err.Error()),
		)
		_ = m.local.Delete(ctx, localKey(key))
		return nil
	}
	return s
}

func (m *Manager) writeLocal(ctx context.Context, s *domain.StudySession) error {
	data, err := encodeEntry(s)
	if err == nil {
		err = m.local.Set(ctx, localKey(s.Key()), data)
	}
	if err != nil {
		m.log.WarnContext(ctx, "local session write failed",
			slog.String("mode", s.Mode.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("write local session: %w", err)
	}
	return nil
}

func (m *Manager) readRemote(ctx context.Context, key domain.SessionKey) (*domain.StudySession, error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.RemoteTimeout)
	defer cancel()

	s, err := m.remote.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
