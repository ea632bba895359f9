package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/yoonbyeo/quizflow/internal/adapter/localcache"
	"github.com/yoonbyeo/quizflow/internal/adapter/postgres"
	"github.com/yoonbyeo/quizflow/internal/adapter/postgres/activity"
	"github.com/yoonbyeo/quizflow/internal/adapter/postgres/cardstat"
	"github.com/yoonbyeo/quizflow/internal/adapter/postgres/studysession"
	"github.com/yoonbyeo/quizflow/internal/adapter/postgres/subject"
	"github.com/yoonbyeo/quizflow/internal/auth"
	"github.com/yoonbyeo/quizflow/internal/config"
	"github.com/yoonbyeo/quizflow/internal/domain"
	"github.com/yoonbyeo/quizflow/internal/service/sessionsync"
	"github.com/yoonbyeo/quizflow/internal/service/study"
	"github.com/yoonbyeo/quizflow/internal/transport/middleware"
	"github.com/yoonbyeo/quizflow/internal/transport/rest"
)

// Run is the application entry point. It loads configuration from
// configPath and the environment, connects to
// PostgreSQL and the local session cache, and serves the HTTP API until ctx
// is cancelled. On shutdown pending session writes are flushed before the
// stores are closed.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Study.Timezone),
		slog.String("local_cache", cfg.LocalCache.Driver),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cache, err := localcache.Open(ctx, cfg.LocalCache)
	if err != nil {
		return fmt.Errorf("open local cache: %w", err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			logger.Warn("close local cache", slog.String("error", err.Error()))
		}
	}()

	clock := clockwork.NewRealClock()
	txm := postgres.NewTxManager(pool)

	statRepo := cardstat.New(pool)
	activityRepo := activity.New(pool)
	subjectRepo := subject.New(pool)
	sessionRepo := studysession.New(pool)

	sessions := sessionsync.NewManager(logger, clock, cache, sessionRepo, sessionsync.LastWriteWins{},
		sessionsync.Config{
			DebounceWindow: cfg.Sync.DebounceWindow,
			RemoteTimeout:  cfg.Sync.RemoteTimeout,
		},
	)

	studyService := study.NewService(
		logger, clock, statRepo, activityRepo, subjectRepo,
		NewStudySessions(sessions, sessionRepo), txm,
		domain.StudyConfig{
			Location:        cfg.Study.Location,
			StreakScanDays:  cfg.Study.StreakScanDays,
			MaxCalendarDays: cfg.Study.MaxCalendarDays,
		},
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, clock)
		defer limiter.Stop()
	}

	handler := NewHandler(logger, Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Component{Name: "database", Pinger: pool},
			rest.Component{Name: "session_cache", Pinger: cache},
		),
		Study:   rest.NewStudyHandler(studyService, logger),
		Session: rest.NewSessionHandler(sessions, logger),
	}, jwtManager, limiter, cfg.CORS)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server, sessions)
}

// serve runs srv until ctx is done, then shuts it down and flushes the
// session manager within the shutdown timeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig, sessions *sessionsync.Manager) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	logger.Info("shutting down")

	// ctx may already be cancelled
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}

	if err := sessions.Flush(shutdownCtx); err != nil {
		logger.Warn("session flush incomplete", slog.String("error", err.Error()))
	}
	sessions.Close()

	if serveErr != nil {
		return fmt.Errorf("http server: %w", serveErr)
	}
	logger.Info("stopped")
	return nil
}
