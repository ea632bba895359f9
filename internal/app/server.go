package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/yoonbyeo/quizflow/internal/config"
	"github.com/yoonbyeo/quizflow/internal/transport/middleware"
	"github.com/yoonbyeo/quizflow/internal/transport/rest"
)

// APIPrefix is the path prefix of every authenticated endpoint.
const APIPrefix = "/api/v1"

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers groups the endpoint handlers served by the HTTP server.
type Handlers struct {
	Health  *rest.HealthHandler
	Study   *rest.StudyHandler
	Session *rest.SessionHandler
}

// NewHandler builds the root HTTP handler. Probes are public; everything
// under APIPrefix requires a bearer token and is rate limited per caller
// unless limiter is nil.
func NewHandler(
	logger *slog.Logger,
	h Handlers,
	tokens tokenValidator,
	limiter *middleware.RateLimiter,
	cors config.CORSConfig,
) http.Handler {
	api := http.NewServeMux()
	h.Study.Register(api, APIPrefix)
	h.Session.Register(api, APIPrefix)

	protected := middleware.Chain(
		middleware.Auth(tokens, logger),
		limiter.Limit(),
	)(api)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle(APIPrefix+"/", protected)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cors),
	)(mux)
}
