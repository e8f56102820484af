package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pathwise-backend/internal/config"
	"github.com/heartmarshall/pathwise-backend/internal/service/suggestion"
	"github.com/heartmarshall/pathwise-backend/internal/transport/middleware"
	"github.com/heartmarshall/pathwise-backend/internal/transport/rest"
)

// idleCleanupInterval is how often the per-IP throttle drops idle clients.
const idleCleanupInterval = time.Minute

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type breakerState interface {
	State() string
}

// HTTPDeps holds everything NewHTTPHandler wires together.
type HTTPDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	Service   *suggestion.Service
	Store     pinger
	Gateway   breakerState
	Validator tokenValidator
	Limiter   *middleware.RateLimiter // nil disables throttling
	Version   string
}

// NewHTTPHandler builds the router and wraps it in the middleware chain:
// RequestID, Logger, Recovery, CORS, per-IP throttle, Auth.
func NewHTTPHandler(deps HTTPDeps) http.Handler {
	mux := http.NewServeMux()

	health := rest.NewHealthHandler(deps.Store, deps.Gateway, deps.Version)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	rest.NewSuggestionHandler(deps.Service, deps.Logger).Register(mux)

	var throttle middleware.Middleware
	if deps.Limiter != nil {
		throttle = deps.Limiter.Limit()
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
		throttle,
		middleware.Auth(deps.Validator),
	)(mux)
}
