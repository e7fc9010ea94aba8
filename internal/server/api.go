package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/letterdrive/letterdrive/internal/config"
	"github.com/letterdrive/letterdrive/internal/google"
	"github.com/letterdrive/letterdrive/internal/instrumentation"
	"github.com/letterdrive/letterdrive/internal/letters"
	"github.com/letterdrive/letterdrive/internal/logging"
)

const (
	// DefaultReadHeaderTimeout bounds how long reading request headers may take.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultIdleTimeout is the keep-alive idle timeout for the API server.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful server shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

// APIServer is the HTTP JSON surface of letterdrive. It exposes the OAuth
// endpoints and the letter endpoints, plus health probes for Kubernetes.
type APIServer struct {
	addr       string
	clientURL  string
	folderName string

	oauth   *google.OAuth
	factory letters.ClientFactory
	logger  *slog.Logger
	metrics *instrumentation.Metrics
	health  *HealthChecker

	httpServer *http.Server
}

// NewAPIServer creates an API server from the given configuration and
// collaborators. metrics may be nil.
func NewAPIServer(cfg config.Config, oauth *google.OAuth, factory letters.ClientFactory, logger *slog.Logger, metrics *instrumentation.Metrics) *APIServer {
	if logger == nil {
		logger = slog.Default()
	}

	return &APIServer{
		addr:       cfg.Addr,
		clientURL:  cfg.ClientURL,
		folderName: cfg.FolderName,
		oauth:      oauth,
		factory:    factory,
		logger:     logger.With(logging.Service("api")),
		metrics:    metrics,
		health:     NewHealthChecker(),
	}
}

// Handler builds the full request handler: routed endpoints wrapped in the
// instrumentation and CORS middleware.
func (s *APIServer) Handler() http.Handler {
	mux := http.NewServeMux()

	s.route(mux, "GET /api/auth/google/url", s.handleAuthURL)
	s.route(mux, "GET /api/auth/google/callback", s.handleAuthCallback)
	s.route(mux, "POST /api/letters", s.handleCreateLetter)
	s.route(mux, "GET /api/letters", s.handleListLetters)
	s.route(mux, "GET /api/letters/{id}", s.handleReadLetter)

	s.health.RegisterHealthEndpoints(mux)

	return s.corsMiddleware(mux)
}

// route registers a pattern with the instrumentation middleware applied.
func (s *APIServer) route(mux *http.ServeMux, pattern string, handler http.HandlerFunc) {
	mux.Handle(pattern, s.instrument(pattern, handler))
}

// Health returns the health checker so process wiring can flip readiness.
func (s *APIServer) Health() *HealthChecker {
	return s.health
}

// Addr returns the configured listen address.
func (s *APIServer) Addr() string {
	return s.addr
}

// Start starts the API server in a blocking manner.
// Call this in a goroutine if you need non-blocking operation.
func (s *APIServer) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		IdleTimeout:       DefaultIdleTimeout,
	}

	s.health.SetReady(true)

	s.logger.Info("starting api server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the API server. Readiness is dropped first
// so load balancers stop routing new traffic while in-flight requests drain.
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.health.SetShuttingDown()

	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("shutting down api server")
	return s.httpServer.Shutdown(ctx)
}

// letterService builds a per-request letter service from the caller's token.
// The token itself never reaches the logs, only its length.
func (s *APIServer) letterService(ctx context.Context, accessToken string) (*letters.Service, error) {
	s.logger.DebugContext(ctx, "building letter service",
		"access_token", logging.SanitizeToken(accessToken))

	driveAPI, docsAPI, err := s.factory(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return letters.NewService(driveAPI, docsAPI, s.folderName, s.logger, s.metrics), nil
}

// routeLabel strips the method from a ServeMux pattern, leaving the path
// pattern used as the low-cardinality metrics label.
func routeLabel(pattern string) string {
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}
