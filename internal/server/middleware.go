package server

import (
	"context"
	"net/http"
	"time"

	"github.com/letterdrive/letterdrive/internal/instrumentation"
	"github.com/letterdrive/letterdrive/internal/logging"
)

// statusWriter captures the response status code for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with a request span, an access log line, and
// the HTTP request metrics. The route pattern is used as the metrics label
// so path parameters never show up in label values.
func (s *APIServer) instrument(pattern string, next http.Handler) http.Handler {
	route := routeLabel(pattern)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, span := instrumentation.StartRequestSpan(r.Context(), pattern)
		defer span.End()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		duration := time.Since(start)

		instrumentation.SetSpanHTTPStatus(span, sw.status)

		if s.metrics != nil {
			s.metrics.RecordHTTPRequest(ctx, r.Method, route, sw.status, duration)
		}

		s.logger.DebugContext(ctx, "request handled",
			logging.Route(route),
			"method", r.Method,
			"status", sw.status,
			logging.Duration(duration))
	})
}

// corsMiddleware allows the browser client at the configured origin to call
// the API, and short-circuits preflight requests.
func (s *APIServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.clientURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// recordOperation records a letter operation metric with its outcome.
func (s *APIServer) recordOperation(ctx context.Context, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	s.metrics.RecordLetterOperation(ctx, operation, status, time.Since(start))
}
