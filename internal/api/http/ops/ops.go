// Package ops serves the operational HTTP endpoints: Prometheus metrics and health.
package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oshokin/panic-button/internal/logger"
)

// DefaultCheckTimeout bounds every health check.
const DefaultCheckTimeout = 2 * time.Second

// Pinger is anything that can report whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// PingContext implements Pinger.
func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// Check is one named health check.
type Check struct {
	Name   string
	Pinger Pinger
}

// healthResponse is the body of /healthz.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewRouter mounts /metrics and /healthz.
func NewRouter(metricsHandler http.Handler, checks ...Check) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Method(http.MethodGet, "/metrics", metricsHandler)
	router.Get("/healthz", healthHandler(checks))

	return router
}

func healthHandler(checks []Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), DefaultCheckTimeout)
		defer cancel()

		response := healthResponse{
			Status: "ok",
			Checks: make(map[string]string, len(checks)),
		}
		code := http.StatusOK

		for _, check := range checks {
			if err := check.Pinger.PingContext(ctx); err != nil {
				logger.WarnKV(ctx, "Health check failed", "check", check.Name, "error", err)

				response.Checks[check.Name] = err.Error()
				response.Status = "unavailable"
				code = http.StatusServiceUnavailable

				continue
			}

			response.Checks[check.Name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.ErrorKV(ctx, "Failed to write health response", "error", err)
		}
	}
}
