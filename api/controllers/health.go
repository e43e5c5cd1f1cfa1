package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/mrokonuzzaman040/techpinik-sub000/api/responses"
)

// Pinger is a dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Liveness reports that the process is up.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, http.StatusOK, map[string]string{"status": "alive"})
	}
}

// Readiness checks every registered dependency and reports per-dependency
// status. Any failing check yields 503.
func Readiness(deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ready"
		checks := make(map[string]string, len(deps))
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = "unavailable"
				status = http.StatusServiceUnavailable
				overall = "degraded"
				continue
			}
			checks[name] = "ok"
		}
		responses.WriteSuccess(w, status, map[string]any{
			"status": overall,
			"checks": checks,
		})
	}
}
