package handlers

import (
	"net/http"
	"time"
)

// HealthHandlers serves liveness and readiness probes.
type HealthHandlers struct {
	startedAt time.Time
	ready     func() bool
}

// NewHealthHandlers constructs health handlers; ready defaults to always true.
func NewHealthHandlers(opts ...HealthOption) *HealthHandlers {
	h := &HealthHandlers{
		startedAt: time.Now().UTC(),
		ready:     func() bool { return true },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthOption customises the health handlers.
type HealthOption func(*HealthHandlers)

// WithReadyCheck overrides the readiness probe.
func WithReadyCheck(check func() bool) HealthOption {
	return func(h *HealthHandlers) {
		if check != nil {
			h.ready = check
		}
	}
}

// Healthz responds with a simple status payload for liveness monitoring.
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(h.startedAt).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Readyz reports readiness; the catalog store flips this once the initial
// load settles.
func (h *HealthHandlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if !h.ready() {
		writeJSONResponse(w, http.StatusServiceUnavailable, map[string]any{"status": "loading"})
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{"status": "ready"})
}
