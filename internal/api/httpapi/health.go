package httpapi

import (
	"context"
	"net/http"
	"time"

	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
)

const (
	healthPath    = "/healthz"
	healthTimeout = 2 * time.Second
)

// Health GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		writeJSON(w, r, http.StatusServiceUnavailable, v1.HealthResponse{Status: "DOWN", Message: err.Error()})
		return
	}

	writeJSON(w, r, http.StatusOK, v1.HealthResponse{Status: "UP"})
}
