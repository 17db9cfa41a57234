package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/league-schedules/internal/logging"
	"github.com/preston-bernstein/league-schedules/internal/runner"
	"github.com/preston-bernstein/league-schedules/internal/snapshots"
)

// Handler serves the operational endpoints of a long-running build loop.
type Handler struct {
	logger     *slog.Logger
	statusFn   func() runner.Status
	manifestFn func() (snapshots.Manifest, error)
}

// NewHandler constructs a Handler. Either function may be nil.
func NewHandler(logger *slog.Logger, statusFn func() runner.Status, manifestFn func() (snapshots.Manifest, error)) *Handler {
	return &Handler{
		logger:     logger,
		statusFn:   statusFn,
		manifestFn: manifestFn,
	}
}

// Health reports process liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the last builds succeeded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready", "runId": status.LastRunID}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Manifest returns the output manifest of the most recent builds.
func (h *Handler) Manifest(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.manifestFn == nil {
		writeError(w, r, nethttp.StatusNotFound, "no manifest", h.logger)
		return
	}
	m, err := h.manifestFn()
	if err != nil {
		logging.Warn(logging.FromContext(r.Context(), h.logger), "manifest unavailable", logging.FieldError, err)
		writeError(w, r, nethttp.StatusNotFound, "no manifest", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, m, h.logger)
}
