package http

import nethttp "net/http"

// NewRouter registers the operational routes. metrics is mounted at /metrics when non-nil.
func NewRouter(handler *Handler, metrics nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/manifest", handler.Manifest)
	if metrics != nil {
		mux.Handle("/metrics", metrics)
	}
	return mux
}
