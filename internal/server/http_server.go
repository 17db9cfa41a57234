package server

import (
	"context"
	"net/http"
	"time"
)

const (
	opsReadHeaderTimeout = 5 * time.Second
	opsReadTimeout       = 10 * time.Second
	opsWriteTimeout      = 10 * time.Second
	opsIdleTimeout       = 60 * time.Second
)

// shutdownTimeout bounds graceful shutdown; tests shorten it.
var shutdownTimeout = 10 * time.Second

// httpServer is the part of *http.Server the ops endpoint relies on.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type opsServer struct {
	srv *http.Server
}

func newOpsServer(addr string, handler http.Handler) opsServer {
	return opsServer{srv: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: opsReadHeaderTimeout,
		ReadTimeout:       opsReadTimeout,
		WriteTimeout:      opsWriteTimeout,
		IdleTimeout:       opsIdleTimeout,
	}}
}

func (s opsServer) ListenAndServe() error { return s.srv.ListenAndServe() }

func (s opsServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

func (s opsServer) Addr() string { return s.srv.Addr }

func (s opsServer) Handler() http.Handler { return s.srv.Handler }
