package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/league-schedules/internal/config"
	opshttp "github.com/preston-bernstein/league-schedules/internal/http"
	"github.com/preston-bernstein/league-schedules/internal/logging"
	"github.com/preston-bernstein/league-schedules/internal/metrics"
	"github.com/preston-bernstein/league-schedules/internal/runner"
	"github.com/preston-bernstein/league-schedules/internal/snapshots"
)

var metricsSetup = metrics.Setup

var errNoLeagues = errors.New("no leagues configured")

// Server drives schedule builds, either once or on an interval with an ops HTTP server alongside.
type Server struct {
	cfg         config.Config
	logger      *slog.Logger
	httpServer  httpServer
	builder     Builder
	metricsStop func(context.Context) error
}

// New wires providers, the snapshot writer and the build runner from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsHandler, metricsShutdown := buildMetrics(cfg, logger)

	provs := newProviderFactory(logger, recorder).build(cfg)
	writer := snapshots.NewWriter(cfg.OutputDir)
	logging.Info(logger, "schedule output configured", slog.String(logging.FieldPath, writer.BasePath()))
	builder := runner.New(runner.Config{
		Providers: provs,
		Writer:    writer,
		Logger:    logger,
		Metrics:   recorder,
		Interval:  cfg.BuildInterval,
	})

	var httpSrv httpServer
	if cfg.BuildInterval > 0 && cfg.Metrics.Port != "" {
		httpSrv = buildHTTPServer(cfg, logger, builder, metricsHandler)
	}

	srv := newServerWithDeps(cfg, logger, builder, httpSrv)
	srv.metricsStop = metricsShutdown
	return srv
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, builder Builder, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		builder:    builder,
	}
}

func buildHTTPServer(cfg config.Config, logger *slog.Logger, builder Builder, metricsHandler http.Handler) httpServer {
	outputDir := cfg.OutputDir
	handler := opshttp.NewHandler(logger, builder.Status, func() (snapshots.Manifest, error) {
		return snapshots.ReadManifest(outputDir)
	})
	router := opshttp.NewRouter(handler, metricsHandler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	return newOpsServer(":"+cfg.Metrics.Port, opshttp.LoggingMiddleware(logger, router))
}

// Run builds every league once when no interval is configured and returns the
// joined league errors. Otherwise it serves the ops endpoints and rebuilds on
// the interval until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if len(s.builder.Leagues()) == 0 {
		return errNoLeagues
	}

	if s.cfg.BuildInterval <= 0 {
		err := s.builder.RunOnce(ctx)
		s.stopMetrics()
		if err == nil {
			s.logManifest()
		}
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	if s.httpServer != nil {
		launchServer("ops", s.httpServer, s.logger, func(err error) {
			serveErr <- err
			cancel()
		})
	}
	s.builder.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")
	s.gracefulShutdown()

	select {
	case err := <-serveErr:
		return err
	default:
		return nil
	}
}

func (s *Server) logManifest() {
	m, err := snapshots.ReadManifest(s.cfg.OutputDir)
	if err != nil {
		logging.Warn(s.logger, "manifest unreadable after build", logging.FieldError, err)
		return
	}
	logging.Info(s.logger, "schedules written",
		slog.String(logging.FieldPath, snapshots.ManifestPath(s.cfg.OutputDir)),
		slog.Any("leagues", m.LeagueNames()),
	)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.builder.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop build loop", err)
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "graceful shutdown failed", err)
		}
	}

	s.stopMetrics()
	logging.Info(s.logger, "shutdown complete")
}

func (s *Server) stopMetrics() {
	if s.metricsStop == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.metricsStop(shutdownCtx); err != nil {
		logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	telemetry := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		Textfile:     cfg.Metrics.Textfile,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), telemetry)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the ops HTTP handler, or nil in one-shot mode.
func (s *Server) Handler() http.Handler {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler()
}
