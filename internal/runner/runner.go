package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/league-schedules/internal/assembler"
	"github.com/preston-bernstein/league-schedules/internal/domain"
	"github.com/preston-bernstein/league-schedules/internal/logging"
	"github.com/preston-bernstein/league-schedules/internal/metrics"
	"github.com/preston-bernstein/league-schedules/internal/providers"
	"github.com/preston-bernstein/league-schedules/internal/snapshots"
)

const defaultInterval = time.Hour

// ScheduleWriter persists one league's schedule.
type ScheduleWriter interface {
	WriteSchedule(meta snapshots.BuildMeta, sched domain.Schedule) error
}

// Config wires a Runner.
type Config struct {
	Providers []providers.LeagueProvider
	Writer    ScheduleWriter
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	// Interval between rebuilds when started as a loop.
	Interval time.Duration
}

// Runner builds every configured league, either once or on an interval.
type Runner struct {
	providers []providers.LeagueProvider
	assembler *assembler.Assembler
	writer    ScheduleWriter
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time
	newRunID  func() string

	ticker   *time.Ticker
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the build loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastRunID           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether a build has succeeded and the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Runner with sane defaults.
func New(cfg Config) *Runner {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{
		providers: cfg.Providers,
		assembler: assembler.New(cfg.Logger, cfg.Metrics),
		writer:    cfg.Writer,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		interval:  interval,
		now:       time.Now,
		newRunID:  uuid.NewString,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

// RunOnce assembles and writes every league concurrently. Leagues succeed or
// fail independently; the returned error joins every league failure.
func (r *Runner) RunOnce(ctx context.Context) error {
	start := r.now()
	runID := r.newRunID()
	r.recordAttempt(start, runID)

	logger := r.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, runID))
	}
	ctx = logging.WithLogger(ctx, logger)
	meta := snapshots.BuildMeta{BuildDate: start.UTC(), RunID: runID}

	errs := make([]error, len(r.providers))
	var wg sync.WaitGroup
	for i, provider := range r.providers {
		wg.Add(1)
		go func(i int, provider providers.LeagueProvider) {
			defer wg.Done()
			errs[i] = r.buildLeague(ctx, meta, provider)
		}(i, provider)
	}
	wg.Wait()

	err := errors.Join(errs...)
	elapsed := time.Since(start)
	r.metrics.RecordRunCycle(elapsed, err)
	if err != nil {
		logging.Error(logger, "build run failed", err,
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		r.recordFailure(err, start)
		return err
	}

	r.recordSuccess(start)
	logging.Info(logger, "build run complete",
		slog.Int(logging.FieldCount, len(r.providers)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return nil
}

func (r *Runner) buildLeague(ctx context.Context, meta snapshots.BuildMeta, provider providers.LeagueProvider) error {
	sched, err := r.assembler.Assemble(ctx, provider)
	if err != nil {
		return err
	}
	if r.writer == nil {
		return nil
	}
	if err := r.writer.WriteSchedule(meta, sched); err != nil {
		logging.Error(logging.FromContext(ctx, r.logger), "schedule write failed", err,
			slog.String(logging.FieldLeague, sched.League),
		)
		return fmt.Errorf("league %s: %w", sched.League, err)
	}
	logging.Debug(logging.FromContext(ctx, r.logger), "schedule written",
		slog.String(logging.FieldLeague, sched.League),
		slog.Int(logging.FieldCount, len(sched.Games)),
	)
	return nil
}

// Start rebuilds immediately and then on every interval until the context
// is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		defer close(r.stopped)
		logging.Info(r.logger, "build loop started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		_ = r.RunOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "build loop stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "build loop stopped")
				return
			case <-r.ticker.C:
				_ = r.RunOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight build to finish or ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		close(r.done)
	})

	r.startMu.Lock()
	started := r.started
	r.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-r.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Runner) recordAttempt(at time.Time, runID string) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
	r.status.LastRunID = runID
}

func (r *Runner) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Runner) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the runner's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

// Leagues lists the configured league names in build order.
func (r *Runner) Leagues() []string {
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.League())
	}
	return names
}
