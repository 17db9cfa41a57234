package assembler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/league-schedules/internal/domain"
	"github.com/preston-bernstein/league-schedules/internal/logging"
	"github.com/preston-bernstein/league-schedules/internal/metrics"
	"github.com/preston-bernstein/league-schedules/internal/providers"
	"github.com/preston-bernstein/league-schedules/internal/schedule"
)

// Assembler turns one league provider's games into a complete schedule.
type Assembler struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs an Assembler. Both arguments may be nil.
func New(logger *slog.Logger, recorder *metrics.Recorder) *Assembler {
	return &Assembler{logger: logger, metrics: recorder}
}

// Assemble fetches and normalizes the provider's games, then derives the roster
// and indices. There is no partial result: any source failure fails the league.
func (a *Assembler) Assemble(ctx context.Context, provider providers.LeagueProvider) (domain.Schedule, error) {
	league := provider.League()
	logger := logging.FromContext(ctx, a.logger)
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldLeague, league))
	}
	ctx = logging.WithLogger(ctx, logger)

	start := time.Now()
	gs, err := provider.FetchGames(ctx)
	if err != nil {
		elapsed := time.Since(start)
		a.metrics.RecordLeagueBuild(league, elapsed, 0, err)
		logging.Error(logger, "league assembly failed", err,
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return domain.Schedule{}, fmt.Errorf("league %s: %w", league, err)
	}

	sched := schedule.Build(league, gs)
	elapsed := time.Since(start)
	a.metrics.RecordLeagueBuild(league, elapsed, len(sched.Games), nil)
	logging.Info(logger, "league assembled",
		slog.Int(logging.FieldCount, len(sched.Games)),
		slog.Int("teams", len(sched.Teams)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return sched, nil
}
