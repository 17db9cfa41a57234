package server

import (
	"log/slog"

	"github.com/preston-bernstein/league-schedules/internal/config"
	"github.com/preston-bernstein/league-schedules/internal/logging"
	"github.com/preston-bernstein/league-schedules/internal/metrics"
	"github.com/preston-bernstein/league-schedules/internal/providers"
	"github.com/preston-bernstein/league-schedules/internal/providers/mls"
	"github.com/preston-bernstein/league-schedules/internal/providers/nba"
)

// providerFactory builds one provider per enabled league over a shared fetcher.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

// build returns providers in configured league order. Unknown leagues are skipped.
func (f providerFactory) build(cfg config.Config) []providers.LeagueProvider {
	fetcher := providers.NewFetcher(providers.FetcherConfig{
		Timeout: cfg.HTTPTimeout,
		Logger:  f.logger,
		Metrics: f.metrics,
	})

	var out []providers.LeagueProvider
	seen := make(map[string]bool)
	for _, league := range cfg.Leagues {
		if seen[league] {
			continue
		}
		seen[league] = true

		switch league {
		case config.LeagueNBA:
			out = append(out, nba.NewClient(nba.Config{
				ScheduleBaseURL: cfg.NBA.ScheduleBaseURL,
				StandingsURL:    cfg.NBA.StandingsURL,
				RankingsURL:     cfg.NBA.RankingsURL,
				SeasonEndYear:   cfg.NBA.SeasonEndYear,
				Fetcher:         fetcher,
			}))
		case config.LeagueMLS:
			out = append(out, mls.NewClient(mls.Config{
				BaseURL:       cfg.MLS.BaseURL,
				RankingsURL:   cfg.MLS.RankingsURL,
				Season:        cfg.MLS.Season,
				CompetitionID: cfg.MLS.CompetitionID,
				WindowStart:   cfg.MLS.WindowStart,
				WindowEnd:     cfg.MLS.WindowEnd,
				Fetcher:       fetcher,
			}))
		default:
			logging.Warn(f.logger, "unknown league, skipping", slog.String(logging.FieldLeague, league))
		}
	}
	return out
}
