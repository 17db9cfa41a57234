package providers

import (
	"context"

	"github.com/preston-bernstein/league-schedules/internal/domain/games"
)

// LeagueProvider fetches one league's upstream feeds and normalizes them into games.
// Implementations fetch their sources concurrently and fail as a whole when any source fails.
type LeagueProvider interface {
	League() string
	FetchGames(ctx context.Context) ([]games.Game, error)
}
