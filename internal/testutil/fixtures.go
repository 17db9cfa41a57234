package testutil

import (
	"time"

	"github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
)

// SampleTeam returns a team fixture for the given sport and abbreviation.
func SampleTeam(sport, abbreviation string) teams.Team {
	return teams.Team{
		Abbreviation: abbreviation,
		Nickname:     abbreviation + " Nickname",
		City:         abbreviation + " City",
		Sport:        sport,
	}
}

// SampleGame returns a future basketball game between home and away at date.
func SampleGame(code, home, away string, date time.Time) games.Game {
	return games.Game{
		Code:                   code,
		Description:            away + " @ " + home,
		CompetitionDescription: "Regular season",
		League:                 "NBA",
		Status:                 games.StatusFuture,
		Home:                   SampleTeam("basketball", home),
		Away:                   SampleTeam("basketball", away),
		Date:                   date,
		Location:               games.Location{Arena: "Arena", City: "City", State: "ST"},
	}
}
