package games

import (
	"time"

	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
)

// GameStatus is the normalized lifecycle state of a game.
type GameStatus string

const (
	StatusTBD      GameStatus = "tbd"
	StatusFuture   GameStatus = "future"
	StatusActive   GameStatus = "active"
	StatusComplete GameStatus = "complete"
)

// Location is where a game is played.
type Location struct {
	Arena string `json:"arena"`
	City  string `json:"city"`
	State string `json:"state"`
}

// Game is one scheduled or completed match.
type Game struct {
	Code                   string     `json:"code"`
	Description            string     `json:"description"`
	CompetitionDescription string     `json:"competitionDescription"`
	League                 string     `json:"league"`
	Status                 GameStatus `json:"status"`
	Home                   teams.Team `json:"home"`
	Away                   teams.Team `json:"away"`
	Date                   time.Time  `json:"date"`
	Location               Location   `json:"location"`
	NationalNetwork        string     `json:"nationalNetwork,omitempty"`
	TopTenMatchup          bool       `json:"topTenMatchup"`
}

// Teams returns the home and away teams, home first.
func (g Game) Teams() [2]teams.Team {
	return [2]teams.Team{g.Home, g.Away}
}
