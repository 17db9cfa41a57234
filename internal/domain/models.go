package domain

import (
	"github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
)

// Schedule is the output aggregate for one league.
type Schedule struct {
	League        string       `json:"league"`
	Games         []games.Game `json:"games"`
	Teams         []teams.Team `json:"teams"`
	TeamSchedules *games.Index `json:"teamSchedules"`
	GamesByDate   *games.Index `json:"gamesByDate"`
}
