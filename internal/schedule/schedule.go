// Package schedule derives the team roster and the per-team and per-day
// indices from a league's normalized games.
package schedule

import (
	"strings"

	"github.com/preston-bernstein/league-schedules/internal/domain"
	"github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
	"github.com/preston-bernstein/league-schedules/internal/timeutil"
)

// Bracket placeholders that stand in for teams not yet decided.
var placeholderAbbreviations = map[string]struct{}{
	"":    {},
	"f1":  {},
	"f2":  {},
	"qf1": {},
	"qf2": {},
	"qf3": {},
	"qf4": {},
}

// IsPlaceholder reports whether abbreviation marks an undecided slot.
func IsPlaceholder(abbreviation string) bool {
	_, ok := placeholderAbbreviations[strings.ToLower(abbreviation)]
	return ok
}

// BuildTeamRoster returns the distinct teams appearing in gs, in order of
// first appearance (home before away). A later occurrence of the same team
// replaces the stored value without moving it.
func BuildTeamRoster(gs []games.Game) []teams.Team {
	var roster []teams.Team
	position := make(map[string]int)
	for _, g := range gs {
		for _, t := range g.Teams() {
			if IsPlaceholder(t.Abbreviation) {
				continue
			}
			key := t.Key()
			if i, ok := position[key]; ok {
				roster[i] = t
				continue
			}
			position[key] = len(roster)
			roster = append(roster, t)
		}
	}
	return roster
}

// BuildTeamSchedules indexes games under each participant's lower-cased
// abbreviation. Placeholders are indexed like any other team.
func BuildTeamSchedules(gs []games.Game) *games.Index {
	idx := games.NewIndex()
	for _, g := range gs {
		for _, t := range g.Teams() {
			idx.Append(strings.ToLower(t.Abbreviation), g)
		}
	}
	return idx
}

// BuildDaySchedules indexes games under their US Eastern calendar day.
func BuildDaySchedules(gs []games.Game) *games.Index {
	idx := games.NewIndex()
	for _, g := range gs {
		idx.Append(timeutil.EasternDay(g.Date), g)
	}
	return idx
}

// Flatten concatenates an index's lists in key order.
func Flatten(idx *games.Index) []games.Game {
	var out []games.Game
	for _, key := range idx.Keys() {
		list, _ := idx.Get(key)
		out = append(out, list...)
	}
	return out
}

// Build assembles the league schedule from normalized games.
func Build(league string, gs []games.Game) domain.Schedule {
	if gs == nil {
		gs = []games.Game{}
	}
	roster := BuildTeamRoster(gs)
	if roster == nil {
		roster = []teams.Team{}
	}
	return domain.Schedule{
		League:        league,
		Games:         gs,
		Teams:         roster,
		TeamSchedules: BuildTeamSchedules(gs),
		GamesByDate:   BuildDaySchedules(gs),
	}
}
