package mls

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
	"github.com/preston-bernstein/league-schedules/internal/providers"
	"github.com/preston-bernstein/league-schedules/internal/resolver"
	"github.com/preston-bernstein/league-schedules/internal/timeutil"
)

// Normalize maps matches to games in feed order, dropping friendlies.
// Rankings are matched by abbreviation, as are standings records.
func Normalize(matches []MatchResponse, rankings []string, standings []StandingResponse) ([]games.Game, error) {
	table := mapStandings(standings)

	out := make([]games.Game, 0, len(matches))
	for _, m := range matches {
		if competitionDescription(m.Competition) == friendly {
			continue
		}
		game, err := mapGame(m, rankings, table)
		if err != nil {
			return nil, err
		}
		out = append(out, game)
	}
	return out, nil
}

func mapGame(m MatchResponse, rankings []string, standings resolver.Standings) (games.Game, error) {
	status := games.StatusFuture
	if m.IsTimeTBD {
		status = games.StatusTBD
	}
	date, err := mapDate(m.MatchDate, status)
	if err != nil {
		return games.Game{}, &providers.SourceParseError{
			Source: sourceSchedule,
			Err:    fmt.Errorf("match %s: %w", m.Slug, err),
		}
	}

	return games.Game{
		Code:                   m.Slug,
		Description:            m.LeagueMatchTitle,
		CompetitionDescription: competitionDescription(m.Competition),
		League:                 competitionLabel(m.Competition),
		Status:                 status,
		Home:                   mapTeam(m.Home, rankings, standings),
		Away:                   mapTeam(m.Away, rankings, standings),
		Date:                   date,
		Location:               mapLocation(m.Venue),
		NationalNetwork:        mapNetwork(m.Broadcasters),
	}, nil
}

func mapTeam(c ClubResponse, rankings []string, standings resolver.Standings) teams.Team {
	rank, _ := resolver.ResolveRank(c.Abbreviation, rankings)
	return teams.Team{
		Abbreviation: c.Abbreviation,
		Nickname:     c.ShortName,
		City:         c.ShortName,
		PowerRank:    rank,
		Sport:        sport,
		Record:       resolver.RecordPtr(c.Abbreviation, standings),
	}
}

// mapDate parses the RFC 3339 kickoff. Matches without a confirmed time are
// placed at the evening of their Eastern calendar day.
func mapDate(raw string, status games.GameStatus) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	if status == games.StatusTBD {
		return timeutil.EveningOf(timeutil.EasternDay(t))
	}
	return t.UTC(), nil
}

func competitionLabel(c CompetitionResponse) string {
	switch {
	case c.OptaID == worldCupQualifierOptaID:
		return "WC Qualifier"
	case c.Slug == regularSeasonSlug:
		return "MLS regular season"
	default:
		return c.ShortName
	}
}

func competitionDescription(c CompetitionResponse) string {
	if c.MatchType == regularMatchType {
		return c.Name
	}
	return c.ShortName
}

func mapLocation(v VenueResponse) games.Location {
	city, state, _ := strings.Cut(v.City, ",")
	return games.Location{
		Arena: v.Name,
		City:  strings.TrimSpace(city),
		State: strings.TrimSpace(state),
	}
}

// mapNetwork returns the first English-language US national television broadcaster.
func mapNetwork(broadcasters []BroadcasterResponse) string {
	for _, b := range broadcasters {
		if b.TypeLabel != nationalTVLabel || b.Type != usTVType {
			continue
		}
		if _, excluded := excludedNetworks[b.Name]; excluded {
			continue
		}
		return b.Name
	}
	return ""
}

// mapStandings groups entries into one partition per group, in feed order.
func mapStandings(rows []StandingResponse) resolver.Standings {
	var table resolver.Standings
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.GroupID]
		if !ok {
			i = len(table)
			index[row.GroupID] = i
			table = append(table, resolver.Partition{Name: row.GroupID})
		}
		ties := row.Statistics.TotalDraws
		table[i].Entries = append(table[i].Entries, resolver.Entry{
			Abbreviation: row.Club.Abbreviation,
			Record: teams.Record{
				Wins:           row.Statistics.TotalWins,
				Losses:         row.Statistics.TotalLosses,
				Ties:           &ties,
				Conference:     row.GroupID,
				ConferenceRank: row.Position,
			},
		})
	}
	return table
}
