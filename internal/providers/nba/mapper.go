package nba

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
	"github.com/preston-bernstein/league-schedules/internal/providers"
	"github.com/preston-bernstein/league-schedules/internal/resolver"
	"github.com/preston-bernstein/league-schedules/internal/timeutil"
)

// Matches a scheduled tip-off such as "7:30 pm ET".
var scheduledPattern = regexp.MustCompile(`\d{1,2}:\d\d [ap]m \w\w`)

// Normalize maps the raw schedule to games ordered by start time. Rankings are
// matched by nickname, then by "City Nickname"; records by tricode.
func Normalize(schedule ScheduleResponse, rankings []string, standings StandingsResponse) ([]games.Game, error) {
	table := mapStandings(standings)

	var out []games.Game
	for _, month := range schedule.Months {
		for _, g := range month.Schedule.Games {
			game, err := mapGame(g, rankings, table)
			if err != nil {
				return nil, err
			}
			out = append(out, game)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func mapGame(g GameResponse, rankings []string, standings resolver.Standings) (games.Game, error) {
	status := mapStatus(g.Status)
	date, err := mapDate(g, status)
	if err != nil {
		return games.Game{}, &providers.SourceParseError{
			Source: sourceSchedule,
			Err:    fmt.Errorf("game %s: %w", g.ID, err),
		}
	}

	home := mapTeam(g.Home, rankings, standings)
	away := mapTeam(g.Visitor, rankings, standings)

	return games.Game{
		Code:                   g.Code,
		Description:            g.Series,
		CompetitionDescription: leagueLabel,
		League:                 leagueLabel,
		Status:                 status,
		Home:                   home,
		Away:                   away,
		Date:                   date,
		Location: games.Location{
			Arena: g.Arena,
			City:  g.City,
			State: g.State,
		},
		NationalNetwork: mapNetwork(g.Broadcasts.Broadcasters),
		TopTenMatchup:   home.InTopTen() && away.InTopTen(),
	}, nil
}

func mapTeam(t TeamResponse, rankings []string, standings resolver.Standings) teams.Team {
	rank, ok := resolver.ResolveRank(t.Nickname, rankings)
	if !ok {
		rank, _ = resolver.ResolveRank(t.City+" "+t.Nickname, rankings)
	}
	return teams.Team{
		Abbreviation: t.Abbreviation,
		Nickname:     t.Nickname,
		City:         t.City,
		PowerRank:    rank,
		Sport:        sport,
		Record:       resolver.RecordPtr(t.Abbreviation, standings),
	}
}

func mapStatus(status string) games.GameStatus {
	switch {
	case status == statusTBD:
		return games.StatusTBD
	case status == statusFinal:
		return games.StatusComplete
	case scheduledPattern.MatchString(status):
		return games.StatusFuture
	default:
		return games.StatusActive
	}
}

// mapDate prefers the UTC pair, then the Eastern wall-clock time. Games
// without a start time are placed at the evening of their calendar day.
func mapDate(g GameResponse, status games.GameStatus) (time.Time, error) {
	if status == games.StatusTBD {
		day := g.Date
		if day == "" {
			day = g.UTCDate
		}
		return timeutil.EveningOf(day)
	}
	if g.UTCDate != "" && g.UTCTime != "" {
		return time.ParseInLocation(utcDateTimeLayout, g.UTCDate+" "+g.UTCTime, time.UTC)
	}
	t, err := time.ParseInLocation(easternTimeLayout, g.EasternTime, timeutil.Eastern())
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// mapNetwork returns the first national, English-language television broadcaster.
func mapNetwork(broadcasters []BroadcasterResponse) string {
	for _, b := range broadcasters {
		if isNational(b.Scope) && isTelevision(b.Type) && strings.EqualFold(b.Language, "English") {
			return b.Display
		}
	}
	return ""
}

func isNational(scope string) bool {
	return strings.EqualFold(scope, "natl") || strings.EqualFold(scope, "national")
}

func isTelevision(kind string) bool {
	return strings.EqualFold(kind, "tv") || strings.EqualFold(kind, "television")
}

func mapStandings(resp StandingsResponse) resolver.Standings {
	conf := resp.League.Standard.Conference
	return resolver.Standings{
		mapConference("east", conf.East),
		mapConference("west", conf.West),
	}
}

func mapConference(name string, rows []StandingResponse) resolver.Partition {
	partition := resolver.Partition{Name: name}
	for _, row := range rows {
		partition.Entries = append(partition.Entries, resolver.Entry{
			Abbreviation: row.TeamSitesOnly.TeamTricode,
			Record: teams.Record{
				Wins:           atoi(row.Win),
				Losses:         atoi(row.Loss),
				Conference:     name,
				ConferenceRank: atoi(row.ConfRank),
			},
		})
	}
	return partition
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
