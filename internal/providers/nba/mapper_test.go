package nba

import (
	"testing"
	"time"

	"github.com/preston-bernstein/league-schedules/internal/domain/games"
	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
	"github.com/preston-bernstein/league-schedules/internal/providers"
)

func twoGameSchedule() ScheduleResponse {
	return ScheduleResponse{Months: []MonthResponse{{Schedule: MonthSchedule{
		Month: "October",
		Games: []GameResponse{
			{
				ID:      "0022100002",
				Code:    "20211020/LACGSW",
				Status:  "TBD",
				Date:    "2021-10-20",
				Arena:   "Chase Center",
				City:    "San Francisco",
				State:   "CA",
				Home:    TeamResponse{Nickname: "Warriors", Abbreviation: "GSW", City: "Golden State"},
				Visitor: TeamResponse{Nickname: "Clippers", Abbreviation: "LAC", City: "LA"},
			},
			{
				ID:          "0022100001",
				Code:        "20211019/BKNMIL",
				Series:      "Opening Night",
				Status:      "7:30 pm ET",
				Date:        "2021-10-19",
				EasternTime: "2021-10-19T19:30:00",
				UTCDate:     "2021-10-19",
				UTCTime:     "23:30",
				Arena:       "Fiserv Forum",
				City:        "Milwaukee",
				State:       "WI",
				Home:        TeamResponse{Nickname: "Bucks", Abbreviation: "MIL", City: "Milwaukee"},
				Visitor:     TeamResponse{Nickname: "Nets", Abbreviation: "BKN", City: "Brooklyn"},
				Broadcasts: BroadcastsResponse{Broadcasters: []BroadcasterResponse{
					{Display: "Bally Sports WI", Scope: "local", Type: "tv", Language: "English"},
					{Display: "TNT", Scope: "natl", Type: "tv", Language: "English"},
				}},
			},
		},
	}}}}
}

func TestNormalizeTwoGameSchedule(t *testing.T) {
	rankings := []string{"Bucks", "Brooklyn Nets", "Golden State Warriors"}
	var standings StandingsResponse
	standings.League.Standard.Conference.East = []StandingResponse{
		standing("BKN", "1", "0", "1"),
		standing("MIL", "0", "1", "2"),
	}

	got, err := Normalize(twoGameSchedule(), rankings, standings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got %d", len(got))
	}

	opener := got[0]
	if opener.Code != "20211019/BKNMIL" {
		t.Fatalf("expected games ordered by date, got %s first", opener.Code)
	}
	if want := time.Date(2021, 10, 19, 23, 30, 0, 0, time.UTC); !opener.Date.Equal(want) {
		t.Fatalf("expected %v, got %v", want, opener.Date)
	}
	if opener.Status != games.StatusFuture {
		t.Fatalf("expected future status, got %s", opener.Status)
	}
	if opener.NationalNetwork != "TNT" {
		t.Fatalf("expected TNT, got %q", opener.NationalNetwork)
	}
	if opener.Description != "Opening Night" || opener.League != "NBA" || opener.CompetitionDescription != "NBA" {
		t.Fatalf("unexpected labels: %+v", opener)
	}
	if opener.Home.PowerRank != 1 || opener.Away.PowerRank != 2 || !opener.TopTenMatchup {
		t.Fatalf("expected ranked top ten matchup, got home=%d away=%d", opener.Home.PowerRank, opener.Away.PowerRank)
	}
	if opener.Home.Sport != "basketball" {
		t.Fatalf("expected basketball sport, got %q", opener.Home.Sport)
	}
	if opener.Home.Record == nil || opener.Home.Record.ConferenceRank != 2 || opener.Home.Record.Losses != 1 {
		t.Fatalf("unexpected home record: %+v", opener.Home.Record)
	}
	if opener.Location != (games.Location{Arena: "Fiserv Forum", City: "Milwaukee", State: "WI"}) {
		t.Fatalf("unexpected location: %+v", opener.Location)
	}

	tbd := got[1]
	if tbd.Status != games.StatusTBD {
		t.Fatalf("expected tbd status, got %s", tbd.Status)
	}
	if want := time.Date(2021, 10, 20, 23, 0, 0, 0, time.UTC); !tbd.Date.Equal(want) {
		t.Fatalf("expected TBD game at 19:00 Eastern (%v), got %v", want, tbd.Date)
	}
	if tbd.Away.PowerRank != teams.Unranked || tbd.Away.Record != nil {
		t.Fatalf("expected unranked away team without record, got %+v", tbd.Away)
	}
	if tbd.TopTenMatchup {
		t.Fatal("expected no top ten matchup with an unranked team")
	}
	if tbd.NationalNetwork != "" {
		t.Fatalf("expected no national network, got %q", tbd.NationalNetwork)
	}
}

func TestNormalizeNeverPairsTeamWithItself(t *testing.T) {
	got, err := Normalize(twoGameSchedule(), nil, StandingsResponse{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 games, got %d", len(got))
	}
	for _, g := range got {
		if g.Home.Abbreviation == "" || g.Home.Abbreviation == g.Away.Abbreviation {
			t.Fatalf("game %s has home %q and away %q", g.Code, g.Home.Abbreviation, g.Away.Abbreviation)
		}
	}
}

func TestNormalizeEmptySchedule(t *testing.T) {
	got, err := Normalize(ScheduleResponse{}, nil, StandingsResponse{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no games, got %d", len(got))
	}
}

func TestNormalizeRejectsUnparseableDate(t *testing.T) {
	schedule := ScheduleResponse{Months: []MonthResponse{{Schedule: MonthSchedule{
		Games: []GameResponse{{ID: "bad", Status: "7:00 pm ET", EasternTime: "not-a-date"}},
	}}}}

	_, err := Normalize(schedule, nil, StandingsResponse{})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if _, ok := providers.AsParseError(err); !ok {
		t.Fatalf("expected SourceParseError, got %T", err)
	}
}

func TestMapStatus(t *testing.T) {
	cases := map[string]games.GameStatus{
		"TBD":         games.StatusTBD,
		"Final":       games.StatusComplete,
		"7:30 pm ET":  games.StatusFuture,
		"12:00 pm ET": games.StatusFuture,
		"Q3 4:12":     games.StatusActive,
		"Halftime":    games.StatusActive,
	}
	for raw, want := range cases {
		if got := mapStatus(raw); got != want {
			t.Fatalf("status %q: expected %s, got %s", raw, want, got)
		}
	}
}

func TestMapDateFallsBackToEasternTime(t *testing.T) {
	g := GameResponse{EasternTime: "2022-01-15T20:00:00"}
	got, err := mapDate(g, games.StatusFuture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2022, 1, 16, 1, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMapNetworkSkipsNonEnglishAndLocal(t *testing.T) {
	broadcasters := []BroadcasterResponse{
		{Display: "ESPN Deportes", Scope: "natl", Type: "tv", Language: "Spanish"},
		{Display: "NBA TV Radio", Scope: "natl", Type: "radio", Language: "English"},
		{Display: "NBC Sports Boston", Scope: "local", Type: "tv", Language: "English"},
	}
	if got := mapNetwork(broadcasters); got != "" {
		t.Fatalf("expected no network, got %q", got)
	}

	broadcasters = append(broadcasters, BroadcasterResponse{Display: "ESPN", Scope: "National", Type: "TV", Language: "english"})
	if got := mapNetwork(broadcasters); got != "ESPN" {
		t.Fatalf("expected ESPN, got %q", got)
	}
}

func TestMapStandingsToleratesBadNumbers(t *testing.T) {
	var resp StandingsResponse
	resp.League.Standard.Conference.West = []StandingResponse{standing("LAL", "x", "3", "")}

	table := mapStandings(resp)
	if len(table) != 2 || table[1].Name != "west" {
		t.Fatalf("expected east and west partitions, got %+v", table)
	}
	rec := table[1].Entries[0].Record
	if rec.Wins != 0 || rec.Losses != 3 || rec.ConferenceRank != 0 || rec.Conference != "west" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func standing(tricode, win, loss, rank string) StandingResponse {
	var s StandingResponse
	s.Win = win
	s.Loss = loss
	s.ConfRank = rank
	s.TeamSitesOnly.TeamTricode = tricode
	return s
}
