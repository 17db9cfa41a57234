package resolver

import (
	"testing"

	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
)

func TestResolveRank(t *testing.T) {
	rankings := []string{"Lakers", "Celtics", "Warriors"}

	cases := []struct {
		name string
		rank int
		ok   bool
	}{
		{"Celtics", 2, true},
		{"celtics", 2, true},
		{"CELTICS", 2, true},
		{"Lakers", 1, true},
		{"Warriors", 3, true},
		{"Knicks", teams.Unranked, false},
		{"", teams.Unranked, false},
	}

	for _, tc := range cases {
		rank, ok := ResolveRank(tc.name, rankings)
		if rank != tc.rank || ok != tc.ok {
			t.Fatalf("%q: expected (%d,%v), got (%d,%v)", tc.name, tc.rank, tc.ok, rank, ok)
		}
	}
}

func TestResolveRankFirstMatchWins(t *testing.T) {
	rank, ok := ResolveRank("heat", []string{"Bulls", "Heat", "HEAT"})
	if !ok || rank != 2 {
		t.Fatalf("expected first match at rank 2, got %d", rank)
	}
}

func TestResolveRankEmptyList(t *testing.T) {
	if _, ok := ResolveRank("Heat", nil); ok {
		t.Fatal("expected unranked for empty rankings")
	}
}

func TestResolveRecordSearchesPartitionsInOrder(t *testing.T) {
	standings := Standings{
		{Name: "east", Entries: []Entry{
			{Abbreviation: "BOS", Record: teams.Record{Wins: 10, Losses: 2, Conference: "east", ConferenceRank: 1}},
		}},
		{Name: "west", Entries: []Entry{
			{Abbreviation: "LAL", Record: teams.Record{Wins: 8, Losses: 4, Conference: "west", ConferenceRank: 3}},
			{Abbreviation: "bos", Record: teams.Record{Wins: 0, Losses: 0, Conference: "west"}},
		}},
	}

	rec, ok := ResolveRecord("bos", standings)
	if !ok || rec.Conference != "east" || rec.Wins != 10 {
		t.Fatalf("expected east record first, got %+v", rec)
	}

	rec, ok = ResolveRecord("lal", standings)
	if !ok || rec.ConferenceRank != 3 {
		t.Fatalf("expected west record, got %+v", rec)
	}

	if _, ok := ResolveRecord("NYK", standings); ok {
		t.Fatal("expected no record for missing team")
	}
}

func TestRecordPtr(t *testing.T) {
	standings := Standings{{Entries: []Entry{{Abbreviation: "ATL", Record: teams.Record{Wins: 3}}}}}

	if rec := RecordPtr("atl", standings); rec == nil || rec.Wins != 3 {
		t.Fatalf("expected record pointer, got %+v", rec)
	}
	if rec := RecordPtr("sea", standings); rec != nil {
		t.Fatalf("expected nil for missing team, got %+v", rec)
	}
}
