// Package resolver matches feed team identifiers against independently sourced
// power rankings and standings. Lookups are linear scans over small snapshots;
// a missing match is a normal outcome, not an error.
package resolver

import (
	"strings"

	"github.com/preston-bernstein/league-schedules/internal/domain/teams"
)

// ResolveRank returns the 1-based position of name in rankings, compared
// case-insensitively. The first match wins. ok is false when name is absent.
func ResolveRank(name string, rankings []string) (rank int, ok bool) {
	for i, candidate := range rankings {
		if strings.EqualFold(candidate, name) {
			return i + 1, true
		}
	}
	return teams.Unranked, false
}

// Entry is one team's line in a standings table.
type Entry struct {
	Abbreviation string
	Record       teams.Record
}

// Partition is a conference or group of standings entries.
type Partition struct {
	Name    string
	Entries []Entry
}

// Standings are searched partition by partition, in order.
type Standings []Partition

// ResolveRecord finds the record for abbreviation, compared case-insensitively.
// ok is false when no partition lists the team.
func ResolveRecord(abbreviation string, standings Standings) (teams.Record, bool) {
	for _, partition := range standings {
		for _, entry := range partition.Entries {
			if strings.EqualFold(entry.Abbreviation, abbreviation) {
				return entry.Record, true
			}
		}
	}
	return teams.Record{}, false
}

// RecordPtr is ResolveRecord returning nil for an absent record.
func RecordPtr(abbreviation string, standings Standings) *teams.Record {
	rec, ok := ResolveRecord(abbreviation, standings)
	if !ok {
		return nil
	}
	return &rec
}
