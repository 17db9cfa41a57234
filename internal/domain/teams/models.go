package teams

import "strings"

// Unranked is the PowerRank of a team that was not found in the ranking list.
// Valid ranks start at 1.
const Unranked = 0

// Record is a team's standing within its conference or group.
type Record struct {
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	Ties           *int   `json:"ties,omitempty"`
	Conference     string `json:"conference"`
	ConferenceRank int    `json:"conferenceRank"`
}

// Team represents a franchise as it appears within one sport's normalized data.
type Team struct {
	Abbreviation string  `json:"abbreviation"`
	Nickname     string  `json:"nickname"`
	City         string  `json:"city"`
	PowerRank    int     `json:"powerRank,omitempty"`
	Sport        string  `json:"sport"`
	Record       *Record `json:"record,omitempty"`
}

// Key is the roster identity of a team: sport plus lower-cased abbreviation.
func (t Team) Key() string {
	return t.Sport + "-" + strings.ToLower(t.Abbreviation)
}

// Ranked reports whether the team was matched in the power rankings.
func (t Team) Ranked() bool {
	return t.PowerRank != Unranked
}

// InTopTen reports whether the team holds a power rank between 1 and 10.
func (t Team) InTopTen() bool {
	return t.Ranked() && t.PowerRank <= 10
}
