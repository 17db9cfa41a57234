package mls

// MatchResponse is one entry in the match list feed.
type MatchResponse struct {
	Slug             string                `json:"slug"`
	IsTimeTBD        bool                  `json:"isTimeTbd"`
	LeagueMatchTitle string                `json:"leagueMatchTitle"`
	Competition      CompetitionResponse   `json:"competition"`
	Broadcasters     []BroadcasterResponse `json:"broadcasters"`
	MatchDate        string                `json:"matchDate"`
	Home             ClubResponse          `json:"home"`
	Away             ClubResponse          `json:"away"`
	Venue            VenueResponse         `json:"venue"`
}

type CompetitionResponse struct {
	OptaID    int    `json:"optaId"`
	Slug      string `json:"slug"`
	MatchType string `json:"matchType"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type ClubResponse struct {
	Abbreviation string `json:"abbreviation"`
	ShortName    string `json:"shortName"`
}

// VenueResponse carries the city as "City, State".
type VenueResponse struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type BroadcasterResponse struct {
	TypeLabel string `json:"broadcasterTypeLabel"`
	Name      string `json:"broadcasterName"`
	Type      string `json:"broadcasterType"`
}

// StandingResponse is one club's line in the live standings feed.
type StandingResponse struct {
	GroupID  string `json:"group_id"`
	Position int    `json:"position"`
	Club     struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"club"`
	Statistics struct {
		TotalDraws  int `json:"total_draws"`
		TotalWins   int `json:"total_wins"`
		TotalLosses int `json:"total_losses"`
	} `json:"statistics"`
}
