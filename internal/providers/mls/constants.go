package mls

const (
	league = "mls"
	sport  = "soccer"

	sourceSchedule  = "mls-schedule"
	sourceStandings = "mls-standings"
	sourceRankings  = "mls-rankings"

	defaultBaseURL       = "https://sportapi.mlssoccer.com"
	defaultRankingsURL   = "http://www.powerrankingsguru.com/soccer/mls/team-power-rankings.php"
	defaultSeason        = 2021
	defaultCompetitionID = 98
	defaultWindowStart   = "06-01"
	defaultWindowEnd     = "12-31"

	matchesPath      = "/api/matches"
	standingsPath    = "/api/standings/live"
	rankingsSelector = "table.gfc-rankings-table > tbody > tr > td:nth-child(2) > div.gfc-team-name > span.abbrv"

	worldCupQualifierOptaID = 339
	regularSeasonSlug       = "mls-regular-season"
	regularMatchType        = "Regular"
	friendly                = "Friendly"

	nationalTVLabel = "National TV"
	usTVType        = "US TV"
)

// Ranking-page abbreviations that differ from the ones the match feed uses.
var abbreviationMap = map[string]string{
	"nwe": "ne",
	"nwy": "rbny",
	"mnu": "min",
	"dcu": "dc",
	"lag": "la",
	"san": "sj",
}

// Spanish-language national networks are not reported.
var excludedNetworks = map[string]struct{}{
	"UniMás": {},
	"TUDN":   {},
}
