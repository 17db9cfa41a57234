package nba

const (
	league      = "nba"
	sport       = "basketball"
	leagueLabel = "NBA"

	sourceSchedule  = "nba-schedule"
	sourceStandings = "nba-standings"
	sourceRankings  = "nba-rankings"

	defaultScheduleBaseURL = "https://data.nba.com"
	defaultStandingsURL    = "https://data.nba.net/prod/v1/current/standings_conference.json"
	defaultRankingsURL     = "http://www.powerrankingsguru.com/nba/team-power-rankings.php"
	defaultSeasonEndYear   = 2022

	schedulePathFormat = "/data/10s/v2015/json/mobile_teams/nba/%d/league/00_full_schedule.json"
	rankingsSelector   = "table.rankings-table > tbody > tr > td:nth-child(2) > div.team-name-v2 > span.full-name"

	statusTBD   = "TBD"
	statusFinal = "Final"

	easternTimeLayout = "2006-01-02T15:04:05"
	utcDateTimeLayout = "2006-01-02 15:04"
)
