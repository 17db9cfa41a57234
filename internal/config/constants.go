package config

import "time"

const (
	envConfigFile      = "CONFIG_FILE"
	envOutputDir       = "OUTPUT_DIR"
	envLeagues         = "LEAGUES"
	envBuildInterval   = "BUILD_INTERVAL"
	envHTTPTimeout     = "HTTP_TIMEOUT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envNBASeason       = "NBA_SEASON_END_YEAR"
	envNBAScheduleURL  = "NBA_SCHEDULE_BASE_URL"
	envNBAStandingsURL = "NBA_STANDINGS_URL"
	envNBARankingsURL  = "NBA_RANKINGS_URL"
	envMLSSeason       = "MLS_SEASON"
	envMLSBaseURL      = "MLS_BASE_URL"
	envMLSRankingsURL  = "MLS_RANKINGS_URL"
	envMLSCompetition  = "MLS_COMPETITION_ID"
	envMLSWindowStart  = "MLS_WINDOW_START"
	envMLSWindowEnd    = "MLS_WINDOW_END"
	envMetricsOn       = "METRICS_ENABLED"
	envMetricsPort     = "METRICS_PORT"
	envMetricsTextfile = "METRICS_TEXTFILE"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultOutputDir = "data/schedules"
	// Zero means build once and exit.
	defaultBuildInterval = Duration(0)
	defaultHTTPTimeout   = 30 * Duration(time.Second)
	defaultServiceName   = "league-schedules"
	defaultMetricsPort   = "9090"

	defaultNBASeason       = 2022
	defaultNBAScheduleURL  = "https://data.nba.com"
	defaultNBAStandingsURL = "https://data.nba.net/prod/v1/current/standings_conference.json"
	defaultNBARankingsURL  = "http://www.powerrankingsguru.com/nba/team-power-rankings.php"

	defaultMLSSeason      = 2021
	defaultMLSBaseURL     = "https://sportapi.mlssoccer.com"
	defaultMLSRankingsURL = "http://www.powerrankingsguru.com/soccer/mls/team-power-rankings.php"
	defaultMLSCompetition = 98
	// Month-day bounds of the match window within the season year.
	defaultMLSWindowStart = "06-01"
	defaultMLSWindowEnd   = "12-31"
)

// Supported league identifiers.
const (
	LeagueNBA = "nba"
	LeagueMLS = "mls"
)

var defaultLeagues = []string{LeagueNBA, LeagueMLS}
