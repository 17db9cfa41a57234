package config

// NBAConfig controls how the NBA schedule, standings and rankings are reached.
type NBAConfig struct {
	SeasonEndYear   int    `yaml:"season_end_year"`
	ScheduleBaseURL string `yaml:"schedule_base_url"`
	StandingsURL    string `yaml:"standings_url"`
	RankingsURL     string `yaml:"rankings_url"`
}

// MLSConfig controls how the MLS match list, standings and rankings are reached.
type MLSConfig struct {
	Season        int    `yaml:"season"`
	BaseURL       string `yaml:"base_url"`
	RankingsURL   string `yaml:"rankings_url"`
	CompetitionID int    `yaml:"competition_id"`
	WindowStart   string `yaml:"window_start"`
	WindowEnd     string `yaml:"window_end"`
}

func defaultNBA() NBAConfig {
	return NBAConfig{
		SeasonEndYear:   defaultNBASeason,
		ScheduleBaseURL: defaultNBAScheduleURL,
		StandingsURL:    defaultNBAStandingsURL,
		RankingsURL:     defaultNBARankingsURL,
	}
}

func defaultMLS() MLSConfig {
	return MLSConfig{
		Season:        defaultMLSSeason,
		BaseURL:       defaultMLSBaseURL,
		RankingsURL:   defaultMLSRankingsURL,
		CompetitionID: defaultMLSCompetition,
		WindowStart:   defaultMLSWindowStart,
		WindowEnd:     defaultMLSWindowEnd,
	}
}

func (c NBAConfig) withEnv() NBAConfig {
	return NBAConfig{
		SeasonEndYear:   intEnvOrDefault(envNBASeason, c.SeasonEndYear),
		ScheduleBaseURL: envOrDefault(envNBAScheduleURL, c.ScheduleBaseURL),
		StandingsURL:    envOrDefault(envNBAStandingsURL, c.StandingsURL),
		RankingsURL:     envOrDefault(envNBARankingsURL, c.RankingsURL),
	}
}

func (c MLSConfig) withEnv() MLSConfig {
	return MLSConfig{
		Season:        intEnvOrDefault(envMLSSeason, c.Season),
		BaseURL:       envOrDefault(envMLSBaseURL, c.BaseURL),
		RankingsURL:   envOrDefault(envMLSRankingsURL, c.RankingsURL),
		CompetitionID: intEnvOrDefault(envMLSCompetition, c.CompetitionID),
		WindowStart:   envOrDefault(envMLSWindowStart, c.WindowStart),
		WindowEnd:     envOrDefault(envMLSWindowEnd, c.WindowEnd),
	}
}
