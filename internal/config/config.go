package config

import "os"

// LogConfig controls log level and handler format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config holds runtime configuration for a schedule build.
type Config struct {
	OutputDir     string        `yaml:"output_dir"`
	Leagues       []string      `yaml:"leagues"`
	BuildInterval Duration      `yaml:"build_interval"`
	HTTPTimeout   Duration      `yaml:"http_timeout"`
	NBA           NBAConfig     `yaml:"nba"`
	MLS           MLSConfig     `yaml:"mls"`
	Metrics       MetricsConfig `yaml:"metrics"`
	Log           LogConfig     `yaml:"log"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		OutputDir:     defaultOutputDir,
		Leagues:       append([]string(nil), defaultLeagues...),
		BuildInterval: defaultBuildInterval,
		HTTPTimeout:   defaultHTTPTimeout,
		NBA:           defaultNBA(),
		MLS:           defaultMLS(),
		Metrics:       defaultMetrics(),
	}
}

// Load builds configuration from defaults, then the YAML file named by
// CONFIG_FILE (when set), then environment variables.
func Load() (Config, error) {
	cfg := Defaults()
	if path := os.Getenv(envConfigFile); path != "" {
		fromFile, err := loadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = fromFile
	}
	return cfg.withEnv(), nil
}

func (c Config) withEnv() Config {
	return Config{
		OutputDir:     envOrDefault(envOutputDir, c.OutputDir),
		Leagues:       listEnvOrDefault(envLeagues, c.Leagues),
		BuildInterval: durationEnvOrDefault(envBuildInterval, c.BuildInterval),
		HTTPTimeout:   durationEnvOrDefault(envHTTPTimeout, c.HTTPTimeout),
		NBA:           c.NBA.withEnv(),
		MLS:           c.MLS.withEnv(),
		Metrics:       c.Metrics.withEnv(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, c.Log.Level),
			Format: envOrDefault(envLogFormat, c.Log.Format),
		},
	}
}
