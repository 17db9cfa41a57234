package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Port         string `yaml:"port"`
	Textfile     string `yaml:"textfile"`
	OtlpEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	OtlpInsecure bool   `yaml:"otlp_insecure"`
}

func defaultMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      true,
		Port:         defaultMetricsPort,
		ServiceName:  defaultServiceName,
		OtlpInsecure: true,
	}
}

func (c MetricsConfig) withEnv() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, c.Enabled),
		Port:         envOrDefault(envMetricsPort, c.Port),
		Textfile:     envOrDefault(envMetricsTextfile, c.Textfile),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, c.OtlpEndpoint),
		ServiceName:  envOrDefault(envOtelService, c.ServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, c.OtlpInsecure),
	}
}
