package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadFile decodes a YAML document over base; keys absent from the file keep base values.
func loadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	for i, l := range cfg.Leagues {
		cfg.Leagues[i] = strings.ToLower(strings.TrimSpace(l))
	}
	return cfg, nil
}
