package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration is the type of interval settings; YAML accepts values such as "30s" or "1h".
type Duration = time.Duration

// lookup returns the trimmed value of key and whether it is set to something non-blank.
func lookup(key string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	return raw, raw != ""
}

func envOrDefault(key, fallback string) string {
	if raw, ok := lookup(key); ok {
		return raw
	}
	return fallback
}

// durationEnvOrDefault accepts "0" or "0s" so one-shot mode can be forced from the environment.
func durationEnvOrDefault(key string, fallback time.Duration) time.Duration {
	raw, ok := lookup(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func intEnvOrDefault(key string, fallback int) int {
	raw, ok := lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func boolEnvOrDefault(key string, fallback bool) bool {
	raw, ok := lookup(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(raw) {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

// listEnvOrDefault splits a comma separated value into lower-cased, trimmed entries.
func listEnvOrDefault(key string, fallback []string) []string {
	raw, ok := lookup(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
