package providers

import (
	"net/http"
	"strings"
	"time"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	userAgent          = "league-schedules/1.0 (+https://github.com/preston-bernstein/league-schedules)"
	maxErrorBody       = 512
)

// maxBodyBytes caps a successful response body; the largest feed is a few MB.
var maxBodyBytes int64 = 16 << 20

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// NormalizeBaseURL trims a trailing slash, substituting fallback when raw is empty.
func NormalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}
