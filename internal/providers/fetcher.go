package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/league-schedules/internal/logging"
	"github.com/preston-bernstein/league-schedules/internal/metrics"
)

// FetcherConfig controls how upstream sources are reached.
type FetcherConfig struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Fetcher performs GET requests against upstream sources and decodes JSON or HTML bodies.
// Transport failures and non-2xx responses become *SourceFetchError; undecodable bodies
// become *SourceParseError. There are no retries.
type Fetcher struct {
	client  httpDoer
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewFetcher constructs a Fetcher with the provided configuration.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	return &Fetcher{
		client:  resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// GetJSON fetches url and decodes the body into v.
func (f *Fetcher) GetJSON(ctx context.Context, source, url string, v any) error {
	start := time.Now()
	err := f.getJSON(ctx, source, url, v)
	f.observe(ctx, source, url, start, err)
	return err
}

// GetDocument fetches url and parses the body as HTML.
func (f *Fetcher) GetDocument(ctx context.Context, source, url string) (*goquery.Document, error) {
	start := time.Now()
	doc, err := f.getDocument(ctx, source, url)
	f.observe(ctx, source, url, start, err)
	return doc, err
}

func (f *Fetcher) getJSON(ctx context.Context, source, url string, v any) error {
	body, err := f.fetch(ctx, source, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &SourceParseError{Source: source, URL: url, Err: err}
	}
	return nil
}

func (f *Fetcher) getDocument(ctx context.Context, source, url string) (*goquery.Document, error) {
	body, err := f.fetch(ctx, source, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &SourceParseError{Source: source, URL: url, Err: err}
	}
	return doc, nil
}

func (f *Fetcher) fetch(ctx context.Context, source, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &SourceFetchError{Source: source, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &SourceFetchError{Source: source, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &SourceFetchError{
			Source:     source,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(snippet))),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &SourceFetchError{Source: source, URL: url, Err: err}
	}
	if int64(len(body)) > maxBodyBytes {
		return nil, &SourceFetchError{
			Source:     source,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body exceeds %d bytes", maxBodyBytes),
		}
	}
	return body, nil
}

func (f *Fetcher) observe(ctx context.Context, source, url string, start time.Time, err error) {
	elapsed := time.Since(start)
	f.metrics.RecordSourceFetch(source, elapsed, err)
	if err != nil {
		logWithSource(ctx, f.logger, slog.LevelWarn, source, "source fetch failed",
			slog.String(logging.FieldURL, url),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any(logging.FieldError, err),
		)
		return
	}
	logWithSource(ctx, f.logger, slog.LevelDebug, source, "source fetched",
		slog.String(logging.FieldURL, url),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}
