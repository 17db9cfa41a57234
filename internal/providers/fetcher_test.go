package providers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/league-schedules/internal/metrics"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func stubFetcher(rt roundTripperFunc, rec *metrics.Recorder) *Fetcher {
	return NewFetcher(FetcherConfig{
		HTTPClient: &http.Client{Transport: rt},
		Metrics:    rec,
	})
}

func respond(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}, nil
}

func TestGetJSONDecodesAndRecords(t *testing.T) {
	var capturedUA string
	rec := metrics.NewRecorder()
	f := stubFetcher(func(req *http.Request) (*http.Response, error) {
		capturedUA = req.Header.Get("User-Agent")
		return respond(http.StatusOK, `{"name":"Celtics"}`)
	}, rec)

	var payload struct {
		Name string `json:"name"`
	}
	if err := f.GetJSON(context.Background(), "nba-standings", "http://example.com/s.json", &payload); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if payload.Name != "Celtics" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if capturedUA == "" {
		t.Fatalf("expected user agent header")
	}
	if snap := rec.Source("nba-standings"); snap.Calls != 1 || snap.Errors != 0 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestGetJSONNon200IsFetchError(t *testing.T) {
	rec := metrics.NewRecorder()
	f := stubFetcher(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusBadGateway, "upstream down")
	}, rec)

	var v map[string]any
	err := f.GetJSON(context.Background(), "mls-schedule", "http://example.com/m", &v)
	fe, ok := AsFetchError(err)
	if !ok {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if fe.StatusCode != http.StatusBadGateway || fe.Source != "mls-schedule" {
		t.Fatalf("unexpected fetch error %+v", fe)
	}
	if snap := rec.Source("mls-schedule"); snap.Errors != 1 {
		t.Fatalf("expected error recorded, got %+v", snap)
	}
}

func TestGetJSONRejectsOversizedBody(t *testing.T) {
	orig := maxBodyBytes
	t.Cleanup(func() { maxBodyBytes = orig })
	maxBodyBytes = 16

	f := stubFetcher(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `{"name":"Milwaukee Bucks"}`)
	}, nil)

	var payload map[string]string
	err := f.GetJSON(context.Background(), "nba-schedule", "http://example.com/big.json", &payload)
	fetchErr, ok := AsFetchError(err)
	if !ok {
		t.Fatalf("expected SourceFetchError, got %v", err)
	}
	if fetchErr.Source != "nba-schedule" || !strings.Contains(fetchErr.Err.Error(), "exceeds") {
		t.Fatalf("unexpected fetch error %+v", fetchErr)
	}
}

func TestGetJSONAcceptsBodyAtLimit(t *testing.T) {
	orig := maxBodyBytes
	t.Cleanup(func() { maxBodyBytes = orig })
	body := `{"name":"Nets"}`
	maxBodyBytes = int64(len(body))

	f := stubFetcher(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, body)
	}, nil)

	var payload map[string]string
	if err := f.GetJSON(context.Background(), "nba-schedule", "http://example.com/s.json", &payload); err != nil {
		t.Fatalf("expected body at limit to decode, got %v", err)
	}
	if payload["name"] != "Nets" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestGetJSONTransportFailureIsFetchError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	f := stubFetcher(func(req *http.Request) (*http.Response, error) {
		return nil, cause
	}, nil)

	var v map[string]any
	err := f.GetJSON(context.Background(), "nba-schedule", "http://example.com", &v)
	if _, ok := AsFetchError(err); !ok {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}

func TestGetJSONDecodeFailureIsParseError(t *testing.T) {
	f := stubFetcher(func(req *http.Request) (*http.Response, error) {
		return respond(http.StatusOK, "{bad json")
	}, nil)

	var v map[string]any
	err := f.GetJSON(context.Background(), "nba-schedule", "http://example.com", &v)
	if _, ok := AsParseError(err); !ok {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, ok := AsFetchError(err); ok {
		t.Fatalf("did not expect fetch error")
	}
}

func TestGetDocumentAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, `<html><body><span class="x">Heat</span></body></html>`)
	}))
	defer srv.Close()

	f := NewFetcher(FetcherConfig{Timeout: time.Second})
	doc, err := f.GetDocument(context.Background(), "nba-rankings", srv.URL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := doc.Find("span.x").Text(); got != "Heat" {
		t.Fatalf("expected Heat, got %q", got)
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	f := NewFetcher(FetcherConfig{})
	if _, err := f.GetDocument(context.Background(), "mls-rankings", srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 0)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, httpClient.Timeout)
	}

	custom := &http.Client{Timeout: 5 * time.Second}
	if got := resolveHTTPClient(custom, time.Minute); got != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", "https://fallback.example.com"},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com", "https://api.example.com"},
	}

	for _, c := range cases {
		if got := NormalizeBaseURL(c.input, "https://fallback.example.com"); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}
