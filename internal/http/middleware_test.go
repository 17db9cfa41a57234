package http

import (
	"bytes"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	var seen string
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(nethttp.StatusAccepted)
	})
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rr := httptest.NewRecorder()
	LoggingMiddleware(logger, next).ServeHTTP(rr, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))

	if seen == "" || rr.Header().Get(requestIDHeader) != seen {
		t.Fatalf("expected generated request id on context and header, got %q / %q", seen, rr.Header().Get(requestIDHeader))
	}
	if !strings.Contains(buf.String(), "status_code=202") {
		t.Fatalf("expected status in log, got %s", buf.String())
	}
}

func TestLoggingMiddlewareKeepsValidInboundID(t *testing.T) {
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")

	rr := httptest.NewRecorder()
	LoggingMiddleware(nil, next).ServeHTTP(rr, req)
	if got := rr.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected inbound id kept, got %q", got)
	}
}

func TestSanitizeRequestIDReplacesMalformed(t *testing.T) {
	for _, raw := range []string{"", "has spaces", strings.Repeat("x", 65), "semi;colon"} {
		got := sanitizeRequestID(raw)
		if got == raw || !requestIDPattern.MatchString(got) {
			t.Fatalf("expected %q to be replaced with a valid id, got %q", raw, got)
		}
	}
}

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(nethttp.MethodGet, "/", nil)
	req = req.WithContext(withRequestID(req.Context(), "req-1"))
	rr := httptest.NewRecorder()

	writeError(rr, req, nethttp.StatusNotFound, "nope", nil)
	if !strings.Contains(rr.Body.String(), `"requestId":"req-1"`) {
		t.Fatalf("expected request id in error body, got %s", rr.Body.String())
	}
}
