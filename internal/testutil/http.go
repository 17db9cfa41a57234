package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Get issues a GET for path against h and returns the recorded response.
func Get(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

// RequireStatus fails the test unless rr carries the wanted status code.
func RequireStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status: want %d, got %d (body %s)", want, rr.Code, rr.Body.String())
	}
}

// DecodeBody unmarshals the recorded JSON body into dest.
func DecodeBody(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
}
