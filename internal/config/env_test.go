package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestListEnvOrDefault(t *testing.T) {
	def := []string{"nba"}

	t.Setenv("LIST_TEST", "")
	if got := listEnvOrDefault("LIST_TEST", def); len(got) != 1 || got[0] != "nba" {
		t.Fatalf("expected default when unset, got %v", got)
	}

	t.Setenv("LIST_TEST", " NBA , ,mls ")
	got := listEnvOrDefault("LIST_TEST", def)
	if len(got) != 2 || got[0] != "nba" || got[1] != "mls" {
		t.Fatalf("expected [nba mls], got %v", got)
	}

	t.Setenv("LIST_TEST", " , ")
	if got := listEnvOrDefault("LIST_TEST", def); len(got) != 1 || got[0] != "nba" {
		t.Fatalf("expected default for blank entries, got %v", got)
	}
}

func TestIntEnvOrDefaultRejectsNonPositive(t *testing.T) {
	t.Setenv("INT_TEST", "-3")
	if got := intEnvOrDefault("INT_TEST", 7); got != 7 {
		t.Fatalf("expected default for negative, got %d", got)
	}
	t.Setenv("INT_TEST", "12")
	if got := intEnvOrDefault("INT_TEST", 7); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		val  string
		want time.Duration
	}{
		{"", time.Minute},
		{"0s", 0},
		{"90s", 90 * time.Second},
		{"-1m", time.Minute},
		{"soon", time.Minute},
	}
	for _, tc := range cases {
		t.Setenv("DURATION_TEST", tc.val)
		if got := durationEnvOrDefault("DURATION_TEST", time.Minute); got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.val, tc.want, got)
		}
	}
}

func TestBoolEnvOrDefaultOnOff(t *testing.T) {
	t.Setenv("BOOL_TEST", "off")
	if boolEnvOrDefault("BOOL_TEST", true) {
		t.Fatal("expected off to disable")
	}
	t.Setenv("BOOL_TEST", " On ")
	if !boolEnvOrDefault("BOOL_TEST", false) {
		t.Fatal("expected on to enable")
	}
}
