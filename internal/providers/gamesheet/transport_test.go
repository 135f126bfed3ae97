package gamesheet

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com", "https://api.example.com"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
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
}

func TestResolveHTTPClientHonorsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	if client.Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", client.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom, time.Second)
	if client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestResolveLocationFallsBackToLeagueZone(t *testing.T) {
	if loc := resolveLocation(""); loc.String() != defaultTimezone {
		t.Fatalf("expected %s, got %s", defaultTimezone, loc)
	}
	if loc := resolveLocation("Not/AZone"); loc.String() != defaultTimezone {
		t.Fatalf("expected fallback for invalid zone, got %s", loc)
	}
	if loc := resolveLocation("America/Denver"); loc.String() != "America/Denver" {
		t.Fatalf("expected override, got %s", loc)
	}
}

func TestResolvePageLimitCapsAtOnePage(t *testing.T) {
	cases := map[int]int{0: 50, -1: 50, 10: 10, 50: 50, 500: 50}
	for in, want := range cases {
		if got := resolvePageLimit(in); got != want {
			t.Fatalf("limit %d: expected %d, got %d", in, want, got)
		}
	}
}
