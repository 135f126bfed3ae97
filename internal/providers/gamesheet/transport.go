package gamesheet

import (
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/gamesheet-schedule/internal/providers"
)

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

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveLocation(name string) *time.Location {
	return providers.TimezoneOrDefault(name, defaultTimezone)
}

func resolvePageLimit(limit int) int {
	if limit <= 0 || limit > defaultPageLimit {
		return defaultPageLimit
	}
	return limit
}
