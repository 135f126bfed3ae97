package gamesheet

import "time"

const (
	providerName = "gamesheet"

	defaultBaseURL     = "https://gamesheet.app"
	schedulePathFormat = "/api/stats/v1/seasons/%d/schedule"
	defaultPageLimit   = 50
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"
	maxErrorBodyBytes  = 512
	userAgent          = "gamesheet-schedule"
)
