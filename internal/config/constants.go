package config

import "time"

const (
	envDotEnvFile = "ENV_FILE"
	envSeason     = "SEASON_ID"
	envTeam       = "TEAM"
	envOutputDir  = "OUTPUT_DIR"
	envProvider   = "PROVIDER"

	envGamesheetBaseURL  = "GAMESHEET_BASE_URL"
	envGamesheetTimezone = "GAMESHEET_TIMEZONE"
	envGamesheetLimit    = "GAMESHEET_PAGE_LIMIT"
	envGamesheetTimeout  = "GAMESHEET_HTTP_TIMEOUT"

	envCalendarName     = "CALENDAR_NAME"
	envCalendarCategory = "CALENDAR_CATEGORY"
	envCalendarDuration = "CALENDAR_EVENT_DURATION"

	envMetricsOn       = "METRICS_ENABLED"
	envMetricsTextfile = "METRICS_TEXTFILE"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	envMirrorURL      = "MIRROR_URL"
	envMirrorEndpoint = "MIRROR_ENDPOINT"
	envMirrorRegion   = "MIRROR_REGION"
	envMirrorKeyID    = "MIRROR_ACCESS_KEY_ID"
	envMirrorSecret   = "MIRROR_SECRET_ACCESS_KEY"

	defaultDotEnvFile = ".env"
	defaultProvider   = ProviderGamesheet

	defaultGamesheetBaseURL  = "https://gamesheet.app"
	defaultGamesheetTimezone = "America/New_York"
	// The upstream caps a page at 50; we never paginate past the first one.
	defaultGamesheetLimit   = 50
	defaultGamesheetTimeout = 10 * Duration(time.Second)

	defaultCalendarName     = "Game Schedule"
	defaultCalendarCategory = "Game"
	// Assumed game length; the API does not publish an end time.
	defaultCalendarDuration = 90 * Duration(time.Minute)

	defaultServiceName  = "gamesheet-schedule"
	defaultMirrorRegion = "auto"
)

// Supported provider names.
const (
	ProviderGamesheet = "gamesheet"
	ProviderFixture   = "fixture"
)
