package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for one publish run.
type Config struct {
	Season    int
	Team      string
	OutputDir string
	Provider  string
	Gamesheet GamesheetConfig
	Calendar  CalendarConfig
	Metrics   MetricsConfig
	Mirror    MirrorConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file (or ENV_FILE) is applied first without overriding the environment.
func Load() Config {
	loadDotEnv()
	return Config{
		Season:    intEnvOrDefault(envSeason, 0),
		Team:      strings.TrimSpace(envOrDefault(envTeam, "")),
		OutputDir: envOrDefault(envOutputDir, ""),
		Provider:  strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		Gamesheet: loadGamesheet(),
		Calendar:  loadCalendar(),
		Metrics:   loadMetrics(),
		Mirror:    loadMirror(),
	}
}

// Validate reports every problem that would stop a run.
func (c Config) Validate() error {
	var errs []error
	if c.Season <= 0 {
		errs = append(errs, fmt.Errorf("season id must be a positive integer, got %d", c.Season))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	switch c.Provider {
	case ProviderGamesheet, ProviderFixture:
	default:
		errs = append(errs, fmt.Errorf("unknown provider %q", c.Provider))
	}
	if _, err := time.LoadLocation(c.Gamesheet.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid league timezone %q: %w", c.Gamesheet.Timezone, err))
	}
	if c.Calendar.EventDuration <= 0 {
		errs = append(errs, errors.New("calendar event duration must be positive"))
	}
	return errors.Join(errs...)
}

func loadDotEnv() {
	path := envOrDefault(envDotEnvFile, defaultDotEnvFile)
	// A missing file is the normal case outside local development.
	_ = godotenv.Load(path)
}
