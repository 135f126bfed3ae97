package main

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/gamesheet-schedule/internal/config"
	"github.com/preston-bernstein/gamesheet-schedule/internal/metrics"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers/fixture"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers/gamesheet"
)

// selectProvider builds the live client for anything but the fixture provider;
// config validation has already rejected unknown names.
func selectProvider(cfg config.Config, loc *time.Location, logger *slog.Logger, recorder *metrics.Recorder) providers.ScheduleProvider {
	if cfg.Provider == config.ProviderFixture {
		return fixture.New(loc)
	}
	return gamesheet.NewClient(gamesheet.Config{
		BaseURL:   cfg.Gamesheet.BaseURL,
		Timeout:   cfg.Gamesheet.HTTPTimeout,
		Timezone:  cfg.Gamesheet.Timezone,
		PageLimit: cfg.Gamesheet.PageLimit,
		Logger:    logger,
		Observer:  recorder,
	})
}
