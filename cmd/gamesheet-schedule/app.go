package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/gamesheet-schedule/internal/app/schedule"
	"github.com/preston-bernstein/gamesheet-schedule/internal/config"
	"github.com/preston-bernstein/gamesheet-schedule/internal/logging"
	"github.com/preston-bernstein/gamesheet-schedule/internal/metrics"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers"
	"github.com/preston-bernstein/gamesheet-schedule/internal/publish"
	"github.com/preston-bernstein/gamesheet-schedule/internal/render"
)

const flushTimeout = 5 * time.Second

var (
	metricsSetup = metrics.Setup
	newMirror    = publish.NewMirror
)

func newApp(logger *slog.Logger) *cli.App {
	return &cli.App{
		Name:    appName,
		Usage:   "publish a GameSheet season schedule as JSON and iCalendar",
		Version: appVersion,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "id",
				Aliases: []string{"i"},
				Usage:   "GameSheet season id",
				EnvVars: []string{"SEASON_ID"},
			},
			&cli.StringFlag{
				Name:    "team",
				Aliases: []string{"t"},
				Usage:   "only publish games involving this exact team name",
				EnvVars: []string{"TEAM"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "directory receiving schedule.json and schedule.ics",
				EnvVars: []string{"OUTPUT_DIR"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg := applyFlags(config.Load(), c)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(c.Context, cfg, logger)
		},
	}
}

// applyFlags lets explicit flags win over the environment and .env file.
func applyFlags(cfg config.Config, c *cli.Context) config.Config {
	if c.IsSet("id") {
		cfg.Season = c.Int("id")
	}
	if c.IsSet("team") {
		cfg.Team = c.String("team")
	}
	if c.IsSet("output") {
		cfg.OutputDir = c.String("output")
	}
	return cfg
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	recorder, flush, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		TextfilePath: cfg.Metrics.TextfilePath,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := flush(flushCtx); err != nil {
			logging.Warn(logger, "metrics flush failed", "error", err)
		}
	}()

	loc := providers.TimezoneOrDefault(cfg.Gamesheet.Timezone, "")
	provider := selectProvider(cfg, loc, logger, recorder)

	writerOpts := []publish.Option{publish.WithLogger(logger)}
	if cfg.Mirror.Enabled() {
		mirror, err := newMirror(ctx, publish.MirrorOptions{
			URL:             cfg.Mirror.URL,
			Endpoint:        cfg.Mirror.Endpoint,
			Region:          cfg.Mirror.Region,
			AccessKeyID:     cfg.Mirror.AccessKeyID,
			SecretAccessKey: cfg.Mirror.SecretAccessKey,
		})
		if err != nil {
			return err
		}
		if closer, ok := mirror.(io.Closer); ok {
			defer func() {
				if err := closer.Close(); err != nil {
					logging.Warn(logger, "mirror close failed", "mirror", mirror.String(), "error", err)
				}
			}()
		}
		writerOpts = append(writerOpts, publish.WithMirror(mirror))
	}

	svc := schedule.NewService(schedule.Options{
		Provider:     provider,
		ProviderName: cfg.Provider,
		Publisher:    publish.NewWriter(cfg.OutputDir, writerOpts...),
		Location:     loc,
		Calendar: render.CalendarOptions{
			Name:     cfg.Calendar.Name,
			Category: cfg.Calendar.Category,
			Duration: cfg.Calendar.EventDuration,
		},
		Logger:  logger,
		Metrics: recorder,
	})

	_, err = svc.Run(ctx, providers.Query{Season: cfg.Season, Team: cfg.Team})
	return err
}
