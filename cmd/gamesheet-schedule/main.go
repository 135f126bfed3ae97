package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/gamesheet-schedule/internal/logging"
)

const (
	appName    = "gamesheet-schedule"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SCHEDULE_RUN") == "1" {
		return
	}

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: appName,
		Version: appVersion,
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(logger).RunContext(ctx, os.Args); err != nil {
		logging.Error(logger, "schedule run failed", err)
		stop()
		os.Exit(1)
	}
}
