package testutil

import (
	"context"

	"github.com/preston-bernstein/gamesheet-schedule/internal/metrics"
)

// NewRecorderWithFlush returns a recorder and a no-op flush to simplify tests.
func NewRecorderWithFlush() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}
