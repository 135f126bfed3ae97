package providers

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogWithProviderAddsProviderField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogWithProvider(context.Background(), logger, slog.LevelInfo, "gamesheet", "fetched", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "provider=gamesheet") || !strings.Contains(out, "count=3") {
		t.Fatalf("expected provider and count fields, got %q", out)
	}
}

func TestLogWithProviderNilLogger(t *testing.T) {
	LogWithProvider(context.Background(), nil, slog.LevelInfo, "gamesheet", "ignored")
}
