package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/gamesheet-schedule/internal/config"
	"github.com/preston-bernstein/gamesheet-schedule/internal/metrics"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers/fixture"
	"github.com/preston-bernstein/gamesheet-schedule/internal/providers/gamesheet"
	"github.com/preston-bernstein/gamesheet-schedule/internal/publish"
	"github.com/preston-bernstein/gamesheet-schedule/internal/testutil"
)

// Smoke test to ensure main honors SKIP_SCHEDULE_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SCHEDULE_RUN", "1")
	main()
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{"SEASON_ID", "TEAM", "OUTPUT_DIR", "MIRROR_URL", "METRICS_TEXTFILE", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("METRICS_ENABLED", "false")
}

func TestAppPublishesFixtureSchedule(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	logger, _ := testutil.NewBufferLogger()

	err := newApp(logger).RunContext(context.Background(), []string{appName, "-i", "42", "-t", "Ravens", "-o", dir})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "schedule.json"))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if !strings.Contains(string(data), "Ravens") {
		t.Fatalf("unexpected filtered document %s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "schedule.ics")); err != nil {
		t.Fatalf("expected calendar: %v", err)
	}
}

func TestAppReadsOutputFromEnvironment(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	t.Setenv("OUTPUT_DIR", dir)
	t.Setenv("SEASON_ID", "7")

	if err := newApp(nil).RunContext(context.Background(), []string{appName}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "schedule.json")); err != nil {
		t.Fatalf("expected json in env output dir: %v", err)
	}
}

func TestAppRejectsMissingArguments(t *testing.T) {
	isolateEnv(t)

	err := newApp(nil).RunContext(context.Background(), []string{appName, "-o", t.TempDir()})
	if err == nil || !strings.Contains(err.Error(), "season id") {
		t.Fatalf("expected season validation error, got %v", err)
	}

	err = newApp(nil).RunContext(context.Background(), []string{appName, "-i", "3"})
	if err == nil || !strings.Contains(err.Error(), "output directory") {
		t.Fatalf("expected output validation error, got %v", err)
	}
}

func TestRunPropagatesMetricsSetupError(t *testing.T) {
	orig := metricsSetup
	t.Cleanup(func() { metricsSetup = orig })
	boom := errors.New("no exporter")
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, func(context.Context) error, error) {
		return nil, nil, boom
	}

	cfg := config.Config{Season: 1, OutputDir: t.TempDir(), Provider: config.ProviderFixture}
	if err := run(context.Background(), cfg, nil); !errors.Is(err, boom) {
		t.Fatalf("expected metrics error, got %v", err)
	}
}

func TestRunRejectsBadMirror(t *testing.T) {
	cfg := config.Config{
		Season:    1,
		OutputDir: t.TempDir(),
		Provider:  config.ProviderFixture,
		Mirror:    config.MirrorConfig{URL: "ftp://bucket"},
	}
	if err := run(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected mirror url error")
	}
}

func TestSelectProvider(t *testing.T) {
	if _, ok := selectProvider(config.Config{Provider: config.ProviderFixture}, nil, nil, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider")
	}
	if _, ok := selectProvider(config.Config{Provider: config.ProviderGamesheet}, nil, nil, nil).(*gamesheet.Client); !ok {
		t.Fatalf("expected gamesheet client")
	}
}

func TestSelectProviderPassesGamesheetConfig(t *testing.T) {
	for _, name := range []string{config.ProviderGamesheet, "", "nope"} {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))

		cfg := config.Config{Provider: name}
		cfg.Gamesheet.BaseURL = srv.URL
		cfg.Gamesheet.HTTPTimeout = time.Second
		provider := selectProvider(cfg, nil, nil, nil)
		if _, err := provider.FetchGames(context.Background(), providers.Query{Season: 1}); err == nil {
			t.Fatalf("provider %q: expected upstream error", name)
		}
		srv.Close()
		if hits.Load() == 0 {
			t.Fatalf("provider %q: expected request against configured base url", name)
		}
	}
}

type closingMirror struct {
	puts   []string
	closed bool
}

func (m *closingMirror) Put(_ context.Context, name, _ string, _ []byte) error {
	m.puts = append(m.puts, name)
	return nil
}

func (m *closingMirror) String() string { return "mem://test" }

func (m *closingMirror) Close() error {
	m.closed = true
	return errors.New("close failed")
}

func TestRunClosesMirror(t *testing.T) {
	mirror := &closingMirror{}
	orig := newMirror
	t.Cleanup(func() { newMirror = orig })
	newMirror = func(context.Context, publish.MirrorOptions) (publish.Mirror, error) {
		return mirror, nil
	}

	logger, buf := testutil.NewBufferLogger()
	cfg := config.Config{
		Season:    1,
		OutputDir: t.TempDir(),
		Provider:  config.ProviderFixture,
		Mirror:    config.MirrorConfig{URL: "mem://test"},
	}
	if err := run(context.Background(), cfg, logger); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(mirror.puts) == 0 {
		t.Fatalf("expected mirrored artifacts")
	}
	if !mirror.closed {
		t.Fatalf("expected mirror closed after run")
	}
	if !strings.Contains(buf.String(), "mirror close failed") {
		t.Fatalf("expected close failure logged, got %s", buf.String())
	}
}
