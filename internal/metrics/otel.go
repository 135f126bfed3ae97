package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "gamesheet-schedule"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
	writeTextfile     = prometheus.WriteToTextfile
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled bool
	// TextfilePath receives the Prometheus exposition at flush time,
	// for node_exporter's textfile collector.
	TextfilePath string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder and a flush function that writes the textfile and shuts the provider down.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, registry, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, err
	}

	rec := newRecorder(otelInst)
	flush := func(c context.Context) error {
		var textErr error
		if cfg.TextfilePath != "" {
			textErr = writeTextfile(cfg.TextfilePath, registry)
		}
		return errors.Join(textErr, provider.Shutdown(c))
	}

	return rec, flush, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	// Shutdown exports whatever the single run recorded.
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx               context.Context
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	gamesKept         metric.Int64Counter
	gamesDropped      metric.Int64Counter
	publishes         metric.Int64Counter
	publishBytes      metric.Int64Gauge
	runs              metric.Int64Counter
	runErrors         metric.Int64Counter
	runLatencyMs      metric.Float64Histogram
	lastSuccess       metric.Float64Gauge
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)
	ctx := context.Background()

	providerAttempts, err := meter.Int64Counter("provider_attempts_total")
	if err != nil {
		return nil, err
	}
	providerErrors, err := meter.Int64Counter("provider_errors_total")
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_duration_ms")
	if err != nil {
		return nil, err
	}
	gamesKept, err := meter.Int64Counter("schedule_games_kept_total")
	if err != nil {
		return nil, err
	}
	gamesDropped, err := meter.Int64Counter("schedule_games_dropped_total")
	if err != nil {
		return nil, err
	}
	publishes, err := meter.Int64Counter("artifact_publishes_total")
	if err != nil {
		return nil, err
	}
	publishBytes, err := meter.Int64Gauge("artifact_bytes")
	if err != nil {
		return nil, err
	}
	runs, err := meter.Int64Counter("schedule_runs_total")
	if err != nil {
		return nil, err
	}
	runErrors, err := meter.Int64Counter("schedule_run_errors_total")
	if err != nil {
		return nil, err
	}
	runLatency, err := meter.Float64Histogram("schedule_run_duration_ms")
	if err != nil {
		return nil, err
	}
	lastSuccess, err := meter.Float64Gauge("schedule_last_success_timestamp_seconds")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               ctx,
		providerAttempts:  providerAttempts,
		providerErrors:    providerErrors,
		providerLatencyMs: providerLatency,
		gamesKept:         gamesKept,
		gamesDropped:      gamesDropped,
		publishes:         publishes,
		publishBytes:      publishBytes,
		runs:              runs,
		runErrors:         runErrors,
		runLatencyMs:      runLatency,
		lastSuccess:       lastSuccess,
	}, nil
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordResolve(provider string, kept int, dropped map[string]int) {
	if o == nil {
		return
	}
	o.recordCounter(o.gamesKept, int64(kept), attribute.String(AttrProvider, provider))
	for reason, n := range dropped {
		o.recordCounter(o.gamesDropped, int64(n),
			attribute.String(AttrProvider, provider),
			attribute.String(AttrReason, reason),
		)
	}
}

func (o *otelInstruments) recordPublish(artifact string, bytes int, outcome string) {
	if o == nil {
		return
	}
	o.recordCounter(o.publishes, 1,
		attribute.String(AttrArtifact, artifact),
		attribute.String(AttrOutcome, outcome),
	)
	if outcome != OutcomeError {
		o.publishBytes.Record(o.ctx, int64(bytes), metric.WithAttributes(attribute.String(AttrArtifact, artifact)))
	}
}

func (o *otelInstruments) recordRun(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.runs, 1)
	o.recordHistogram(o.runLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.runErrors, 1)
		return
	}
	o.lastSuccess.Record(o.ctx, float64(time.Now().Unix()))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
