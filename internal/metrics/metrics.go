package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
	kept            int
	dropped         map[string]int
}

type artifactStats struct {
	writes    int
	unchanged int
	errors    int
	lastBytes int
}

// Recorder captures in-memory metrics about one schedule run and mirrors
// them into OpenTelemetry instruments when telemetry is enabled.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	artifacts map[string]*artifactStats
	runs      int
	runErrors int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		artifacts: make(map[string]*artifactStats),
		otel:      otel,
	}
}

// RecordProviderAttempt counts a provider fetch and stores its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.providerLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordResolve tracks how many records survived the join and why the rest were dropped.
func (r *Recorder) RecordResolve(provider string, kept int, dropped map[string]int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.providerLocked(provider)
	stats.kept += kept
	for reason, n := range dropped {
		stats.dropped[reason] += n
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordResolve(provider, kept, dropped)
	}
}

// RecordPublish tracks the outcome of publishing one artifact.
func (r *Recorder) RecordPublish(artifact string, bytes int, unchanged bool, err error) {
	if r == nil {
		return
	}

	outcome := OutcomeWritten
	r.mu.Lock()
	stats := r.artifactLocked(artifact)
	switch {
	case err != nil:
		stats.errors++
		outcome = OutcomeError
	case unchanged:
		stats.unchanged++
		outcome = OutcomeUnchanged
	default:
		stats.writes++
	}
	if err == nil {
		stats.lastBytes = bytes
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPublish(artifact, bytes, outcome)
	}
}

// RecordRun tracks a complete run.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs++
	if err != nil {
		r.runErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
	Kept            int
	Dropped         map[string]int
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.providers[provider]
	if !ok {
		return Snapshot{}
	}
	dropped := make(map[string]int, len(stats.dropped))
	for reason, n := range stats.dropped {
		dropped[reason] = n
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
		Kept:            stats.kept,
		Dropped:         dropped,
	}
}

// ArtifactSnapshot is a copy of the publish stats for one artifact.
type ArtifactSnapshot struct {
	Writes    int
	Unchanged int
	Errors    int
	LastBytes int
}

func (r *Recorder) Artifact(name string) ArtifactSnapshot {
	if r == nil {
		return ArtifactSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.artifacts[name]
	if !ok {
		return ArtifactSnapshot{}
	}
	return ArtifactSnapshot{
		Writes:    stats.writes,
		Unchanged: stats.unchanged,
		Errors:    stats.errors,
		LastBytes: stats.lastBytes,
	}
}

// Runs returns the number of runs and how many of them failed.
func (r *Recorder) Runs() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs, r.runErrors
}

func (r *Recorder) providerLocked(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{dropped: make(map[string]int)}
		r.providers[provider] = stats
	}
	return stats
}

func (r *Recorder) artifactLocked(name string) *artifactStats {
	stats, ok := r.artifacts[name]
	if !ok {
		stats = &artifactStats{}
		r.artifacts[name] = stats
	}
	return stats
}
