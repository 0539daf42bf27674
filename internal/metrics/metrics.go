package metrics

import (
	"sync"
	"time"
)

type lookupStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream lookups and
// sequencer runs, mirroring them into OpenTelemetry instruments when configured.
type Recorder struct {
	mu       sync.Mutex
	lookups  map[string]*lookupStats
	outcomes map[string]int
	rules    map[string]int
	sessions int64
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		lookups:  make(map[string]*lookupStats),
		outcomes: make(map[string]int),
		rules:    make(map[string]int),
		otel:     otel,
	}
}

// RecordLookup increments counters for one upstream endpoint call and stores its latency.
func (r *Recorder) RecordLookup(provider, endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.lookups[lookupKey(provider, endpoint)]
	if !ok {
		stats = &lookupStats{}
		r.lookups[lookupKey(provider, endpoint)] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLookup(provider, endpoint, duration, err)
	}
}

// RecordRun tracks one sequencer run by terminal outcome (ready, failed, abandoned).
func (r *Recorder) RecordRun(outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.outcomes[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(outcome, duration)
	}
}

// RecordResolution tracks which resolver rule picked the team.
func (r *Recorder) RecordResolution(rule string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.rules[rule]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordResolution(rule)
	}
}

// Snapshot is a copy of the current stats for one provider endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// Snapshot returns the stats recorded for provider/endpoint.
func (r *Recorder) Snapshot(provider, endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.lookups[lookupKey(provider, endpoint)]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// LookupCalls returns the total calls recorded for provider/endpoint.
func (r *Recorder) LookupCalls(provider, endpoint string) int {
	return r.Snapshot(provider, endpoint).Calls
}

// LookupErrors returns the failed calls recorded for provider/endpoint.
func (r *Recorder) LookupErrors(provider, endpoint string) int {
	return r.Snapshot(provider, endpoint).Errors
}

// Runs returns how many sequencer runs ended with the given outcome.
func (r *Recorder) Runs(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[outcome]
}

// Resolutions returns how many times the given resolver rule matched.
func (r *Recorder) Resolutions(rule string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rules[rule]
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordSession tracks websocket sessions opening (+1) and closing (-1).
func (r *Recorder) RecordSession(delta int64) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.sessions += delta
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSession(delta)
	}
}

// Sessions returns the number of open websocket sessions.
func (r *Recorder) Sessions() int64 {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions
}

func lookupKey(provider, endpoint string) string {
	return provider + "/" + endpoint
}
