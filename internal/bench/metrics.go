package bench

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds in microseconds: 1 µs to 1 minute, 3 significant figures.
const (
	histMin = 1
	histMax = 60_000_000
)

// LatencyRecorder aggregates per-transaction latencies for one experiment in
// an HDR histogram. A transaction's latency spans all of its busy retries,
// so contention shows up in the tail.
//
// RecordValue is not thread-safe, so recording takes a mutex; the hot-path
// counters elsewhere stay atomic and lock-free.
type LatencyRecorder struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

// NewLatencyRecorder returns an empty recorder.
func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{hist: hdrhistogram.New(histMin, histMax, 3)}
}

// Record adds one transaction latency, clamped to the histogram range.
func (r *LatencyRecorder) Record(d time.Duration) {
	micros := d.Microseconds()
	if micros < histMin {
		micros = histMin
	}
	if micros > histMax {
		micros = histMax
	}
	r.mu.Lock()
	_ = r.hist.RecordValue(micros)
	r.mu.Unlock()
}

// LatencySummary is the percentile digest shown in the console summary.
type LatencySummary struct {
	P50 time.Duration
	P95 time.Duration
	P99 time.Duration
}

// Summary snapshots the recorded percentiles.
func (r *LatencyRecorder) Summary() LatencySummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return LatencySummary{
		P50: time.Duration(r.hist.ValueAtQuantile(50)) * time.Microsecond,
		P95: time.Duration(r.hist.ValueAtQuantile(95)) * time.Microsecond,
		P99: time.Duration(r.hist.ValueAtQuantile(99)) * time.Microsecond,
	}
}
