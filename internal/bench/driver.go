package bench

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/wesleyorama2/squeal/internal/store"
)

// DefaultDuration is the nominal wall-clock length of one experiment.
const DefaultDuration = 30 * time.Second

// Driver runs experiments against one seeded store.
type Driver struct {
	// Path to the store file. Every worker opens its own connection to it.
	Path string

	// Rows is the seeded row count; update row ids are drawn from [0, Rows).
	Rows int

	// Duration is the nominal wall-clock run length per experiment.
	Duration time.Duration
}

// Run executes one experiment: cfg.Threads workers hammer the store in
// parallel until the deadline, then the result is folded from the shared
// counters.
//
// Workers only fail for non-busy store errors, and any such failure is fatal
// for the whole experiment — an uncategorized error invalidates the
// measurement, so there is no partial result.
func (d *Driver) Run(cfg ExperimentConfig) (*Result, error) {
	var (
		counters Counters
		latency  = NewLatencyRecorder()
		wg       sync.WaitGroup
		firstErr error
		errMu    sync.Mutex
	)

	deadline := time.Now().Add(d.Duration)
	for i := 0; i < cfg.Threads; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			if err := d.runWorker(workerID, cfg, deadline, &counters, latency); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("worker %d: %w", workerID, err)
				}
				errMu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	committed := counters.Committed.Load()
	return &Result{
		Behavior:     cfg.Mode.String(),
		Seed:         d.Rows,
		Threads:      cfg.Threads,
		Scans:        cfg.Scans,
		Updates:      cfg.Updates,
		Retries:      counters.Retries.Load(),
		Transactions: committed,
		TPS:          Throughput(committed, d.Duration),
		Latency:      latency.Summary(),
	}, nil
}

// runWorker loops transactions until the deadline. The deadline is checked
// only between transactions, so the last one may finish past it — accepted
// skew, and why throughput divides by the nominal duration.
func (d *Driver) runWorker(workerID int, cfg ExperimentConfig, deadline time.Time, counters *Counters, latency *LatencyRecorder) error {
	conn, err := store.Open(d.Path)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Seeding from the worker index gives each worker its own reproducible
	// operation stream. Generators are never shared across workers.
	rng := rand.New(rand.NewSource(int64(workerID)))

	exec := &Executor{Conn: conn, Mode: cfg.Mode, Counters: counters, Latency: latency}
	for !time.Now().After(deadline) {
		plan := NewPlan(rng, cfg.Scans, cfg.Updates, d.Rows)
		if err := exec.Execute(plan); err != nil {
			return err
		}
	}
	return nil
}
