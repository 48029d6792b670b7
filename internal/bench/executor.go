package bench

import (
	"sync/atomic"
	"time"

	"github.com/wesleyorama2/squeal/internal/store"
)

// Counters are the only mutable state shared between the workers of one
// experiment. Both fields are independent scalars incremented atomically and
// read once after every worker has joined, so no lock is needed.
type Counters struct {
	Committed atomic.Uint64
	Retries   atomic.Uint64
}

// Executor runs single logical transactions with the busy-retry policy.
type Executor struct {
	Conn     *store.Conn
	Mode     store.Mode
	Counters *Counters
	Latency  *LatencyRecorder
}

// Execute drives plan through to a commit.
//
// A busy failure rolls the transaction back, counts a retry, and re-runs the
// whole transaction immediately with the same plan. There is no backoff and
// no retry cap: masking contention with backoff is exactly what this
// benchmark must not do, at the accepted risk that a pathological workload
// can pin a worker here. Every other failure aborts the experiment.
func (e *Executor) Execute(plan *Plan) error {
	start := time.Now()
	for {
		err := e.attempt(plan)
		if err == nil {
			e.Counters.Committed.Add(1)
			if e.Latency != nil {
				e.Latency.Record(time.Since(start))
			}
			return nil
		}
		e.Conn.Rollback()
		if store.IsBusy(err) {
			e.Counters.Retries.Add(1)
			continue
		}
		return err
	}
}

// attempt is one pass through Begin, the scan phase, the update phase, and
// Commit.
func (e *Executor) attempt(plan *Plan) error {
	if err := e.Conn.Begin(e.Mode); err != nil {
		return err
	}
	for _, probe := range plan.Scans {
		if err := e.Conn.Scan(probe); err != nil {
			return err
		}
	}
	for _, up := range plan.Updates {
		if err := e.Conn.Update(up.Payload, up.Hex, up.RowID); err != nil {
			return err
		}
	}
	return e.Conn.Commit()
}
