// Package bench is the benchmark-execution engine: grid enumeration,
// the concurrent workload driver, per-worker randomized transaction plans,
// and the busy-retry accounting.
package bench

import "math/rand"

const hexAlphabet = "0123456789ABCDEF"

const (
	scanProbeLen = 16
	updateHexLen = 64
	payloadSize  = 200
)

// UpdateOp is one point update: a fresh payload and hex string written to a
// uniformly chosen row.
type UpdateOp struct {
	Payload []byte
	Hex     string
	RowID   int64
}

// Plan holds the randomized operations for a single transaction.
//
// A plan is generated before each transaction and reused unchanged across
// busy retries, so a retried transaction stays logically identical and the
// retry count measures contention rather than fresh randomness.
type Plan struct {
	Scans   []string
	Updates []UpdateOp
}

// NewPlan draws scans probe keys and updates update tuples from rng. Row ids
// are uniform over [0, rows). Generation is pure: the same generator state
// always yields the same plan.
func NewPlan(rng *rand.Rand, scans, updates, rows int) *Plan {
	p := &Plan{
		Scans:   make([]string, scans),
		Updates: make([]UpdateOp, updates),
	}
	for i := range p.Scans {
		p.Scans[i] = randomHex(rng, scanProbeLen)
	}
	for i := range p.Updates {
		payload := make([]byte, payloadSize)
		rng.Read(payload)
		p.Updates[i] = UpdateOp{
			Payload: payload,
			Hex:     randomHex(rng, updateHexLen),
			RowID:   int64(rng.Intn(rows)),
		}
	}
	return p
}

func randomHex(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = hexAlphabet[rng.Intn(len(hexAlphabet))]
	}
	return string(b)
}
