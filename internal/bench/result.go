package bench

import "time"

// Result is one experiment's outcome. The JSON field names and their order
// are the output contract; external tooling keys on them.
type Result struct {
	Behavior     string `json:"behavior"`
	Seed         int    `json:"seed"`
	Threads      int    `json:"n_threads"`
	Scans        int    `json:"n_scans"`
	Updates      int    `json:"n_updates"`
	Retries      uint64 `json:"retries"`
	Transactions uint64 `json:"transactions"`
	TPS          uint64 `json:"tps"`

	// Latency is console-only detail, not part of the JSON contract.
	Latency LatencySummary `json:"-"`
}

// Throughput is committed transactions per nominal second, using integer
// division (300 committed over a 30 s run is 10 tps).
//
// The nominal duration is the divisor even though a worker can run slightly
// past the deadline finishing its last transaction; the join skew is
// negligible and a fixed divisor keeps runs comparable. Sub-second nominal
// durations (only seen in tests) report the raw count.
func Throughput(committed uint64, nominal time.Duration) uint64 {
	secs := uint64(nominal / time.Second)
	if secs == 0 {
		return committed
	}
	return committed / secs
}
