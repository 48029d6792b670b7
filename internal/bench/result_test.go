package bench

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

func TestThroughput(t *testing.T) {
	tests := []struct {
		committed uint64
		nominal   time.Duration
		want      uint64
	}{
		{300, 30 * time.Second, 10},
		{299, 30 * time.Second, 9}, // integer division, not rounding
		{0, 30 * time.Second, 0},
		{17, 10 * time.Second, 1},
		{42, 500 * time.Millisecond, 42}, // sub-second: raw count
	}
	for _, tt := range tests {
		if got := Throughput(tt.committed, tt.nominal); got != tt.want {
			t.Errorf("Throughput(%d, %v) = %d, want %d", tt.committed, tt.nominal, got, tt.want)
		}
	}
}

func TestResult_JSONContract(t *testing.T) {
	r := Result{
		Behavior:     "IMMEDIATE",
		Seed:         1_000_000,
		Threads:      8,
		Scans:        10,
		Updates:      1,
		Retries:      12,
		Transactions: 300,
		TPS:          10,
		Latency:      LatencySummary{P50: time.Millisecond},
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	checks := map[string]int64{
		"seed":         1_000_000,
		"n_threads":    8,
		"n_scans":      10,
		"n_updates":    1,
		"retries":      12,
		"transactions": 300,
		"tps":          10,
	}
	for field, want := range checks {
		got := gjson.GetBytes(data, field)
		if !got.Exists() {
			t.Errorf("field %q missing from JSON", field)
			continue
		}
		if got.Int() != want {
			t.Errorf("field %q = %d, want %d", field, got.Int(), want)
		}
	}
	if gjson.GetBytes(data, "behavior").String() != "IMMEDIATE" {
		t.Errorf("behavior = %q, want IMMEDIATE", gjson.GetBytes(data, "behavior").String())
	}

	// Latency is console-only detail and must stay out of the contract.
	if gjson.GetBytes(data, "Latency").Exists() || gjson.GetBytes(data, "latency").Exists() {
		t.Error("latency leaked into the JSON contract")
	}
}
