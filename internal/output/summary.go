package output

import (
	"fmt"
	"time"

	"github.com/wesleyorama2/squeal/internal/bench"
)

// PrintSummary renders the final results table. Latency columns only appear
// when at least one result carries latency data (results loaded back from a
// file do not).
func (p *Progress) PrintSummary(results []*bench.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	hasLatency := false
	for _, r := range results {
		if r.Latency.P99 > 0 {
			hasLatency = true
			break
		}
	}

	fmt.Fprintln(p.w)
	header := fmt.Sprintf("%-10s %8s %6s %8s %12s %10s %8s", "BEHAVIOR", "THREADS", "SCANS", "UPDATES", "TX", "RETRIES", "TPS")
	if hasLatency {
		header += fmt.Sprintf(" %9s %9s %9s", "P50", "P95", "P99")
	}
	fmt.Fprintln(p.w, p.colors.Header.Sprint(header))

	for _, r := range results {
		line := fmt.Sprintf("%-10s %8d %6d %8d %12d %10d %8d",
			r.Behavior, r.Threads, r.Scans, r.Updates, r.Transactions, r.Retries, r.TPS)
		if hasLatency {
			line += fmt.Sprintf(" %9s %9s %9s",
				formatLatency(r.Latency.P50), formatLatency(r.Latency.P95), formatLatency(r.Latency.P99))
		}
		fmt.Fprintln(p.w, line)
	}
	fmt.Fprintln(p.w)
}

func formatLatency(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return d.Round(10 * time.Microsecond).String()
}
