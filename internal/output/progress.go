// Package output renders benchmark progress and result summaries to the
// console, with TTY-aware live updates and a plain-line fallback.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/wesleyorama2/squeal/internal/bench"
)

const barWidth = 40

// Progress bar characters
const (
	progressFilled = "█"
	progressEmpty  = "░"
)

// Progress renders "N of M experiments" progress. On a TTY it redraws a
// single bar line in place; otherwise it prints one summary line per
// completed experiment. It implements bench.ProgressSink.
type Progress struct {
	mu      sync.Mutex
	w       io.Writer
	colors  *ColorScheme
	isTTY   bool
	quiet   bool
	started time.Time
}

// NewProgress creates a progress renderer writing to w (stdout when nil).
func NewProgress(w io.Writer, quiet bool) *Progress {
	if w == nil {
		w = os.Stdout
	}
	tty := isTerminal(w)
	colors := DefaultColorScheme()
	if !tty {
		colors = NoColorScheme()
	}
	return &Progress{
		w:       w,
		colors:  colors,
		isTTY:   tty,
		quiet:   quiet,
		started: time.Now(),
	}
}

// Step records that done of total experiments have finished.
func (p *Progress) Step(done, total int, latest *bench.Result) {
	if p.quiet || total == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isTTY {
		fmt.Fprintf(p.w, "[%d/%d] %s threads=%d scans=%d updates=%d tx=%d retries=%d tps=%d\n",
			done, total, latest.Behavior, latest.Threads, latest.Scans, latest.Updates,
			latest.Transactions, latest.Retries, latest.TPS)
		return
	}

	filled := barWidth * done / total
	bar := strings.Repeat(progressFilled, filled) + strings.Repeat(progressEmpty, barWidth-filled)

	line := fmt.Sprintf("\r%s %d/%d  %s",
		p.colors.Bar.Sprint(bar), done, total, p.colors.Dim.Sprint(p.eta(done, total)))
	fmt.Fprint(p.w, line)
	if done == total {
		fmt.Fprintln(p.w)
	}
}

// eta estimates remaining wall-clock time from the average experiment
// duration so far.
func (p *Progress) eta(done, total int) string {
	if done == 0 || done >= total {
		return ""
	}
	elapsed := time.Since(p.started)
	remaining := time.Duration(int64(elapsed) / int64(done) * int64(total-done))
	return fmt.Sprintf("eta %s", remaining.Round(time.Second))
}
