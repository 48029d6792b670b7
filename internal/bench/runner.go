package bench

import "fmt"

// ProgressSink receives a tick after each experiment completes.
type ProgressSink interface {
	Step(done, total int, latest *Result)
}

// Runner executes a grid of experiments strictly sequentially. Experiments
// never overlap in time, so each one gets the store's full resource budget
// and the only interference measured is the intra-experiment kind.
type Runner struct {
	Driver   *Driver
	Progress ProgressSink
}

// RunAll runs every grid cell in order and returns results in the same
// order. The first experiment failure aborts the whole run.
func (r *Runner) RunAll(grid []ExperimentConfig) ([]*Result, error) {
	results := make([]*Result, 0, len(grid))
	for i, cfg := range grid {
		res, err := r.Driver.Run(cfg)
		if err != nil {
			return nil, fmt.Errorf("experiment %d of %d (%s threads=%d scans=%d updates=%d): %w",
				i+1, len(grid), cfg.Mode, cfg.Threads, cfg.Scans, cfg.Updates, err)
		}
		results = append(results, res)
		if r.Progress != nil {
			r.Progress.Step(i+1, len(grid), res)
		}
	}
	return results, nil
}
