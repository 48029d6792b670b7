package bench

import "github.com/wesleyorama2/squeal/internal/store"

// ExperimentConfig fixes one grid cell: how many workers run and what every
// transaction does. Immutable once built.
type ExperimentConfig struct {
	Threads int
	Scans   int
	Updates int
	Mode    store.Mode
}

// Grid expands the parameter lists into every combination, crossed with the
// three transaction modes.
//
// Cells with zero scans and zero updates are dropped: an empty transaction
// commits at unbounded rate and measures nothing. Enumeration order is
// stable (threads, then scans, then updates, then mode) so output files from
// different runs line up row for row.
func Grid(threads, scans, updates []int) []ExperimentConfig {
	var grid []ExperimentConfig
	for _, t := range threads {
		for _, s := range scans {
			for _, u := range updates {
				if s == 0 && u == 0 {
					continue
				}
				for _, m := range store.Modes {
					grid = append(grid, ExperimentConfig{
						Threads: t,
						Scans:   s,
						Updates: u,
						Mode:    m,
					})
				}
			}
		}
	}
	return grid
}
