package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/squeal/internal/bench"
	"github.com/wesleyorama2/squeal/internal/config"
	"github.com/wesleyorama2/squeal/internal/output"
	"github.com/wesleyorama2/squeal/internal/results"
	"github.com/wesleyorama2/squeal/internal/store"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the benchmark grid against a SQLite database",
	Long: `Seed a SQLite database and run one experiment per combination of
thread count, scan count, update count, and transaction mode, writing one
JSON result record per experiment.

Flag mode:
  squeal bench --db bench.db --output results.json \
    --threads 1,2,4,8 --scans 0,10 --updates 0,1,10 --seed 1000000

Config file mode:
  squeal bench --config run.yaml`,
	RunE: runBench,
}

// runBench is the top of the whole run. Configuration errors (bad flags,
// existing output file, store that cannot be seeded) abort here before any
// experiment starts; experiment errors abort with no output file written.
func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	config.ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Refuse up front, not after minutes of benchmarking.
	if _, err := os.Stat(cfg.Output); err == nil {
		return fmt.Errorf("output file already exists: %s", cfg.Output)
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	progress := output.NewProgress(os.Stdout, quiet)

	store.RemoveState(cfg.DB)
	if !quiet {
		fmt.Printf("Seeding %d rows into %s\n", cfg.Seed, cfg.DB)
	}
	if err := store.Seed(cfg.DB, cfg.Seed); err != nil {
		return err
	}

	grid := bench.Grid(cfg.Threads, cfg.Scans, cfg.Updates)
	runner := &bench.Runner{
		Driver: &bench.Driver{
			Path:     cfg.DB,
			Rows:     cfg.Seed,
			Duration: cfg.ParseDuration(),
		},
		Progress: progress,
	}

	res, err := runner.RunAll(grid)
	if err != nil {
		return err
	}

	if err := results.Write(cfg.Output, res); err != nil {
		return err
	}
	store.RemoveState(cfg.DB)

	progress.PrintSummary(res)
	fmt.Printf("Results written to: %s\n", cfg.Output)
	return nil
}

// resolveConfig builds the run configuration from --config when given,
// otherwise from the individual flags.
func resolveConfig(cmd *cobra.Command) (*config.RunConfig, error) {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		return config.Load(configFile)
	}

	db, _ := cmd.Flags().GetString("db")
	out, _ := cmd.Flags().GetString("output")
	seed, _ := cmd.Flags().GetInt("seed")
	threads, _ := cmd.Flags().GetIntSlice("threads")
	scans, _ := cmd.Flags().GetIntSlice("scans")
	updates, _ := cmd.Flags().GetIntSlice("updates")
	duration, _ := cmd.Flags().GetString("duration")

	return &config.RunConfig{
		DB:       db,
		Output:   out,
		Seed:     seed,
		Threads:  threads,
		Scans:    scans,
		Updates:  updates,
		Duration: duration,
	}, nil
}

func init() {
	benchCmd.Flags().StringP("config", "c", "", "YAML/JSON run configuration file (overrides the other flags)")
	benchCmd.Flags().String("db", "", "Path to the SQLite file (recreated for the run)")
	benchCmd.Flags().StringP("output", "o", "", "Path to the output result file (must not exist)")
	benchCmd.Flags().Int("seed", 0, "Number of records to seed into the table (default 1000000)")
	benchCmd.Flags().IntSlice("threads", nil, "Concurrent worker counts to test (default 1..16)")
	benchCmd.Flags().IntSlice("scans", nil, "Scan operations per transaction (default 0,10)")
	benchCmd.Flags().IntSlice("updates", nil, "Update operations per transaction (default 0,1,10)")
	benchCmd.Flags().String("duration", "", "Wall-clock duration of each experiment (default 30s)")
	benchCmd.Flags().BoolP("quiet", "q", false, "Disable progress output, show only the final summary")
}
