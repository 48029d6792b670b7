package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "squeal",
	Short:   "SQLite transaction contention benchmark",
	Version: version,
	Long: `Squeal measures SQLite's transactional throughput and contention behavior
under a cross-product of workload shapes: worker thread counts, per-transaction
scan and update counts, and transaction modes (DEFERRED, IMMEDIATE, CONCURRENT).`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(benchCmd)
	RootCmd.AddCommand(reportCmd)
}
