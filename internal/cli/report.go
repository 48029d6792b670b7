package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/squeal/internal/bench"
	"github.com/wesleyorama2/squeal/internal/output"
	"github.com/wesleyorama2/squeal/internal/results"
)

var reportCmd = &cobra.Command{
	Use:   "report <results.json>",
	Short: "Render a results file as a sorted comparison table",
	Long: `Load a results file written by 'squeal bench', validate it, and print
a comparison table. Rows can be sorted by tps (default), retries, or
transactions; sorting is stable so ties keep their run order.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	sortKey, _ := cmd.Flags().GetString("sort")

	rs, err := results.Load(args[0])
	if err != nil {
		return err
	}

	rows := make([]*bench.Result, len(rs))
	for i := range rs {
		rows[i] = &rs[i]
	}

	switch sortKey {
	case "tps":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].TPS > rows[j].TPS })
	case "retries":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Retries > rows[j].Retries })
	case "transactions":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Transactions > rows[j].Transactions })
	case "none":
	default:
		return fmt.Errorf("unknown sort key %q (want tps, retries, transactions, or none)", sortKey)
	}

	out := output.NewProgress(os.Stdout, false)
	out.PrintSummary(rows)
	return nil
}

func init() {
	reportCmd.Flags().String("sort", "tps", "Sort key: tps, retries, transactions, or none")
}
