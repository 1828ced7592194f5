// Package inspect implements the windgen inspect command.
package inspect

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/jkoskela/windgen/internal/conf"
	"github.com/jkoskela/windgen/internal/table"
)

// Command creates a new inspect command for verifying and summarizing
// an existing wind table.
func Command(ctx *conf.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [table]",
		Short: "Verify and summarize an existing wind table",
		Long: `Read a wind table, verify its 63-column shape and print summary
statistics: row count, time range, grid spacing, peak luminosity and
ejection velocity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, filename string) error {
	data, err := table.ReadFile(filename)
	if err != nil {
		return err
	}

	rows := len(data.Times)
	t0 := data.Times[0]
	tN := data.Times[rows-1]
	peak := math.Max(math.Abs(floats.Max(data.Luminosity)), math.Abs(floats.Min(data.Luminosity)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rows:         %d\n", rows)
	fmt.Fprintf(out, "Columns:      %d\n", table.Columns)
	fmt.Fprintf(out, "Time range:   %.8e .. %.8e s\n", t0, tN)
	if rows > 1 {
		fmt.Fprintf(out, "Grid spacing: %.8e s\n", (tN-t0)/float64(rows-1))
	}
	fmt.Fprintf(out, "Peak |Lw|:    %.8e erg/s\n", peak)
	fmt.Fprintf(out, "v_ej:         %.8e cm/s\n", data.Velocity[0])

	return nil
}
