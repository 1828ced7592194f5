// Package plot implements the windgen plot command, re-rendering the
// diagnostic plot from an existing wind table without recomputing it.
package plot

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkoskela/windgen/internal/conf"
	windplot "github.com/jkoskela/windgen/internal/plot"
	"github.com/jkoskela/windgen/internal/table"
)

// Command creates a new plot command.
func Command(ctx *conf.Context) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plot [table]",
		Short: "Render the diagnostic plot from an existing wind table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			if path == "" {
				path = args[0] + ".png"
			}

			data, err := table.ReadFile(args[0])
			if err != nil {
				return err
			}

			if err := windplot.Render(path, data.Times, data.Luminosity); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved plot to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output filename for the plot (default: table name with .png appended)")

	return cmd
}
