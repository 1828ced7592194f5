// Package generate implements the windgen generate command, the core
// pipeline: read inputs, convert units, evaluate the wind formula over
// a uniform time grid, write the table and render the plot.
package generate

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jkoskela/windgen/internal/conf"
	"github.com/jkoskela/windgen/internal/plot"
	"github.com/jkoskela/windgen/internal/table"
	"github.com/jkoskela/windgen/internal/wind"
)

// Command creates a new generate command for producing a wind table.
func Command(ctx *conf.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a wind table and diagnostic plot",
		Long: `Generate a wind table with times, Lw and constant v_ej in the fourth
column, in the wind_m060 column layout. Physical inputs not supplied by
flag or config file are prompted for interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ctx.Settings)
		},
	}

	setupFlags(cmd, ctx.Settings)

	return cmd
}

// setupFlags configures flags specific to the generate command. The
// four physical inputs default to NaN so runGenerate can tell which
// ones still need prompting.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) error {
	flags := cmd.Flags()

	flags.Float64Var(&settings.Wind.FinalTime, "t-f", math.NaN(), "Final time in years")
	flags.Float64Var(&settings.Wind.EjectionTime, "t-ej", math.NaN(), "Ejection time scale in years")
	flags.Float64Var(&settings.Wind.EjectedMass, "m-ej", math.NaN(), "Ejected mass in solar masses")
	flags.Float64Var(&settings.Wind.Velocity, "v-ej", math.NaN(), "Ejection velocity in km/s")
	flags.IntVar(&settings.Wind.Steps, "n-steps", viper.GetInt("wind.steps"), "Number of time samples between 0 and t_f (inclusive)")
	flags.StringVarP(&settings.Output.TablePath, "output", "o", viper.GetString("output.tablepath"), "Output filename for the wind table")
	flags.StringVar(&settings.Output.PlotPath, "plot", viper.GetString("output.plotpath"), "Output filename for the diagnostic plot")

	bindings := map[string]string{
		"wind.finaltime":    "t-f",
		"wind.ejectiontime": "t-ej",
		"wind.ejectedmass":  "m-ej",
		"wind.velocity":     "v-ej",
		"wind.steps":        "n-steps",
		"output.tablepath":  "output",
		"output.plotpath":   "plot",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	return nil
}

func runGenerate(cmd *cobra.Command, settings *conf.Settings) error {
	if err := promptMissing(cmd.InOrStdin(), cmd.OutOrStdout(), &settings.Wind); err != nil {
		return err
	}

	if err := conf.ValidateSettings(settings); err != nil {
		return err
	}

	slog.Debug("computing wind table",
		"t_f", settings.Wind.FinalTime,
		"t_ej", settings.Wind.EjectionTime,
		"m_ej", settings.Wind.EjectedMass,
		"v_ej", settings.Wind.Velocity,
		"steps", settings.Wind.Steps)

	tbl := wind.Compute(wind.Params{
		FinalTime:    settings.Wind.FinalTime,
		EjectionTime: settings.Wind.EjectionTime,
		EjectedMass:  settings.Wind.EjectedMass,
		Velocity:     settings.Wind.Velocity,
		Steps:        settings.Wind.Steps,
	})

	if err := table.WriteFile(settings.Output.TablePath, tbl); err != nil {
		return fmt.Errorf("failed to write wind table: %w", err)
	}

	if err := plot.Render(settings.Output.PlotPath, tbl.Times, tbl.Luminosity); err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote wind table to %s\n", settings.Output.TablePath)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved plot to %s\n", settings.Output.PlotPath)

	return nil
}
