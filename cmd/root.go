package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jkoskela/windgen/cmd/generate"
	"github.com/jkoskela/windgen/cmd/inspect"
	windplot "github.com/jkoskela/windgen/cmd/plot"
	"github.com/jkoskela/windgen/internal/conf"
	"github.com/jkoskela/windgen/internal/logging"
)

// RootCommand creates and returns the root command
func RootCommand(ctx *conf.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "windgen",
		Short: "Wind table generator CLI",
		Long:  `Generate wind input tables in the wind_m060 column layout from four scalar physical inputs.`,
	}

	setupFlags(rootCmd, ctx.Settings)

	subcommands := []*cobra.Command{
		generate.Command(ctx),
		inspect.Command(ctx),
		windplot.Command(ctx),
	}
	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Sync the settings struct with viper so that command line
		// arguments take precedence over config file values.
		if err := conf.SyncViper(ctx.Settings); err != nil {
			return err
		}
		logging.Init(ctx.Settings)
		return nil
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
