// conf/defaults.go default values for settings
package conf

import "github.com/spf13/viper"

// Sets default values for the configuration. The four physical inputs
// of the wind table have no defaults on purpose: the generate command
// prompts for any of them that is not supplied by flag or config file.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "windgen")
	viper.SetDefault("main.log.enabled", false)
	viper.SetDefault("main.log.path", "windgen.log")
	viper.SetDefault("main.log.maxsize", 10)
	viper.SetDefault("main.log.json", false)

	viper.SetDefault("wind.steps", 1000)

	viper.SetDefault("output.tablepath", "wind_generated")
	viper.SetDefault("output.plotpath", "wind_generated.png")
}
