// Package conf handles windgen configuration: defaults, config file
// discovery and loading, and settings validation.
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// LogConfig controls the optional log file output.
type LogConfig struct {
	Enabled bool   // true to mirror log output to a rotating file
	Path    string // path to the log file
	MaxSize int    // log file size in megabytes before rotation
	JSON    bool   // true for structured JSON log output
}

// MainConfig holds settings that apply to the whole application.
type MainConfig struct {
	Name string // name used to identify this windgen instance in logs
	Log  LogConfig
}

// WindConfig holds the physical inputs of the wind table.
type WindConfig struct {
	FinalTime    float64 // t_f, final time in years
	EjectionTime float64 // t_ej, ejection time scale in years
	EjectedMass  float64 // M_ej, ejected mass in solar masses
	Velocity     float64 // v_ej, ejection velocity in km/s
	Steps        int     // number of time samples between 0 and t_f, inclusive
}

// OutputConfig holds the output file locations.
type OutputConfig struct {
	TablePath string // path of the generated wind table
	PlotPath  string // path of the diagnostic plot
}

// Settings is the top level configuration struct.
type Settings struct {
	Debug bool // true to enable debug output

	Main   MainConfig
	Wind   WindConfig
	Output OutputConfig
}

// Context holds the application state shared by commands.
type Context struct {
	Settings *Settings
}

// Load reads the configuration file and registered defaults into a new
// Context.
func Load() (*Context, error) {
	var settings Settings

	ctx := &Context{
		Settings: &settings,
	}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(ctx.Settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	return ctx, nil
}

// SyncViper re-unmarshals viper values into settings so that command
// line flags bound after Load take precedence over config file values.
func SyncViper(settings *Settings) error {
	if err := viper.Unmarshal(settings); err != nil {
		return fmt.Errorf("error syncing config: %w", err)
	}
	return nil
}

func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := getDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// config file not found, create config with defaults
			return createDefaultConfig()
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// getDefaultConfigPaths returns a list of default config paths for the current OS
func getDefaultConfigPaths() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error fetching user directory: %w", err)
	}

	var configPaths []string
	switch runtime.GOOS {
	case "windows":
		configPaths = []string{
			".",
			filepath.Join(homeDir, "AppData", "Local", "windgen"),
		}
	default:
		configPaths = []string{
			filepath.Join(homeDir, ".config", "windgen"),
			"/etc/windgen",
			".",
		}
	}

	return configPaths, nil
}

// createDefaultConfig writes a config file populated with the registered
// defaults to the primary config path.
func createDefaultConfig() error {
	configPaths, err := getDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	configPath := filepath.Join(configPaths[0], "config.yaml")

	// Marshal only the registered defaults. The physical wind inputs
	// have none, so they stay out of the file and the generate command
	// keeps prompting for them.
	out, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return fmt.Errorf("error marshaling default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("error creating directories for config file: %w", err)
	}
	if err := os.WriteFile(configPath, out, 0o644); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	fmt.Println("Created default config file at:", configPath)
	return viper.ReadInConfig()
}
