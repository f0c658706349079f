package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level termgrid configuration.
type Config struct {
	Output Output `mapstructure:"output"`
	Table  Table  `mapstructure:"table"`
	Bar    Bar    `mapstructure:"bar"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Table defines table rendering preferences. HeaderColor and
// BorderColor are hue/saturation/lightness triples.
type Table struct {
	Padding     int       `mapstructure:"padding"`
	HeaderColor []float64 `mapstructure:"header_color"`
	BorderColor []float64 `mapstructure:"border_color"`
}

// Bar defines progress bar preferences.
type Bar struct {
	Width int `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("table.padding", DefaultTable.Padding)
	v.SetDefault("table.header_color", DefaultTable.HeaderColor)
	v.SetDefault("table.border_color", DefaultTable.BorderColor)
	v.SetDefault("bar.width", DefaultBar.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
