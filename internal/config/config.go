// Package config loads ccplug configuration from defaults, rc files, and
// CCPLUG_* environment variables, in that precedence order.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the ccplug configuration.
type Config struct {
	Format         string   `mapstructure:"format"`
	Output         string   `mapstructure:"output"`
	Quiet          bool     `mapstructure:"quiet"`
	Verbose        bool     `mapstructure:"verbose"`
	SkipValidation bool     `mapstructure:"skipValidation"`
	Force          bool     `mapstructure:"force"`
	Exclude        []string `mapstructure:"exclude"`
}

// LoadConfig loads configuration from defaults, an rc file when present, and
// environment variables.
func LoadConfig() (*Config, error) {
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("skipValidation", false)
	viper.SetDefault("force", false)

	// First rc file that reads successfully wins.
	configPaths := []string{".ccplugrc.json", ".ccplugrc.yaml", ".ccplugrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("CCPLUG")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}
	return nil
}
