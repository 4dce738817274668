package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/logsleuth/logsleuth/internal/core/constants"
)

// Config holds the detection parameters consumed by the analyzer. The log
// file path itself is a positional argument, not configuration.
type Config struct {
	Level           string `mapstructure:"level"`
	Threshold       int    `mapstructure:"threshold"`
	IntervalSeconds int    `mapstructure:"interval"`
	Output          string `mapstructure:"output"`
}

// Load reads configuration from defaults, an optional config file and
// LOGSLEUTH_* environment variables, in increasing precedence. Flag values
// are applied on top by the command layer.
func Load(configPath string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix("LOGSLEUTH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("level", constants.DefaultLevel)
	v.SetDefault("threshold", constants.DefaultThreshold)
	v.SetDefault("interval", constants.DefaultIntervalSeconds)
	v.SetDefault("output", "table")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		v.SetConfigFile(filepath.Join(home, ".config", "logsleuth", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects parameter combinations the detector does not defend
// against. Zero or negative threshold/interval never reach detection.
func (c Config) Validate() error {
	if c.Level == "" {
		return errors.New("level must not be empty")
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be a positive integer, got %d", c.Threshold)
	}
	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("interval must be a positive number of seconds, got %d", c.IntervalSeconds)
	}
	switch c.Output {
	case "table", "json", "csv", "summary":
	default:
		return fmt.Errorf("unknown output format %q (table, json, csv, summary)", c.Output)
	}
	return nil
}
