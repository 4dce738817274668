package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logsleuth/logsleuth/internal/analyzer"
	"github.com/logsleuth/logsleuth/internal/config"
	"github.com/logsleuth/logsleuth/internal/util"
)

var (
	// Logging related
	debug bool

	// Configuration
	configFile string

	// Detection parameters
	level           string
	threshold       int
	intervalSeconds int

	// Output related
	outputFormat string
	showEvents   bool

	rootCmd = &cobra.Command{
		Use:   "logsleuth <log-file> [flags]",
		Short: "Log frequency anomaly detection tool",
		Long: `logsleuth analyzes a plaintext log file and flags time buckets in which
the number of entries at a given severity level exceeds a threshold.

Lines must look like "YYYY-MM-DD HH:MM:SS LEVEL message"; anything else is
silently ignored.

Examples:
  logsleuth app.log                                   # Defaults: ERROR, threshold 3, 30s buckets
  logsleuth app.log --level WARN --threshold 10       # WARN spikes above 10 per bucket
  logsleuth app.log --interval 60 --output json       # 60s buckets, JSON report
  logsleuth app.log --show-events                     # Also dump the parsed events`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}
)

const defaultLogFile = "~/.logsleuth/logs/app.log"

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Config file path (default ~/.config/logsleuth/config.yml)")

	// Detection parameters
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "",
		"Log level to analyze (default ERROR)")
	rootCmd.PersistentFlags().IntVarP(&threshold, "threshold", "t", 0,
		"Anomaly threshold: bucket counts above this are reported (default 3)")
	rootCmd.PersistentFlags().IntVarP(&intervalSeconds, "interval", "i", 0,
		"Bucket interval in seconds (default 30)")

	// Output configuration
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().BoolVar(&showEvents, "show-events", false,
		"Print the full parsed event collection before the report")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	return analyzer.New(cfg).Run()
}

// buildConfig layers flag values over the viper configuration, initializes
// logging and validates the result.
func buildConfig(cmd *cobra.Command, logFile string) (*analyzer.Config, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	diagnosticLog := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(diagnosticLog)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, diagnosticLog, debug)

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Explicit flags win over file and environment values.
	if cmd.Flags().Changed("level") {
		cfg.Level = level
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = threshold
	}
	if cmd.Flags().Changed("interval") {
		cfg.IntervalSeconds = intervalSeconds
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &analyzer.Config{
		LogFile:         expandPath(logFile),
		Level:           cfg.Level,
		Threshold:       cfg.Threshold,
		IntervalSeconds: cfg.IntervalSeconds,
		OutputFormat:    cfg.Output,
		ShowEvents:      showEvents,
	}, nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
