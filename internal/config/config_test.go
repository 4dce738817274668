package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.Level)
	assert.Equal(t, 3, cfg.Threshold)
	assert.Equal(t, 30, cfg.IntervalSeconds)
	assert.Equal(t, "table", cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yml")
	content := "level: WARN\nthreshold: 10\ninterval: 60\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)

	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.Level)
	assert.Equal(t, 10, cfg.Threshold)
	assert.Equal(t, 60, cfg.IntervalSeconds)
	assert.Equal(t, "table", cfg.Output, "unset keys keep their defaults")
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOGSLEUTH_LEVEL", "FATAL")
	t.Setenv("LOGSLEUTH_THRESHOLD", "7")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "FATAL", cfg.Level)
	assert.Equal(t, 7, cfg.Threshold)
}

func TestValidate(t *testing.T) {
	valid := Config{Level: "ERROR", Threshold: 3, IntervalSeconds: 30, Output: "table"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, true},
		{"negative threshold", func(c *Config) { c.Threshold = -1 }, true},
		{"zero interval", func(c *Config) { c.IntervalSeconds = 0 }, true},
		{"negative interval", func(c *Config) { c.IntervalSeconds = -30 }, true},
		{"empty level", func(c *Config) { c.Level = "" }, true},
		{"unknown output", func(c *Config) { c.Output = "xml" }, true},
		{"json output", func(c *Config) { c.Output = "json" }, false},
		{"csv output", func(c *Config) { c.Output = "csv" }, false},
		{"summary output", func(c *Config) { c.Output = "summary" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
