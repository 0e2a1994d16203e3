package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, cfg.Database.Path, cfg.DatabaseDSN())
	assert.Equal(t, 30, cfg.Database.CleanupDays)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
api_keys:
  openweather: yaml-key
weather:
  units: metric
preferences:
  temperature_unit: C
  wind_unit: m/s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml-key", cfg.APIKeys.OpenWeather)
	assert.Equal(t, "metric", cfg.Weather.Units)
	assert.Equal(t, "C", cfg.Preferences.TemperatureUnit)
	// untouched sections keep their defaults
	assert.Equal(t, 10, cfg.Weather.TimeoutSeconds)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[database]
driver = "postgres"
dsn = "host=localhost user=joe dbname=pit sslmode=disable"
cleanup_days = 7

[logger]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 7, cfg.Database.CleanupDays)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "host=localhost user=joe dbname=pit sslmode=disable", cfg.DatabaseDSN())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "weather:\n  timeout_seconds: 5\n")
	t.Setenv("WD_WEATHER_TIMEOUT_SECONDS", "3")
	t.Setenv("OPENWEATHER_API_KEY", "env-key")
	t.Setenv("WD_SERVER_ADDR", "127.0.0.1:9999")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Weather.TimeoutSeconds)
	assert.Equal(t, "env-key", cfg.APIKeys.OpenWeather)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load(writeFile(t, "config.ini", "x=1"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"units", func(c *AppConfig) { c.Weather.Units = "kelvin-ish" }},
		{"timeout", func(c *AppConfig) { c.Weather.TimeoutSeconds = 0 }},
		{"temperature unit", func(c *AppConfig) { c.Preferences.TemperatureUnit = "K" }},
		{"wind unit", func(c *AppConfig) { c.Preferences.WindUnit = "knots" }},
		{"pressure unit", func(c *AppConfig) { c.Preferences.PressureUnit = "bar" }},
		{"driver", func(c *AppConfig) { c.Database.Driver = "oracle" }},
		{"postgres without dsn", func(c *AppConfig) { c.Database.Driver = "postgres" }},
		{"cleanup days", func(c *AppConfig) { c.Database.CleanupDays = -1 }},
		{"log level", func(c *AppConfig) { c.Logger.Level = "loud" }},
		{"log format", func(c *AppConfig) { c.Logger.Format = "xml" }},
		{"retention schedule", func(c *AppConfig) { c.Retention.Schedule = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
