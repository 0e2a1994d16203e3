package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override except the API key
const EnvPrefix = "WD_"

// APIKeysConfig holds third-party credentials
type APIKeysConfig struct {
	OpenWeather string `yaml:"openweather" toml:"openweather" env:"OPENWEATHER_API_KEY"`
}

// WeatherConfig controls the upstream weather call
type WeatherConfig struct {
	BaseURL        string `yaml:"base_url" toml:"base_url" env:"BASE_URL"`
	Units          string `yaml:"units" toml:"units" env:"UNITS"`
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds" env:"TIMEOUT_SECONDS"`
}

// PreferencesConfig holds display preferences
type PreferencesConfig struct {
	TemperatureUnit string `yaml:"temperature_unit" toml:"temperature_unit" env:"TEMPERATURE_UNIT"`
	WindUnit        string `yaml:"wind_unit" toml:"wind_unit" env:"WIND_UNIT"`
	PressureUnit    string `yaml:"pressure_unit" toml:"pressure_unit" env:"PRESSURE_UNIT"`
	Theme           string `yaml:"theme" toml:"theme" env:"THEME"`
}

// DatabaseConfig selects the storage engine
type DatabaseConfig struct {
	Driver      string `yaml:"driver" toml:"driver" env:"DRIVER"`
	DSN         string `yaml:"dsn" toml:"dsn" env:"DSN"`
	Path        string `yaml:"path" toml:"path" env:"PATH"`
	CleanupDays int    `yaml:"cleanup_days" toml:"cleanup_days" env:"CLEANUP_DAYS"`
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string `yaml:"level" toml:"level" env:"LEVEL"`
	Format   string `yaml:"format" toml:"format" env:"FORMAT"`
	SaveToDB bool   `yaml:"save_to_db" toml:"save_to_db" env:"SAVE_TO_DB"`
}

// ServerConfig configures the JSON API
type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr" env:"ADDR"`
}

// RetentionConfig configures the pruning schedule
type RetentionConfig struct {
	Schedule string `yaml:"schedule" toml:"schedule" env:"SCHEDULE"`
	Enabled  bool   `yaml:"enabled" toml:"enabled" env:"ENABLED"`
}

// AppConfig represents the complete configuration structure for YAML/TOML files
type AppConfig struct {
	APIKeys     APIKeysConfig     `yaml:"api_keys" toml:"api_keys" envPrefix:"API_KEYS_"`
	Weather     WeatherConfig     `yaml:"weather" toml:"weather" envPrefix:"WEATHER_"`
	Preferences PreferencesConfig `yaml:"preferences" toml:"preferences" envPrefix:"PREFERENCES_"`
	Database    DatabaseConfig    `yaml:"database" toml:"database" envPrefix:"DATABASE_"`
	Logger      LoggerConfig      `yaml:"logger" toml:"logger" envPrefix:"LOGGER_"`
	Server      ServerConfig      `yaml:"server" toml:"server" envPrefix:"SERVER_"`
	Retention   RetentionConfig   `yaml:"retention" toml:"retention" envPrefix:"RETENTION_"`
}

// Default returns the built-in configuration
func Default() AppConfig {
	return AppConfig{
		Weather: WeatherConfig{
			BaseURL:        "https://api.openweathermap.org/data/2.5",
			Units:          "imperial",
			TimeoutSeconds: 10,
		},
		Preferences: PreferencesConfig{
			TemperatureUnit: "F",
			WindUnit:        "mph",
			PressureUnit:    "hPa",
			Theme:           "dark",
		},
		Database: DatabaseConfig{
			Driver:      "sqlite",
			Path:        filepath.Join("data", "weather_dominator.db"),
			CleanupDays: 30,
		},
		Logger: LoggerConfig{
			Level:  "warn",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Retention: RetentionConfig{
			Schedule: "@daily",
			Enabled:  true,
		},
	}
}

// Load builds the configuration in order of preference:
//  1. explicit path (YAML or TOML by extension), else config/config.yaml, else config/config.toml
//  2. .env file and environment variables
//  3. built-in defaults for anything left unset
func Load(path string) (AppConfig, error) {
	cfg := Default()

	if err := loadFile(path, &cfg); err != nil {
		return AppConfig{}, err
	}

	if err := loadEnv(&cfg); err != nil {
		return AppConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *AppConfig) error {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config file not found: %s", path)
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			return loadTOMLConfig(path, cfg)
		case ".yaml", ".yml":
			return loadYAMLConfig(path, cfg)
		default:
			return fmt.Errorf("unsupported config file extension: %s", path)
		}
	}

	yamlPath := filepath.Join("config", "config.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return loadYAMLConfig(yamlPath, cfg)
	}

	tomlPath := filepath.Join("config", "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return loadTOMLConfig(tomlPath, cfg)
	}

	return nil
}

// loadYAMLConfig overlays a YAML file onto cfg
func loadYAMLConfig(path string, cfg *AppConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

// loadTOMLConfig overlays a TOML file onto cfg
func loadTOMLConfig(path string, cfg *AppConfig) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse TOML config: %w", err)
	}

	return nil
}

// loadEnv applies .env and process environment overrides. Unset variables
// leave the file/default value in place.
func loadEnv(cfg *AppConfig) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	// OPENWEATHER_API_KEY is read without the prefix for compatibility
	if err := env.Parse(&cfg.APIKeys); err != nil {
		return fmt.Errorf("failed to parse API key environment: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	return nil
}

// Timeout returns the weather call timeout
func (c AppConfig) Timeout() time.Duration {
	return time.Duration(c.Weather.TimeoutSeconds) * time.Second
}

// DatabaseDSN returns the DSN for the configured driver. For sqlite the
// file path is used when no DSN is set.
func (c AppConfig) DatabaseDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	if c.Database.Driver == "sqlite" {
		return c.Database.Path
	}
	return ""
}

// Validate validates the configuration values
func (c AppConfig) Validate() error {
	if !oneOf(c.Weather.Units, "imperial", "metric", "standard") {
		return fmt.Errorf("invalid weather units: %s (must be imperial, metric, or standard)", c.Weather.Units)
	}
	if c.Weather.TimeoutSeconds <= 0 {
		return fmt.Errorf("weather timeout_seconds must be positive, got %d", c.Weather.TimeoutSeconds)
	}
	if strings.TrimSpace(c.Weather.BaseURL) == "" {
		return fmt.Errorf("weather base_url cannot be empty")
	}

	if !oneOf(c.Preferences.TemperatureUnit, "F", "C") {
		return fmt.Errorf("invalid temperature_unit: %s (must be F or C)", c.Preferences.TemperatureUnit)
	}
	if !oneOf(c.Preferences.WindUnit, "mph", "m/s", "km/h") {
		return fmt.Errorf("invalid wind_unit: %s (must be mph, m/s, or km/h)", c.Preferences.WindUnit)
	}
	if !oneOf(c.Preferences.PressureUnit, "hPa", "inHg") {
		return fmt.Errorf("invalid pressure_unit: %s (must be hPa or inHg)", c.Preferences.PressureUnit)
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.DatabaseDSN() == "" {
			return fmt.Errorf("database path cannot be empty for sqlite")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("database dsn is required for postgres")
		}
	default:
		return fmt.Errorf("invalid database driver: %s (must be sqlite or postgres)", c.Database.Driver)
	}
	if c.Database.CleanupDays < 0 {
		return fmt.Errorf("database cleanup_days must be non-negative, got %d", c.Database.CleanupDays)
	}

	if !oneOf(strings.ToLower(c.Logger.Level), "debug", "info", "warn", "error") {
		return fmt.Errorf("invalid logger level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if !oneOf(strings.ToLower(c.Logger.Format), "json", "console") {
		return fmt.Errorf("invalid logger format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Retention.Enabled && strings.TrimSpace(c.Retention.Schedule) == "" {
		return fmt.Errorf("retention schedule cannot be empty when enabled")
	}

	return nil
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
