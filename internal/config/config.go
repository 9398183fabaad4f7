// Package config handles resolving configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to upper-cased config keys when reading overrides
// from the environment (e.g. SYLLABUS_ADDRESS).
const EnvPrefix = "SYLLABUS"

// Config is the resolved configuration of the service.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Address is the host:port the API server listens on.
	Address string `mapstructure:"address" yaml:"address"`
	// DBFilepath is the location of the SQLite database file.
	DBFilepath string `mapstructure:"db_filepath" yaml:"db_filepath"`
	// DevMode enables request logging, source locations in logs and verbose
	// server fault responses.
	DevMode bool `mapstructure:"dev_mode" yaml:"dev_mode"`
	// BodyLimit caps the size of request bodies (e.g. "1M").
	BodyLimit string `mapstructure:"body_limit" yaml:"body_limit"`
	// ShutdownTimeout bounds graceful shutdown of the server.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Default returns a version of the config with all default values populated.
func Default() *Config {
	return &Config{
		LogLevel:        "info",
		Address:         "localhost:9999",
		DBFilepath:      filepath.Join(xdg.DataHome, "syllabus", "db.sqlite"),
		DevMode:         false,
		BodyLimit:       "1M",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load loads a YAML configuration file from a path, merges it with defaults and
// environment overrides, and validates it for completeness.
func Load(path string) (*Config, error) {
	vpr := viper.New()
	vpr.SetConfigFile(path)
	vpr.SetConfigType("yaml")
	vpr.SetEnvPrefix(EnvPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	def := Default()
	vpr.SetDefault("log_level", def.LogLevel)
	vpr.SetDefault("address", def.Address)
	vpr.SetDefault("db_filepath", def.DBFilepath)
	vpr.SetDefault("dev_mode", def.DevMode)
	vpr.SetDefault("body_limit", def.BodyLimit)
	vpr.SetDefault("shutdown_timeout", def.ShutdownTimeout)

	if err := vpr.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := vpr.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML, suitable for writing a new config file.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	return data, nil
}

// Validate reports every problem with the config.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := ParseLogLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	if c.Address == "" {
		errs = append(errs, errors.New("address must be set"))
	}
	if c.DBFilepath == "" {
		errs = append(errs, errors.New("db_filepath must be set"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}
	return errors.Join(errs...)
}

// ParseLogLevel resolves a config log level name.
func ParseLogLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
