// Package config holds the settings of the adaptation-engine command,
// read through viper from flags, ADAPTATION_* environment variables and an
// optional adaptation.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"adaptation-engine/capability"
)

// EnvPrefix is the prefix of environment overrides, e.g. ADAPTATION_LOG_LEVEL
// for log.level.
const EnvPrefix = "ADAPTATION"

// FileName is the config file name searched without extension.
const FileName = "adaptation"

// Config is the full command configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	// DistanceCacheSize bounds the capability distance cache.
	DistanceCacheSize int `mapstructure:"distance_cache_size"`
	// Manifest is the default manifest path for commands without one.
	Manifest string `mapstructure:"manifest"`
	// Packages are extra Go package patterns loaded before the manifest's.
	Packages []string `mapstructure:"packages"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format"`
}

// MetricsConfig controls prometheus collection.
type MetricsConfig struct {
	// Enabled registers adaptation metrics and prints them after a command.
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		DistanceCacheSize: capability.DefaultDistanceCacheSize,
	}
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	v.SetDefault("distance_cache_size", defaults.DistanceCacheSize)
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("packages", defaults.Packages)
}

// Init prepares v: defaults, environment binding and, when present, the
// config file. An explicit file that cannot be read is an error; a missing
// default file is not.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// log.level is read from ADAPTATION_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	var errs []error

	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	if c.DistanceCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("distance_cache_size: must be positive, got %d", c.DistanceCacheSize))
	}

	return errors.Join(errs...)
}
