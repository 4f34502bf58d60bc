// SPDX-License-Identifier: MIT

/*
Package settings reads duplicate-manager configuration from YAML, from a
loosely typed keyword map, and from DUPGUARD_* environment variables, and
turns it into duplicates.Options and a zerolog.Logger.
*/
package settings

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/katalvlaran/dupguard/duplicates"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration reports a value that cannot configure a Manager:
// a negative decimals count, an unknown log level, an unknown keyword or a
// value of the wrong type.
var ErrInvalidConfiguration = errors.New("settings: invalid configuration")

// Config is the user-facing configuration of a duplicate Manager.
type Config struct {
	// number of decimal places kept before comparing coordinates
	Decimals int `yaml:"decimals" mapstructure:"decimals"`
	// zerolog level name: trace, debug, info, warn, error, disabled ...
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// rotating log file; empty writes to the writer passed to Logger
	LogFile string `yaml:"log_file" mapstructure:"log_file"`
	// report lookups and hits to Prometheus
	Metrics bool `yaml:"metrics" mapstructure:"metrics"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Decimals: duplicates.DefaultDecimals,
		LogLevel: zerolog.LevelInfoValue,
		Metrics:  duplicates.DefaultMetrics,
	}
}

// Parse decodes a YAML document over the defaults. Environment variables are
// not consulted.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("settings: parse: %w", err)
	}

	return validated(cfg)
}

// FromMap decodes keyword arguments such as {"decimals": 2} over the defaults.
// Values may be given as strings ("2", "true"); unknown keys are an error.
func FromMap(kwargs map[string]any) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("settings: %w", err)
	}
	if err = dec.Decode(kwargs); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return validated(cfg)
}

// validated returns cfg when it passes Validate, the zero Config otherwise.
func validated(cfg Config) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects negative decimals and unknown log levels.
func (c Config) Validate() error {
	if c.Decimals < 0 {
		return fmt.Errorf("%w: decimals %d is negative", ErrInvalidConfiguration, c.Decimals)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfiguration, err)
	}

	return nil
}

// ManagerOptions maps c onto duplicates.Options, routing events to logger.
func (c Config) ManagerOptions(logger zerolog.Logger) []duplicates.Option {
	return []duplicates.Option{
		duplicates.WithDecimals(c.Decimals),
		duplicates.WithMetrics(c.Metrics),
		duplicates.WithLogger(logger),
	}
}
