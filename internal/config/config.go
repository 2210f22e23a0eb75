// Package config holds the settings shared by the htmlfold binaries.
package config

import (
	"errors"
	"fmt"
)

const (
	DefaultMaxRanges = 5000

	minVerbosity = -4
	maxVerbosity = 4
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// MaxRanges caps the number of folding ranges per document, 0 disables
	// the limit.
	MaxRanges int `koanf:"max_ranges"`

	Log LogConfig `koanf:"log"`
}

type LogConfig struct {
	Verbosity int    `koanf:"verbosity"`
	File      string `koanf:"file"`
}

func Default() Config {
	return Config{
		MaxRanges: DefaultMaxRanges,
	}
}

func (c *Config) Validate() error {
	if c.MaxRanges < 0 {
		return fmt.Errorf("%w: max_ranges must not be negative, got %d", ErrInvalidConfig, c.MaxRanges)
	}

	if c.Log.Verbosity < minVerbosity || c.Log.Verbosity > maxVerbosity {
		return fmt.Errorf("%w: log.verbosity must be between %d and %d, got %d",
			ErrInvalidConfig, minVerbosity, maxVerbosity, c.Log.Verbosity)
	}

	return nil
}

// LogPath returns the log file as expected by commonlog.Configure, nil means
// stderr.
func (c *Config) LogPath() *string {
	if c.Log.File == "" {
		return nil
	}
	path := c.Log.File
	return &path
}
