// Package config loads the optional reldate defaults file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/reugn/reldate/logger"
	"github.com/reugn/reldate/reldate"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "RELDATE_CONFIG"

// Config holds the defaults applied when the corresponding flags are not
// given on the command line.
type Config struct {
	// Count is the number of dates to print.
	Count int `yaml:"count"`
	// Layout is the Go time layout used to print dates.
	Layout string `yaml:"layout"`
	// LogLevel is one of trace, debug, info, warn, error or off.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Count:    reldate.DefaultCount,
		Layout:   reldate.DefaultLayout,
		LogLevel: "warn",
	}
}

// Level returns the parsed LogLevel.
func (c Config) Level() (logger.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

// Validate checks the configured values.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count %d must be positive", c.Count)
	}
	if c.Layout == "" {
		return errors.New("layout must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// DefaultPath returns the path used when neither a flag nor EnvPath names
// a config file: reldate/config.yaml under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "reldate", "config.yaml")
}

// Load reads the config file at path over the defaults. If path is empty
// EnvPath and then DefaultPath are consulted; a missing file at an implied
// path is not an error, but an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPath)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logger.Debug("Loaded config", "path", path, "count", cfg.Count, "layout", cfg.Layout)
	return cfg, nil
}
