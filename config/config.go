package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dockicon/icon"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "dockicon.yaml"
	DefaultEnvPath    = ".env"
	defaultResampler  = "lanczos"
	defaultDebounceMs = 500
)

// Config represents the application configuration
type Config struct {
	Input     string      `yaml:"input"`
	Output    string      `yaml:"output"`
	Resampler string      `yaml:"resampler"`
	Watch     WatchConfig `yaml:"watch"`
}

type WatchConfig struct {
	Enabled    bool `yaml:"enabled"`
	DebounceMs int  `yaml:"debounce_ms"`
}

// Default returns a config with only defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file.
// A missing file is not an error; defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadEnv loads a .env file (if present) and applies DOCKICON_* overrides
func (c *Config) LoadEnv(envPath string) error {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	if v := os.Getenv("DOCKICON_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("DOCKICON_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("DOCKICON_RESAMPLER"); v != "" {
		c.Resampler = v
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Resampler == "" {
		c.Resampler = defaultResampler
	}
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = defaultDebounceMs
	}
}

// Debounce returns the watch debounce interval
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if c.Input == c.Output {
		return fmt.Errorf("output must differ from input")
	}
	if _, err := icon.ResamplerByName(c.Resampler); err != nil {
		return err
	}
	if c.Watch.DebounceMs <= 0 {
		return fmt.Errorf("watch.debounce_ms must be > 0")
	}
	return nil
}
