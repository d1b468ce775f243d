package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Input   InputConfig   `json:"input"`
	Display DisplayConfig `json:"display"`
	Report  ReportConfig  `json:"report"`
}

// InputConfig controls where sensor packages come from
type InputConfig struct {
	// Path to a JSON packages file; empty means the built-in batch
	Path string `json:"path"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	// Metric charted on the overview screen: "calories", "speed" or "distance"
	ChartMetric string `json:"chart_metric"`
}

// ReportConfig holds batch reporting behavior
type ReportConfig struct {
	// Abort on the first package that fails to decode
	StopOnError bool `json:"stop_on_error"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			ChartMetric: "calories",
		},
	}
}

// Load reads the configuration from ~/.fittrack/config.json.
// FITTRACK_CONFIG overrides the file path.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.ChartMetric == "" {
		cfg.Display.ChartMetric = defaults.Display.ChartMetric
	}

	return &cfg, nil
}

// Validate checks if the config has usable values
func (c *Config) Validate() error {
	if c.Display.ChartMetric != "" &&
		c.Display.ChartMetric != "calories" &&
		c.Display.ChartMetric != "speed" &&
		c.Display.ChartMetric != "distance" {
		return fmt.Errorf("display.chart_metric must be \"calories\", \"speed\" or \"distance\", got %q", c.Display.ChartMetric)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if path := os.Getenv("FITTRACK_CONFIG"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fittrack", "config.json"), nil
}
