// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dex configuration.
	DefaultConfigDir = ".dex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultLogFile is the log file used while the interactive browser owns the terminal.
	DefaultLogFile = "dex.log"

	// DefaultEndpoint is where the catalog is published.
	DefaultEndpoint = "https://raw.githubusercontent.com/Josstoh/res508-qualite-dev-android/main/rest/pokemons.json"
	// DefaultTimeout bounds a single fetch round trip.
	DefaultTimeout = 30 * time.Second
	// DefaultContentType is the only media type accepted unless configured otherwise.
	DefaultContentType = "application/json"

	// EnvPrefix is prepended to every environment override.
	EnvPrefix = "DEX_"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Config holds static configuration (read-only after init).
type Config struct {
	Catalog CatalogConfig `yaml:"catalog,omitempty" envPrefix:"CATALOG_"`
	Log     LogConfig     `yaml:"log,omitempty" envPrefix:"LOG_"`
}

// CatalogConfig holds configuration for the remote catalog endpoint.
type CatalogConfig struct {
	Endpoint string        `yaml:"endpoint,omitempty" env:"ENDPOINT"`
	Timeout  time.Duration `yaml:"timeout,omitempty" env:"TIMEOUT"`

	// ContentTypes lists the media types accepted as a JSON catalog response.
	ContentTypes []string `yaml:"content_types,omitempty" env:"CONTENT_TYPES" envSeparator:","`
}

// MarshalYAML writes the timeout as a duration string ("30s") rather than
// nanoseconds, matching what Load accepts.
func (c CatalogConfig) MarshalYAML() (any, error) {
	type catalogYAML struct {
		Endpoint     string   `yaml:"endpoint,omitempty"`
		Timeout      string   `yaml:"timeout,omitempty"`
		ContentTypes []string `yaml:"content_types,omitempty"`
	}

	out := catalogYAML{
		Endpoint:     c.Endpoint,
		ContentTypes: c.ContentTypes,
	}
	if c.Timeout != 0 {
		out.Timeout = c.Timeout.String()
	}
	return out, nil
}

// LogConfig holds configuration for structured logging.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" env:"LEVEL"`
	Format string `yaml:"format,omitempty" env:"FORMAT"`
	// File is where logs go. Empty means stderr.
	File string `yaml:"file,omitempty" env:"FILE"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Endpoint:     DefaultEndpoint,
			Timeout:      DefaultTimeout,
			ContentTypes: []string{DefaultContentType},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from the .dex directory in the given path.
// A missing config file is not an error: defaults plus environment overrides apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies DEX_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Catalog.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid catalog endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("catalog endpoint must be an absolute http(s) URL, got %q", c.Catalog.Endpoint)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog timeout must be positive, got %s", c.Catalog.Timeout)
	}
	if len(c.Catalog.ContentTypes) == 0 {
		return errors.New("at least one catalog content type is required")
	}
	if !slices.Contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("invalid log level %q, valid levels: %v", c.Log.Level, validLogLevels)
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		return fmt.Errorf("invalid log format %q, valid formats: %v", c.Log.Format, validLogFormats)
	}
	return nil
}

// ConfigDir returns the path to the .dex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// LogFilePath returns the default log file path used by the interactive browser.
func LogFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultLogFile)
}

// Exists checks if a dex config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
