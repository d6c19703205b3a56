// Package config provides the plugin's optional global configuration.
//
// Per-key settings (credential, repository, interval) come from the
// host's property inspector; this file covers the knobs that apply to
// the whole process. Everything has a sensible default, so running
// without a config file is the normal case.
//
// Example configuration:
//
//	api_base_url: https://github.example.com/api/v3
//	request_timeout: 10s
//	log_level: debug
//	log_file: /tmp/decklight.log
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Parse for fields left unset.
const (
	DefaultAPIBaseURL     = "https://api.github.com"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
)

// Config is the root configuration structure.
//
// It maps directly to the YAML configuration file. Use [Load] or
// [Parse] to create one, or [Default] for the no-file case.
type Config struct {
	// APIBaseURL is the provider API root. Override it for GitHub
	// Enterprise installs.
	APIBaseURL string `yaml:"api_base_url"`

	// RequestTimeout is the hard upper bound on one status request.
	// Accepts duration strings like "10s", "500ms".
	RequestTimeout Duration `yaml:"request_timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFile is where structured logs go. The host swallows the
	// plugin's stdout, so logging to a file is the only way to see
	// anything. Empty means a file in the OS temp directory.
	LogFile string `yaml:"log_file"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		APIBaseURL:     DefaultAPIBaseURL,
		RequestTimeout: Duration(DefaultRequestTimeout),
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads and parses a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data, applies defaults for unset
// fields, and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = Duration(DefaultRequestTimeout)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api_base_url %q is not a valid absolute URL", c.APIBaseURL)
	}

	if c.RequestTimeout.Duration() <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout.Duration())
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts LogLevel to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
}
