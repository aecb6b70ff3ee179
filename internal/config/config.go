// Package config loads pkgcatalog settings from YAML, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/git-pkgs/catalog/internal/core"
	"github.com/git-pkgs/catalog/internal/logging"
)

// Environment variables read by ApplyEnv.
const (
	EnvEndpoint = "PKGCATALOG_ENDPOINT"
	EnvLogLevel = "PKGCATALOG_LOG_LEVEL"
	EnvTimeout  = "PKGCATALOG_TIMEOUT"
	EnvConfig   = "PKGCATALOG_CONFIG"
)

const (
	DefaultShareBase = "https://pkgs.example.org/packages"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "pkgcatalog"
)

var (
	ErrInvalidPageSize  = errors.New("page_size must be >= 1")
	ErrInvalidRetries   = errors.New("fetch.max_retries cannot be negative")
	ErrInvalidTimeout   = errors.New("fetch.timeout cannot be negative")
	ErrInvalidLogFormat = errors.New("logging.format must be 'console' or 'json'")
)

// Config is the full pkgcatalog configuration.
type Config struct {
	Endpoint  string        `yaml:"endpoint"`
	PageSize  int           `yaml:"page_size"`
	ShareBase string        `yaml:"share_base"`
	Fetch     FetchConfig   `yaml:"fetch"`
	Logging   LoggingConfig `yaml:"logging"`
}

// FetchConfig controls the single index request.
type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	UserAgent  string        `yaml:"user_agent"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PageSize:  core.DefaultPageSize,
		ShareBase: DefaultShareBase,
		Fetch: FetchConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatConsole,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pkgcatalog/config.yaml, or "" when no
// user config directory exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pkgcatalog", "config.yaml")
}

// Load reads path over the defaults. When path is empty the default location
// is tried and a missing file there is not an error; an explicitly named
// file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.Endpoint = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Fetch.Timeout = d
	}
	return nil
}

// parseTimeout accepts a Go duration or a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return ErrInvalidPageSize
	}
	if c.Fetch.MaxRetries < 0 {
		return ErrInvalidRetries
	}
	if c.Fetch.Timeout < 0 {
		return ErrInvalidTimeout
	}
	switch c.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}

// ToLoggingConfig converts the logging section for logging.New.
func (c *Config) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		File:   c.Logging.File,
	}
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
