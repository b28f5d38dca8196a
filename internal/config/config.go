// Package config loads catalogview settings from defaults, a YAML file, a .env
// file, and CATALOGVIEW_* environment variables, in increasing precedence.
// CLI flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/catalogview/internal/pagination"
)

// Defaults.
const (
	DefaultAPIURL   = "https://api.escuelajs.co/api/v1/products"
	DefaultTimeout  = 15 * time.Second
	DefaultLogLevel = "info"
	configFileName  = "config.yaml"
)

// Validation errors.
var (
	ErrInvalidAPIURL   = errors.New("source.api_url must be an absolute http(s) URL")
	ErrInvalidTimeout  = errors.New("source.timeout must be > 0")
	ErrInvalidPageSize = errors.New("view.page_size must be one of 5, 10, 20, 50")
	ErrInvalidLogLevel = errors.New("logging.level is not a valid level")
	ErrInvalidFormat   = errors.New("logging.format must be 'console' or 'json'")
)

// Config is the effective catalogview configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig describes where products are fetched from.
type SourceConfig struct {
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ViewConfig holds initial view parameters.
type ViewConfig struct {
	PageSize int `yaml:"page_size"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Source: SourceConfig{
			APIURL:  DefaultAPIURL,
			Timeout: DefaultTimeout,
		},
		View: ViewConfig{
			PageSize: pagination.DefaultPageSize,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: "console",
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at path
// (skipped when it does not exist), then .env and environment overrides.
// An empty path means DefaultConfigPath.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Source.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.Source.APIURL)
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeout, c.Source.Timeout)
	}
	if !pagination.IsPageSizeOption(c.View.PageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.View.PageSize)
	}
	return c.Logging.Validate()
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
