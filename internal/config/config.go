// Package config loads mdhtml command line defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"pkt.systems/mdhtml"
)

// Config holds defaults for the mdhtml command. Flags given on the command
// line take precedence over every field.
type Config struct {
	Dialect          string `yaml:"dialect"`
	StripFrontMatter bool   `yaml:"strip_front_matter"`
	Standalone       bool   `yaml:"standalone"`
	Stylesheet       string `yaml:"stylesheet,omitempty"`
	Width            int    `yaml:"width,omitempty"`
	CacheLimit       int    `yaml:"cache_limit"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Dialect:    mdhtml.DefaultDialect().Name(),
		CacheLimit: mdhtml.DefaultCacheLimit,
	}
}

// Path returns the default config file location. It is a variable so tests
// can redirect it.
var Path = func() string {
	return filepath.Join(xdg.ConfigHome, "mdhtml", "config.yaml")
}

// Load reads path, or Path() when path is empty. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks the dialect name and numeric bounds.
func (c *Config) Validate() error {
	if _, ok := mdhtml.DialectByName(c.Dialect); !ok {
		return fmt.Errorf("unknown dialect %q", c.Dialect)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative")
	}
	if c.CacheLimit < 0 {
		return fmt.Errorf("cache_limit must not be negative")
	}
	return nil
}

// ParserOptions converts the config into parser options.
func (c *Config) ParserOptions() []mdhtml.Option {
	dialect, ok := mdhtml.DialectByName(c.Dialect)
	if !ok {
		dialect = mdhtml.DefaultDialect()
	}
	return []mdhtml.Option{
		mdhtml.WithDialect(dialect),
		mdhtml.WithCacheLimit(c.CacheLimit),
		mdhtml.WithStripFrontMatter(c.StripFrontMatter),
	}
}
