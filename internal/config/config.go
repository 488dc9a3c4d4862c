// Package config loads vlist settings from YAML files and the environment.
//
// Precedence, lowest to highest: built-in defaults, the user config file
// ($VLIST_HOME/config.yaml or ~/.vlist/config.yaml), an explicit --config
// overlay, VLIST_* environment variables, then CLI flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Default list settings.
const (
	DefaultBuffer     = 5
	DefaultItemHeight = 1
)

// Environment variables that override file settings.
const (
	EnvHome       = "VLIST_HOME"
	EnvBuffer     = "VLIST_BUFFER"
	EnvItemHeight = "VLIST_ITEM_HEIGHT"
	EnvLogLevel   = "VLIST_LOG_LEVEL"
	EnvLogFormat  = "VLIST_LOG_FORMAT"
)

// Validation errors.
var (
	ErrInvalidItemHeight = errors.New("list.item_height must be greater than zero")
	ErrInvalidBuffer     = errors.New("list.buffer must not be negative")
)

// Config is the root configuration document.
type Config struct {
	List    ListConfig    `yaml:"list"`
	Logging LoggingConfig `yaml:"logging"`
}

// ListConfig holds the virtual list settings.
type ListConfig struct {
	Buffer     int    `yaml:"buffer"`
	ItemHeight int    `yaml:"item_height"`
	Header     string `yaml:"header,omitempty"`
}

// New returns a Config with defaults, merged with the user config file when
// one exists, and environment overrides applied. A user file that cannot be
// read or parsed is skipped; Load reports it.
func New() *Config {
	cfg, _ := newFromUserFile()
	return cfg
}

// newFromUserFile builds the defaults-plus-user-file configuration with
// environment overrides. On a broken user file it returns the configuration
// without that file together with the error.
func newFromUserFile() (*Config, error) {
	cfg := Defaults()

	var fileErr error
	if dir, err := GetConfigDir(); err == nil {
		path := configFilePath(dir)
		if _, statErr := os.Stat(path); statErr == nil {
			merged := Defaults()
			if fileErr = ShallowMergeYAML(merged, path); fileErr == nil {
				cfg = merged
			}
		}
	}

	cfg.applyEnv()
	return cfg, fileErr
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		List: ListConfig{
			Buffer:     DefaultBuffer,
			ItemHeight: DefaultItemHeight,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns the user configuration with the YAML file at path merged on
// top and validated. Unlike New, a broken user config file is an error.
func Load(path string) (*Config, error) {
	cfg, err := newFromUserFile()
	if err != nil {
		return nil, fmt.Errorf("loading user config: %w", err)
	}
	if path == "" {
		return cfg, cfg.Validate()
	}

	if err = ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	// Environment still wins over an explicit file.
	cfg.applyEnv()

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the list settings.
func (c *Config) Validate() error {
	if c.List.ItemHeight <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidItemHeight, c.List.ItemHeight)
	}
	if c.List.Buffer < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBuffer, c.List.Buffer)
	}
	return nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides settings from VLIST_* variables. Unparseable numbers are
// ignored.
func (c *Config) applyEnv() {
	if v, ok := lookupInt(EnvBuffer); ok {
		c.List.Buffer = v
	}
	if v, ok := lookupInt(EnvItemHeight); ok {
		c.List.ItemHeight = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

func lookupInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
