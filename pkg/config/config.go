// Package config loads the optional YAML startup configuration. A
// missing file is not an error; built-in defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the startup configuration: which default calendar to create
// and how the interactive loop prompts.
type Config struct {
	// DefaultCalendar is the name of the calendar created at startup,
	// which is also the initial active calendar.
	DefaultCalendar string `yaml:"default_calendar"`

	// Timezone is the IANA timezone of the default calendar. Empty
	// means the host's local zone.
	Timezone string `yaml:"timezone"`

	// Prompt is the interactive-mode prompt string.
	Prompt string `yaml:"prompt"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultCalendar: "Default Calendar",
		Prompt:          "Enter command: ",
	}
}

// Normalize fills missing values with defaults so a partial file still
// behaves.
func (c *Config) Normalize() {
	if c.DefaultCalendar == "" {
		c.DefaultCalendar = "Default Calendar"
	}
	if c.Prompt == "" {
		c.Prompt = "Enter command: "
	}
}

// Load reads the configuration from path. An empty path or a missing
// file yields the defaults; a present but unreadable or malformed file
// is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Location resolves the configured timezone, falling back to the host's
// local zone when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q in config", c.Timezone)
	}
	return loc, nil
}
