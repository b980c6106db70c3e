// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"ytkit/internal/quality"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all application configuration.
type Config struct {
	Quality string `toml:"quality"`
	Output  string `toml:"output"`
	Color   bool   `toml:"color"`
	Name    string `toml:"name"`
	Debug   bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Quality: "1080",
		Output:  OutputText,
		Color:   true,
		Name:    "friend",
		Debug:   false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ytkit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ytkit"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if _, ok := quality.Parse(c.Quality); !ok {
		return fmt.Errorf("unparseable quality %q (want a height like 720 or WxH like 1280x720)", c.Quality)
	}

	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unsupported output %q (valid: text, json)", c.Output)
	}

	return nil
}

// JSON reports whether output should be rendered as JSON.
func (c *Config) JSON() bool {
	return strings.EqualFold(c.Output, OutputJSON)
}
