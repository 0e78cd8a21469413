// Package config loads the optional spdxlens configuration file.
//
// The file lives at ~/.config/spdxlens/config.toml (honoring
// XDG_CONFIG_HOME) and supplies defaults that command-line flags override:
//
//	timeout = "10s"
//	skip-validate = false
//
//	[serve]
//	addr = ":8420"
//
// A missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/spdxlens/pkg/httputil"
)

// appName is the directory name under the user config root.
const appName = "spdxlens"

// defaultServeAddr is the bind address the serve command uses unless
// configured otherwise.
const defaultServeAddr = ":8420"

// duration wraps time.Duration so TOML values like "10s" decode naturally.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config holds the tool's configurable defaults.
type Config struct {
	Timeout      duration    `toml:"timeout"`
	SkipValidate bool        `toml:"skip-validate"`
	Serve        ServeConfig `toml:"serve"`
}

// ServeConfig configures the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timeout: duration{httputil.DefaultTimeout},
		Serve:   ServeConfig{Addr: defaultServeAddr},
	}
}

// HTTPTimeout returns the configured HTTP timeout.
func (c *Config) HTTPTimeout() time.Duration { return c.Timeout.Duration }

// Load reads the configuration file at the standard location. A missing
// file yields the defaults; a present but unparseable file is an error.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path, applying defaults for absent
// values. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Timeout.Duration <= 0 {
		cfg.Timeout = duration{httputil.DefaultTimeout}
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = defaultServeAddr
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/spdxlens/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
