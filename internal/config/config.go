// Package config loads and persists the nordmenu configuration file.
//
// Configuration lives at ~/.config/nordmenu/config.yaml (override the
// directory with NORDMENU_HOME). Unknown keys are rejected so typos in
// the file surface as errors instead of silently reverting to defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/nordmenu/internal/cache"
	"github.com/rshade/nordmenu/internal/nordvpn"
)

// ConfigFileName is the name of the configuration file inside the
// config directory.
const ConfigFileName = "config.yaml"

// outputTypeFile routes logs to a file instead of stderr.
const outputTypeFile = "file"

// LoggingConfig holds the logging section of the configuration.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format selects console or json output.
	Format string `yaml:"format"`

	// File, when set, routes logs to this path instead of stderr.
	File string `yaml:"file,omitempty"`
}

// CacheConfig holds the list-cache section of the configuration.
type CacheConfig struct {
	// TTLSeconds is how long fetched country and group lists stay
	// fresh. Zero means the built-in default.
	TTLSeconds int `yaml:"ttl_seconds"`
}

// VPNConfig holds the external client section of the configuration.
type VPNConfig struct {
	// Binary is the client executable name or path.
	Binary string `yaml:"binary"`

	// TimeoutSeconds bounds each client invocation.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// NotificationsConfig holds the desktop notification section.
type NotificationsConfig struct {
	// Enabled turns connect/disconnect notifications on.
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration object.
type Config struct {
	Logging       LoggingConfig       `yaml:"logging"`
	Cache         CacheConfig         `yaml:"cache"`
	VPN           VPNConfig           `yaml:"vpn"`
	Notifications NotificationsConfig `yaml:"notifications"`

	configPath string
}

// Default returns a Config populated with built-in defaults, not yet
// bound to any file on disk.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Cache: CacheConfig{
			TTLSeconds: cache.DefaultTTLSeconds,
		},
		VPN: VPNConfig{
			Binary:         nordvpn.DefaultBinary,
			TimeoutSeconds: int(nordvpn.DefaultTimeout.Seconds()),
		},
		Notifications: NotificationsConfig{
			Enabled: true,
		},
	}
}

// New returns the configuration for this invocation: defaults overlaid
// with the config file when one exists. A missing file is not an
// error; a malformed one is reported so the user can fix it rather
// than silently running on defaults.
func New() (*Config, error) {
	cfg := Default()

	path, err := DefaultConfigPath()
	if err != nil {
		return cfg, err
	}
	cfg.configPath = path

	if err := cfg.loadFromFile(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	return cfg, nil
}

// loadFromFile overlays the file at path onto c, rejecting unknown keys.
func (c *Config) loadFromFile(path string) error {
	f, err := os.Open(path) //nolint:gosec // path comes from the config dir, not user input
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // read-only file

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		// An empty config file keeps the defaults.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return c.Validate()
}

// Validate checks ranges that would otherwise fail far from their cause.
func (c *Config) Validate() error {
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache.ttl_seconds cannot be negative: %d", c.Cache.TTLSeconds)
	}
	if c.VPN.TimeoutSeconds < 0 {
		return fmt.Errorf("vpn.timeout_seconds cannot be negative: %d", c.VPN.TimeoutSeconds)
	}
	return nil
}

// Save writes the configuration to its bound path, creating the config
// directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		c.configPath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", c.configPath, err)
	}
	return nil
}

// ConfigPath returns the file path this configuration is bound to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath rebinds the configuration to a different file path.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// GetConfigDir returns the nordmenu configuration directory. The
// NORDMENU_HOME environment variable overrides the default of
// ~/.config/nordmenu (respecting XDG_CONFIG_HOME).
func GetConfigDir() (string, error) {
	if home := os.Getenv("NORDMENU_HOME"); home != "" {
		return home, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, "nordmenu"), nil
}

// DefaultConfigPath returns the full path of the configuration file.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}
