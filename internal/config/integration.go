package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rshade/nordmenu/internal/cache"
	"github.com/rshade/nordmenu/internal/nordvpn"
)

// GlobalConfig holds the global configuration instance.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects the singleton state
var globalConfigInit bool       //nolint:gochecknoglobals // Tracks if global config has been initialized
var globalLoadErr error         //nolint:gochecknoglobals // Load error kept for later reporting

// InitGlobalConfig initializes the global configuration. A config file
// that fails to load leaves the defaults in place; the error is kept
// and reported by GlobalLoadError rather than aborting startup.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if globalConfigInit {
		return
	}

	GlobalConfig, globalLoadErr = New()
	globalConfigInit = true
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = nil
	globalLoadErr = nil
	globalConfigInit = false
}

// GetGlobalConfig returns the global configuration, initializing it if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return GlobalConfig
}

// GlobalLoadError returns the error from loading the configuration
// file, if any. A missing file is not an error.
func GlobalLoadError() error {
	InitGlobalConfig()

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalLoadErr
}

// GetLogLevel returns the configured log level.
func GetLogLevel() string {
	cfg := GetGlobalConfig()
	return cfg.Logging.Level
}

// GetLogFile returns the configured log file path.
func GetLogFile() string {
	cfg := GetGlobalConfig()
	return cfg.Logging.File
}

// GetCacheTTLSeconds returns the configured cache TTL, falling back to
// the built-in default when unset.
func GetCacheTTLSeconds() int {
	cfg := GetGlobalConfig()
	if cfg.Cache.TTLSeconds <= 0 {
		return cache.DefaultTTLSeconds
	}
	return cfg.Cache.TTLSeconds
}

// GetVPNBinary returns the configured client binary.
func GetVPNBinary() string {
	cfg := GetGlobalConfig()
	if cfg.VPN.Binary == "" {
		return nordvpn.DefaultBinary
	}
	return cfg.VPN.Binary
}

// GetVPNTimeout returns the configured per-command timeout.
func GetVPNTimeout() time.Duration {
	cfg := GetGlobalConfig()
	if cfg.VPN.TimeoutSeconds <= 0 {
		return nordvpn.DefaultTimeout
	}
	return time.Duration(cfg.VPN.TimeoutSeconds) * time.Second
}

// NotificationsEnabled reports whether desktop notifications are on.
func NotificationsEnabled() bool {
	cfg := GetGlobalConfig()
	return cfg.Notifications.Enabled
}

// EnsureConfigDir ensures the nordmenu configuration directory exists.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// EnsureLogDir ensures the directory for the configured log file
// exists. If no log file is configured, it does nothing.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
