package config

import (
	"os"

	"github.com/rshade/nordmenu/internal/logging"
)

// Environment variables overriding the logging section.
const (
	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "NORDMENU_LOG_LEVEL"

	// EnvLogFormat overrides logging.format.
	EnvLogFormat = "NORDMENU_LOG_FORMAT"

	// EnvLogFile overrides logging.file.
	EnvLogFile = "NORDMENU_LOG_FILE"
)

// ToLoggingConfig converts the Logging section to a logging.Config.
// If File is set, output is routed there; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: false,
	}
}

// GetLoggingConfig returns the Logging section of the global
// configuration with environment overrides applied. Flag-level
// overrides (for example --debug) are expected to be applied by the
// caller after retrieving this value.
func GetLoggingConfig() LoggingConfig {
	cfg := GetGlobalConfig()
	lc := cfg.Logging

	if level := os.Getenv(EnvLogLevel); level != "" {
		lc.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		lc.Format = format
	}
	if file := os.Getenv(EnvLogFile); file != "" {
		lc.File = file
	}
	return lc
}
