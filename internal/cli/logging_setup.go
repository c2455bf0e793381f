package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/nordmenu/internal/config"
	"github.com/rshade/nordmenu/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	sessionID := logging.GetOrGenerateSessionID(ctx)
	ctx = logging.ContextWithSessionID(ctx, sessionID)
	logger = logger.With().Str("session_id", sessionID).Logger()
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	// A broken config file falls back to defaults; tell the user once.
	if err := config.GlobalLoadError(); err != nil {
		logger.Warn().Ctx(ctx).Err(err).Msg("configuration file ignored")
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: configuration file ignored: %v\n", err)
	}

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if one was opened.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
