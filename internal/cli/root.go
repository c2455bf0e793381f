package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/nordmenu/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for nordmenu. Running it
// without a subcommand starts the interactive menu; subcommands expose
// the same operations for scripting.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "nordmenu",
		Short:   "Interactive menu for the NordVPN client",
		Long:    "nordmenu: a terminal menu over the NordVPN client for browsing countries and server groups, connecting, and managing auto-connect.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Negative TTLs have no defined cache expiry behavior.
			cacheTTL, _ := cmd.Flags().GetInt("cache-ttl")
			if cacheTTL < 0 {
				return fmt.Errorf("cache-ttl must be >= 0, got %d", cacheTTL)
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, newDeps(cmd))
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().
		Int("cache-ttl", 0, "cache TTL in seconds (0 = use config default, overrides config file and env var)")
	cmd.PersistentFlags().Bool("no-notify", false, "disable desktop notifications")

	cmd.AddCommand(
		NewMenuCmd(), NewConnectCmd(), NewDisconnectCmd(), NewStatusCmd(),
		NewCountriesCmd(), NewGroupsCmd(), NewAutoConnectCmd(),
		NewDoctorCmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Start the interactive menu
  nordmenu

  # Connect to the best server in a country
  nordmenu connect Germany

  # Connect to a server group
  nordmenu connect --group P2P

  # Watch the connection status live
  nordmenu status --watch

  # List countries, bypassing the cache
  nordmenu countries --no-cache

  # Enable auto-connect to a country
  nordmenu autoconnect on Sweden

  # Check the local NordVPN installation
  nordmenu doctor`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}
