package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/nordmenu/internal/config"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Prints the effective configuration as YAML: the configuration file
merged over the built-in defaults. Values overridden by flags or
environment variables at run time are not reflected here.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("rendering configuration: %w", err)
			}

			path := cfg.ConfigPath()
			if _, statErr := os.Stat(path); statErr == nil {
				cmd.Printf("# %s\n", path)
			} else {
				cmd.Printf("# defaults (no file at %s)\n", path)
			}
			cmd.Print(string(out))

			return nil
		},
	}
}
