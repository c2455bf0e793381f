package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCountriesCmd creates the countries command.
func NewCountriesCmd() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List the countries with NordVPN servers",
		Long: `List the countries with NordVPN servers, one per line.

Results are cached for a few minutes; pass --no-cache to force a fresh
query against the daemon.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := newDeps(cmd)
			if noCache {
				d.catalog.Invalidate()
			}

			countries, err := d.catalog.Countries(cmd.Context())
			if err != nil {
				return remediated(err)
			}
			for _, country := range countries {
				fmt.Fprintln(cmd.OutOrStdout(), country)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the cached list and query the daemon")

	return cmd
}
