package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewGroupsCmd creates the groups command.
func NewGroupsCmd() *cobra.Command {
	var (
		noCache bool
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List the NordVPN server groups",
		Long: `List the NordVPN server groups, one per line.

Regional groups such as Europe or The_Americas are hidden because
connecting by country covers them; pass --all to include them. Results
are cached for a few minutes; pass --no-cache to force a fresh query.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			d := newDeps(cmd)

			var (
				groups []string
				err    error
			)
			if all {
				groups, err = d.client.AllGroups(ctx)
			} else {
				if noCache {
					d.catalog.Invalidate()
				}
				groups, err = d.catalog.Groups(ctx)
			}
			if err != nil {
				return remediated(err)
			}

			for _, group := range groups {
				fmt.Fprintln(cmd.OutOrStdout(), group)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the cached list and query the daemon")
	cmd.Flags().BoolVar(&all, "all", false, "include regional groups, bypassing the cache")

	return cmd
}
