package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/nordmenu/internal/nordvpn"
	"github.com/rshade/nordmenu/internal/tui"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current VPN connection status",
		Long: `Show the current VPN connection status.

With --watch, the status panel stays on screen and refreshes every few
seconds until you press q.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			d := newDeps(cmd)

			if watch {
				if tui.IsTTY() {
					fetch := func(ctx context.Context) (nordvpn.Status, error) {
						s, err := d.client.Status(ctx)
						if err != nil {
							return nordvpn.Status{}, err
						}
						return *s, nil
					}
					return tui.RunWatch(ctx, fetch)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Not a terminal; showing a single status snapshot.")
			}

			status, err := d.client.Status(ctx)
			if err != nil {
				return remediated(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStatusPanel(*status, 0))

			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "keep the status on screen and refresh it")

	return cmd
}
