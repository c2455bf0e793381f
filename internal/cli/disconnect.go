package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDisconnectCmd creates the disconnect command.
func NewDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Disconnect from the current VPN server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			d := newDeps(cmd)

			msg, err := d.client.Disconnect(ctx)
			if err != nil {
				return remediated(err)
			}

			if msg != "" {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}
			d.catalog.Invalidate()
			d.notifier.Disconnected(ctx)
			logger.Info().Ctx(ctx).Msg("disconnected")

			return nil
		},
	}
}
