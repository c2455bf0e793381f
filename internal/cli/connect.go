package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/nordmenu/internal/catalog"
)

// NewConnectCmd creates the connect command.
func NewConnectCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "connect [country]",
		Short: "Connect to a NordVPN server",
		Long: `Connect to a NordVPN server.

Without arguments, connects to the best available server. Pass a country
name to connect there, or --group to connect to a server group such as
P2P or Double_VPN. Country and group are mutually exclusive.`,
		Example: `  # Best available server
  nordmenu connect

  # Specific country
  nordmenu connect Germany

  # Server group
  nordmenu connect --group P2P`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if group != "" && len(args) > 0 {
				return fmt.Errorf("cannot combine a country argument with --group")
			}
			return runConnect(cmd, args, group)
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "server group to connect to (e.g. P2P, Double_VPN)")

	return cmd
}

func runConnect(cmd *cobra.Command, args []string, group string) error {
	ctx := cmd.Context()
	d := newDeps(cmd)
	out := cmd.OutOrStdout()

	var (
		msg    string
		target string
		err    error
	)
	switch {
	case group != "":
		target = catalog.Display(group) + " servers"
		fmt.Fprintf(out, "Connecting to %s...\n", target)
		msg, err = d.client.ConnectGroup(ctx, group)
	case len(args) == 1:
		target = catalog.Display(args[0])
		fmt.Fprintf(out, "Connecting to %s...\n", target)
		msg, err = d.client.Connect(ctx, args[0])
	default:
		target = "the best available server"
		fmt.Fprintln(out, "Connecting to the best available server...")
		msg, err = d.client.Connect(ctx, "")
	}
	if err != nil {
		return remediated(err)
	}

	if msg != "" {
		fmt.Fprintln(out, msg)
	}
	d.catalog.Invalidate()
	d.notifier.Connected(ctx, target)
	logger.Info().Ctx(ctx).Str("target", target).Msg("connected")

	return nil
}
