package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAutoConnectCmd creates the autoconnect command.
func NewAutoConnectCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "autoconnect on|off [country]",
		Short: "Enable or disable auto-connect on startup",
		Long: `Enable or disable NordVPN's auto-connect on startup.

"on" without a target auto-connects to the best available server. Pass a
country name or --group to pin the target. "off" disables auto-connect
and takes no target.`,
		Example: `  # Best available server
  nordmenu autoconnect on

  # Pin a country
  nordmenu autoconnect on Sweden

  # Pin a server group
  nordmenu autoconnect on --group P2P

  # Disable
  nordmenu autoconnect off`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAutoConnect(cmd, args, group)
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "server group to auto-connect to (e.g. P2P, Double_VPN)")

	return cmd
}

func runAutoConnect(cmd *cobra.Command, args []string, group string) error {
	ctx := cmd.Context()

	var target string
	if len(args) == 2 {
		target = args[1]
	}

	switch args[0] {
	case "on":
		if group != "" && target != "" {
			return fmt.Errorf("cannot combine a country argument with --group")
		}
	case "off":
		if group != "" || target != "" {
			return fmt.Errorf("autoconnect off takes no target")
		}
	default:
		return fmt.Errorf("first argument must be on or off, got %q", args[0])
	}

	d := newDeps(cmd)

	var (
		msg string
		err error
	)
	switch {
	case args[0] == "off":
		msg, err = d.client.SetAutoConnect(ctx, false, "")
	case group != "":
		msg, err = d.client.SetAutoConnectGroup(ctx, group)
	default:
		msg, err = d.client.SetAutoConnect(ctx, true, target)
	}
	if err != nil {
		return remediated(err)
	}

	if msg != "" {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	logger.Info().Ctx(ctx).Str("mode", args[0]).Str("target", target).Str("group", group).Msg("autoconnect updated")

	return nil
}
