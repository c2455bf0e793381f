package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/nordmenu/internal/catalog"
	"github.com/rshade/nordmenu/internal/menu"
	"github.com/rshade/nordmenu/internal/nordvpn"
	"github.com/rshade/nordmenu/internal/tui"
)

// Main menu choices.
const (
	mainChoiceQuickConnect = iota + 1
	mainChoiceCountry
	mainChoiceGroup
	mainChoiceDisconnect
	mainChoiceStatus
	mainChoiceAutoConnect
)

// Auto-connect submenu choices.
const (
	autoChoiceBest = iota + 1
	autoChoiceCountry
	autoChoiceGroup
	autoChoiceOff
)

// session drives the interactive menu loop over one input stream.
type session struct {
	deps *deps
	in   *menu.Reader
	out  io.Writer
}

// NewMenuCmd creates the menu command. It starts the same interactive
// loop that running nordmenu without arguments does.
func NewMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu (the default when no command is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, newDeps(cmd))
		},
	}
}

// runInteractive runs the menu loop until the user exits. A missing
// client binary aborts before the first menu; there is nothing the
// loop could do without it.
func runInteractive(cmd *cobra.Command, d *deps) error {
	if err := d.runner.Check(); err != nil {
		return remediated(err)
	}

	s := &session{
		deps: d,
		in:   menu.NewReader(cmd.InOrStdin()),
		out:  cmd.OutOrStdout(),
	}
	return s.run(cmd.Context())
}

func (s *session) run(ctx context.Context) error {
	main := menu.Menu{
		Title: "NordVPN Quick Connect",
		Items: []string{
			"Quick Connect (best server)",
			"Connect to Country",
			"Connect to Server Group",
			"Disconnect",
			"Connection Status",
			"Auto-Connect Settings",
		},
		BackLabel: "Exit",
	}

	for {
		choice, _, err := main.Run(s.in, s.out)
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			fmt.Fprintln(s.out, "\nExiting...")
			return nil
		case mainChoiceQuickConnect:
			s.quickConnect(ctx)
			menu.Pause(s.in, s.out)
		case mainChoiceCountry:
			s.connectCountry(ctx)
		case mainChoiceGroup:
			s.connectGroup(ctx)
		case mainChoiceDisconnect:
			s.disconnect(ctx)
			menu.Pause(s.in, s.out)
		case mainChoiceStatus:
			s.showStatus(ctx)
			menu.Pause(s.in, s.out)
		case mainChoiceAutoConnect:
			s.autoConnectMenu(ctx)
		}
	}
}

func (s *session) quickConnect(ctx context.Context) {
	fmt.Fprintln(s.out, "\nConnecting to the best available server...")

	msg, err := s.deps.client.Connect(ctx, "")
	if err != nil {
		s.reportError(ctx, err)
		return
	}
	if msg != "" {
		fmt.Fprintln(s.out, msg)
	}
	s.afterConnect(ctx, "the best available server")
}

func (s *session) connectCountry(ctx context.Context) {
	countries, err := s.deps.catalog.Countries(ctx)
	if err != nil {
		fmt.Fprintln(s.out, "Failed to retrieve country list")
		s.reportError(ctx, err)
		return
	}

	m := menu.Menu{Title: "Select a Country", Items: countries, AllowFilter: true}
	choice, country, err := m.Run(s.in, s.out)
	if err != nil || choice == 0 {
		return
	}

	fmt.Fprintf(s.out, "\nConnecting to %s...\n", catalog.Display(country))
	msg, err := s.deps.client.Connect(ctx, country)
	if err != nil {
		s.reportError(ctx, err)
		return
	}
	if msg != "" {
		fmt.Fprintln(s.out, msg)
	}
	s.afterConnect(ctx, catalog.Display(country))
}

func (s *session) connectGroup(ctx context.Context) {
	groups, err := s.deps.catalog.Groups(ctx)
	if err != nil {
		fmt.Fprintln(s.out, "Failed to retrieve groups list")
		s.reportError(ctx, err)
		return
	}

	m := menu.Menu{Title: "Select a Server Group", Items: groups, AllowFilter: true}
	choice, group, err := m.Run(s.in, s.out)
	if err != nil || choice == 0 {
		return
	}

	fmt.Fprintf(s.out, "\nConnecting to %s servers...\n", catalog.Display(group))
	msg, err := s.deps.client.ConnectGroup(ctx, group)
	if err != nil {
		s.reportError(ctx, err)
		return
	}
	if msg != "" {
		fmt.Fprintln(s.out, msg)
	}
	s.afterConnect(ctx, catalog.Display(group))
}

func (s *session) disconnect(ctx context.Context) {
	fmt.Fprintln(s.out, "\nDisconnecting...")

	msg, err := s.deps.client.Disconnect(ctx)
	if err != nil {
		s.reportError(ctx, err)
		return
	}
	if msg != "" {
		fmt.Fprintln(s.out, msg)
	}
	s.deps.catalog.Invalidate()
	s.deps.notifier.Disconnected(ctx)
}

func (s *session) showStatus(ctx context.Context) {
	status, err := s.deps.client.Status(ctx)
	if err != nil {
		s.reportError(ctx, err)
		return
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, tui.RenderStatusPanel(*status, 0))
}

func (s *session) autoConnectMenu(ctx context.Context) {
	m := menu.Menu{
		Title: "Auto-Connect Settings",
		Items: []string{
			"Enable Auto-Connect (best server)",
			"Enable Auto-Connect to Country",
			"Enable Auto-Connect to Server Group",
			"Disable Auto-Connect",
		},
	}

	choice, _, err := m.Run(s.in, s.out)
	if err != nil || choice == 0 {
		return
	}

	switch choice {
	case autoChoiceBest:
		fmt.Fprintln(s.out, "\nEnabling auto-connect to best server...")
		s.printResult(ctx, func() (string, error) {
			return s.deps.client.SetAutoConnect(ctx, true, "")
		})
	case autoChoiceCountry:
		s.autoConnectCountry(ctx)
	case autoChoiceGroup:
		s.autoConnectGroup(ctx)
	case autoChoiceOff:
		fmt.Fprintln(s.out, "\nDisabling auto-connect...")
		s.printResult(ctx, func() (string, error) {
			return s.deps.client.SetAutoConnect(ctx, false, "")
		})
	}
	menu.Pause(s.in, s.out)
}

func (s *session) autoConnectCountry(ctx context.Context) {
	countries, err := s.deps.catalog.Countries(ctx)
	if err != nil {
		fmt.Fprintln(s.out, "Failed to retrieve country list")
		s.reportError(ctx, err)
		return
	}

	m := menu.Menu{Title: "Select a Country for Auto-Connect", Items: countries, AllowFilter: true}
	choice, country, err := m.Run(s.in, s.out)
	if err != nil || choice == 0 {
		return
	}

	fmt.Fprintf(s.out, "\nSetting auto-connect to %s...\n", catalog.Display(country))
	s.printResult(ctx, func() (string, error) {
		return s.deps.client.SetAutoConnect(ctx, true, country)
	})
}

func (s *session) autoConnectGroup(ctx context.Context) {
	groups, err := s.deps.catalog.Groups(ctx)
	if err != nil {
		fmt.Fprintln(s.out, "Failed to retrieve groups list")
		s.reportError(ctx, err)
		return
	}

	m := menu.Menu{Title: "Select a Server Group for Auto-Connect", Items: groups, AllowFilter: true}
	choice, group, err := m.Run(s.in, s.out)
	if err != nil || choice == 0 {
		return
	}

	fmt.Fprintf(s.out, "\nSetting auto-connect to %s servers...\n", catalog.Display(group))
	s.printResult(ctx, func() (string, error) {
		return s.deps.client.SetAutoConnectGroup(ctx, group)
	})
}

// afterConnect invalidates cached lists and notifies. Runs after every
// successful state change so stale lists never outlive a connection.
func (s *session) afterConnect(ctx context.Context, target string) {
	s.deps.catalog.Invalidate()
	s.deps.notifier.Connected(ctx, target)
}

// printResult prints the output of a client call or reports its error.
func (s *session) printResult(ctx context.Context, call func() (string, error)) {
	msg, err := call()
	if err != nil {
		s.reportError(ctx, err)
		return
	}
	if msg != "" {
		fmt.Fprintln(s.out, msg)
	}
}

// reportError shows the failure and a remediation hint when one is
// known. The current action aborts back to its menu; the program never
// crashes on a client failure.
func (s *session) reportError(ctx context.Context, err error) {
	logger.Error().Ctx(ctx).Err(err).Msg("client command failed")

	fmt.Fprintln(s.out, tui.CriticalStyle.Render("Error: "+err.Error()))
	if hint := nordvpn.Remediation(err); hint != "" {
		fmt.Fprintln(s.out, tui.SubtleStyle.Render("Hint: "+hint))
	}
}
