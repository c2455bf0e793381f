package nordvpn

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinimumClientVersion is the oldest client this front end supports.
// Older clients lack the --group connect flag the group menu relies on.
//
//nolint:gochecknoglobals // Version floor, fixed at build time
var MinimumClientVersion = semver.MustParse("3.12.0")

// Client exposes typed operations over a Runner.
type Client struct {
	runner Runner
}

// NewClient creates a client on top of the given runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// Countries lists all available countries in client order.
func (c *Client) Countries(ctx context.Context) ([]string, error) {
	out, err := c.runner.Run(ctx, CountriesCommand())
	if err != nil {
		return nil, err
	}
	return ParseCountries(out), nil
}

// Groups lists the connectable server groups, excluding location groups.
func (c *Client) Groups(ctx context.Context) ([]string, error) {
	out, err := c.runner.Run(ctx, GroupsCommand())
	if err != nil {
		return nil, err
	}
	return FilterLocationGroups(ParseGroups(out)), nil
}

// AllGroups lists every server group the client reports, location
// groups included.
func (c *Client) AllGroups(ctx context.Context) ([]string, error) {
	out, err := c.runner.Run(ctx, GroupsCommand())
	if err != nil {
		return nil, err
	}
	return ParseGroups(out), nil
}

// Connect connects to a country, or to the recommended server when
// country is empty. Returns the client's confirmation message.
func (c *Client) Connect(ctx context.Context, country string) (string, error) {
	out, err := c.runner.Run(ctx, ConnectCommand(country))
	if err != nil {
		return "", err
	}
	return connectMessage(out), nil
}

// ConnectGroup connects to a server group.
func (c *Client) ConnectGroup(ctx context.Context, group string) (string, error) {
	out, err := c.runner.Run(ctx, ConnectGroupCommand(group))
	if err != nil {
		return "", err
	}
	return connectMessage(out), nil
}

// Disconnect drops the current connection.
func (c *Client) Disconnect(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, DisconnectCommand())
	if err != nil {
		return "", err
	}
	return connectMessage(out), nil
}

// SetAutoConnect enables or disables auto-connect, optionally pinned to
// a country or server target.
func (c *Client) SetAutoConnect(ctx context.Context, enabled bool, target string) (string, error) {
	out, err := c.runner.Run(ctx, AutoConnectCommand(enabled, target))
	if err != nil {
		return "", err
	}
	return connectMessage(out), nil
}

// SetAutoConnectGroup enables auto-connect pinned to a server group.
func (c *Client) SetAutoConnectGroup(ctx context.Context, group string) (string, error) {
	out, err := c.runner.Run(ctx, AutoConnectGroupCommand(group))
	if err != nil {
		return "", err
	}
	return connectMessage(out), nil
}

// Status queries and parses the current connection status.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	out, err := c.runner.Run(ctx, StatusCommand())
	if err != nil {
		return nil, err
	}
	return ParseStatus(out)
}

// Version queries and parses the installed client version.
func (c *Client) Version(ctx context.Context) (*semver.Version, error) {
	out, err := c.runner.Run(ctx, VersionCommand())
	if err != nil {
		return nil, err
	}
	return ParseVersion(out)
}

// VersionCheck is the outcome of comparing the installed client against
// the supported floor.
type VersionCheck struct {
	Current   *semver.Version
	Minimum   *semver.Version
	Supported bool
}

// CheckVersion compares the installed client version against
// MinimumClientVersion.
func (c *Client) CheckVersion(ctx context.Context) (*VersionCheck, error) {
	current, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}
	return &VersionCheck{
		Current:   current,
		Minimum:   MinimumClientVersion,
		Supported: !current.LessThan(MinimumClientVersion),
	}, nil
}

// connectMessage condenses multi-line client output into a single
// user-facing confirmation line. The client pads its messages with
// spinner frames and blank lines; the last non-empty line carries the
// outcome.
func connectMessage(out string) string {
	lines := strings.Split(sanitizeOutput(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
