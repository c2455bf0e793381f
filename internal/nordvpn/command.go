package nordvpn

import "strings"

// Command is a structured nordvpn invocation: a logical name for logging
// plus the argument vector passed to the binary.
type Command struct {
	// Name is the logical operation name (e.g. "connect", "countries").
	Name string

	// Args is the argument vector after the binary name.
	Args []string
}

// String renders the argument vector for log output.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// CountriesCommand lists all available countries.
func CountriesCommand() Command {
	return Command{Name: "countries", Args: []string{"countries"}}
}

// GroupsCommand lists all available server groups.
func GroupsCommand() Command {
	return Command{Name: "groups", Args: []string{"groups"}}
}

// ConnectCommand connects to a specific country, or to the recommended
// server when target is empty.
func ConnectCommand(target string) Command {
	args := []string{"connect"}
	if target != "" {
		args = append(args, target)
	}
	return Command{Name: "connect", Args: args}
}

// ConnectGroupCommand connects to a specific server group.
func ConnectGroupCommand(group string) Command {
	return Command{Name: "connect", Args: []string{"connect", "--group", group}}
}

// DisconnectCommand disconnects from the current server.
func DisconnectCommand() Command {
	return Command{Name: "disconnect", Args: []string{"disconnect"}}
}

// AutoConnectCommand enables or disables auto-connect. When enabling,
// an optional target pins auto-connect to a country or server.
func AutoConnectCommand(enabled bool, target string) Command {
	args := []string{"set", "autoconnect"}
	if enabled {
		args = append(args, "on")
		if target != "" {
			args = append(args, target)
		}
	} else {
		args = append(args, "off")
	}
	return Command{Name: "autoconnect", Args: args}
}

// AutoConnectGroupCommand enables auto-connect pinned to a server group.
func AutoConnectGroupCommand(group string) Command {
	return Command{Name: "autoconnect", Args: []string{"set", "autoconnect", "on", "--group", group}}
}

// StatusCommand reports the current connection status.
func StatusCommand() Command {
	return Command{Name: "status", Args: []string{"status"}}
}

// VersionCommand reports the installed client version.
func VersionCommand() Command {
	return Command{Name: "version", Args: []string{"version"}}
}
