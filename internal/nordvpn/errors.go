package nordvpn

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds surfaced by the runner. Each maps to a distinct
// remediation hint in Remediation.
var (
	// ErrNotInstalled means the nordvpn binary is not on PATH.
	ErrNotInstalled = errors.New("nordvpn client not found")

	// ErrTimeout means a command did not complete within the configured timeout.
	ErrTimeout = errors.New("nordvpn command timed out")

	// ErrNotLoggedIn means the client rejected the command because no
	// account is logged in.
	ErrNotLoggedIn = errors.New("not logged in to NordVPN")
)

// CommandError reports a nordvpn invocation that exited non-zero for a
// reason other than the sentinel kinds above.
type CommandError struct {
	// Command is the argument vector that failed.
	Command string

	// ExitCode is the process exit code.
	ExitCode int

	// Message is the client's error output (stderr, falling back to stdout).
	Message string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("nordvpn %s failed (exit %d): %s", e.Command, e.ExitCode, e.Message)
	}
	return fmt.Sprintf("nordvpn %s failed (exit %d)", e.Command, e.ExitCode)
}

// Remediation returns a user-facing hint for a classified failure,
// or an empty string when no specific guidance applies.
func Remediation(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotInstalled):
		return "Install the NordVPN client: sh <(curl -sSf https://downloads.nordcdn.com/apps/linux/install.sh)"
	case errors.Is(err, ErrTimeout):
		return "The nordvpn daemon did not respond in time. Check it is running: systemctl status nordvpnd"
	case errors.Is(err, ErrNotLoggedIn):
		return "Log in to your account first: nordvpn login"
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return "Inspect the daemon state with: nordvpn status"
	}

	return ""
}

// isNotLoggedIn reports whether client output indicates a missing login.
// The client prints "You are not logged in." on most commands in that state.
func isNotLoggedIn(output string) bool {
	return strings.Contains(strings.ToLower(output), "not logged in")
}
