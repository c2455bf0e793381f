// Package notify sends best-effort desktop notifications for
// connection events via notify-send. Failures are logged and
// swallowed; notifications must never break a VPN operation. On
// systems without notify-send the notifier degrades to a no-op.
package notify

import (
	"context"
	"os/exec"

	"github.com/rshade/nordmenu/internal/logging"
)

// notifySendBinary is the desktop notification helper.
const notifySendBinary = "notify-send"

// appName is reported to the notification daemon.
const appName = "nordmenu"

// Type classifies a notification for icon and urgency selection.
type Type int

// Notification types.
const (
	TypeInfo Type = iota
	TypeSuccess
	TypeWarning
	TypeError
)

// icon returns the freedesktop icon name for the type.
func (t Type) icon() string {
	switch t {
	case TypeSuccess:
		return "network-vpn"
	case TypeWarning:
		return "dialog-warning"
	case TypeError:
		return "dialog-error"
	default:
		return "network-vpn"
	}
}

// urgency returns the notify-send urgency level for the type.
func (t Type) urgency() string {
	switch t {
	case TypeError:
		return "critical"
	case TypeWarning:
		return "normal"
	default:
		return "low"
	}
}

// Notification is one desktop notification.
type Notification struct {
	Title   string
	Message string
	Type    Type
}

// Notifier sends desktop notifications when enabled.
type Notifier struct {
	enabled bool
	binary  string
}

// New returns a notifier using notify-send from PATH. If the helper is
// not installed the notifier is permanently disabled.
func New(enabled bool) *Notifier {
	path, err := exec.LookPath(notifySendBinary)
	if err != nil {
		return &Notifier{}
	}
	return NewWithBinary(enabled, path)
}

// NewWithBinary returns a notifier invoking the given helper binary.
func NewWithBinary(enabled bool, binary string) *Notifier {
	return &Notifier{enabled: enabled, binary: binary}
}

// Enabled reports whether notifications will actually be sent.
func (n *Notifier) Enabled() bool {
	return n.enabled && n.binary != ""
}

// Send shows the notification. Errors are logged at debug level and
// never returned.
func (n *Notifier) Send(ctx context.Context, note Notification) {
	if !n.Enabled() {
		return
	}

	cmd := exec.CommandContext(ctx, n.binary,
		"--app-name="+appName,
		"--icon="+note.Type.icon(),
		"--urgency="+note.Type.urgency(),
		note.Title,
		note.Message,
	)
	if err := cmd.Run(); err != nil {
		log := logging.FromContext(ctx)
		log.Debug().
			Str("component", "notify").
			Err(err).
			Msg("could not send desktop notification")
	}
}

// Connected notifies that a connection to target was established.
func (n *Notifier) Connected(ctx context.Context, target string) {
	n.Send(ctx, Notification{
		Title:   "VPN Connected",
		Message: "Connected to " + target,
		Type:    TypeSuccess,
	})
}

// Disconnected notifies that the connection was closed.
func (n *Notifier) Disconnected(ctx context.Context) {
	n.Send(ctx, Notification{
		Title:   "VPN Disconnected",
		Message: "VPN connection closed",
		Type:    TypeInfo,
	})
}
