package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/nordmenu/internal/nordvpn"
)

// defaultPanelWidth is used when no terminal width is known.
const defaultPanelWidth = 60

// RenderStatusPanel renders the connection status as a bordered panel.
// Empty fields are omitted so a disconnected status collapses to a
// single state line.
func RenderStatusPanel(status nordvpn.Status, width int) string {
	if width <= 0 {
		width = defaultPanelWidth
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("CONNECTION STATUS"))
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render("Status:       "))
	content.WriteString(stateStyle(status).Render(stateText(status)))

	rows := []struct {
		label string
		value string
	}{
		{"Server:       ", status.Server},
		{"IP:           ", status.IP},
		{"Country:      ", status.Country},
		{"City:         ", status.City},
		{"Technology:   ", status.Technology},
		{"Protocol:     ", status.Protocol},
		{"Transfer:     ", status.Transfer},
		{"Uptime:       ", status.Uptime},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render(row.label))
		content.WriteString(ValueStyle.Render(row.value))
	}

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// stateText normalizes the reported state, defaulting to Unknown when
// the daemon returned nothing usable.
func stateText(status nordvpn.Status) string {
	if status.State == "" {
		return "Unknown"
	}
	return status.State
}

func stateStyle(status nordvpn.Status) lipgloss.Style {
	switch {
	case status.Connected():
		return SuccessStyle
	case strings.EqualFold(status.State, "Connecting"):
		return WarningStyle
	default:
		return CriticalStyle
	}
}
