package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/nordmenu/internal/nordvpn"
)

func TestRenderStatusPanel(t *testing.T) {
	tests := []struct {
		name     string
		status   nordvpn.Status
		width    int
		contains []string
		omits    []string
	}{
		{
			name: "connected full detail",
			status: nordvpn.Status{
				State:      "Connected",
				Server:     "de1234.nordvpn.com",
				IP:         "198.51.100.4",
				Country:    "Germany",
				City:       "Berlin",
				Technology: "NORDLYNX",
				Protocol:   "UDP",
				Transfer:   "1.2 MiB received, 0.5 MiB sent",
				Uptime:     "2 minutes 30 seconds",
			},
			width: 80,
			contains: []string{
				"CONNECTION STATUS",
				"Connected",
				"de1234.nordvpn.com",
				"198.51.100.4",
				"Germany",
				"Berlin",
				"NORDLYNX",
				"UDP",
				"2 minutes 30 seconds",
			},
		},
		{
			name:     "disconnected collapses to state line",
			status:   nordvpn.Status{State: "Disconnected"},
			width:    80,
			contains: []string{"CONNECTION STATUS", "Disconnected"},
			omits:    []string{"Server:", "Country:"},
		},
		{
			name:     "empty state reads unknown",
			status:   nordvpn.Status{},
			width:    80,
			contains: []string{"Unknown"},
		},
		{
			name:     "zero width falls back to default",
			status:   nordvpn.Status{State: "Connected", Server: "fr55.nordvpn.com"},
			width:    0,
			contains: []string{"fr55.nordvpn.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := RenderStatusPanel(tt.status, tt.width)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, unwanted := range tt.omits {
				assert.NotContains(t, output, unwanted)
			}
		})
	}
}

func TestRenderStatusPanelBordered(t *testing.T) {
	output := RenderStatusPanel(nordvpn.Status{State: "Disconnected"}, 80)

	// Rounded border corners from the box style.
	assert.Contains(t, output, "╭")
	assert.Contains(t, output, "╰")
}

func TestRenderLoading(t *testing.T) {
	loading := NewLoadingState()

	output := RenderLoading(loading)
	assert.Contains(t, output, "Fetching connection status...")

	assert.Empty(t, RenderLoading(nil))
}

func TestStateText(t *testing.T) {
	assert.Equal(t, "Connected", stateText(nordvpn.Status{State: "Connected"}))
	assert.Equal(t, "Unknown", stateText(nordvpn.Status{}))
}

func TestStatusPanelMultilineRows(t *testing.T) {
	output := RenderStatusPanel(nordvpn.Status{
		State:   "Connected",
		Server:  "us9999.nordvpn.com",
		Country: "United States",
	}, 80)

	// One row per populated field plus the header and state line.
	lines := strings.Split(output, "\n")
	assert.GreaterOrEqual(t, len(lines), 5)
}
