package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveExitImmediately(t *testing.T) {
	setupFakeNordVPN(t)

	out, err := executeCommand(t, "0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "NordVPN Quick Connect")
	assert.Contains(t, out, "  1. Quick Connect (best server)")
	assert.Contains(t, out, "  2. Connect to Country")
	assert.Contains(t, out, "  3. Connect to Server Group")
	assert.Contains(t, out, "  4. Disconnect")
	assert.Contains(t, out, "  5. Connection Status")
	assert.Contains(t, out, "  6. Auto-Connect Settings")
	assert.Contains(t, out, "  0. Exit")
	assert.Contains(t, out, "Exiting...")
}

func TestInteractiveEndOfInputExits(t *testing.T) {
	setupFakeNordVPN(t)

	// Input runs dry with the menu waiting for a choice.
	out, err := executeCommand(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Exiting...")
}

func TestInteractiveQuickConnect(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	// 1 = quick connect, Enter to pass the pause, 0 = exit.
	out, err := executeCommand(t, "1\n\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Connecting to the best available server...")
	assert.Contains(t, out, "You are connected to Best Server!")
	assert.Contains(t, out, "Press Enter to continue...")
	assert.Equal(t, 1, countCalls(t, callsFile, "connect"))
}

func TestInteractiveConnectToCountry(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	// 2 = country menu, 3 = Germany (sorted), then back at the main menu.
	out, err := executeCommand(t, "2\n3\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Select a Country")
	assert.Contains(t, out, "  1. Albania")
	assert.Contains(t, out, "  3. Germany")
	assert.Contains(t, out, "  0. Back to main menu")
	assert.Contains(t, out, "Connecting to Germany...")
	assert.Contains(t, out, "You are connected to Germany!")
	assert.Equal(t, 1, countCalls(t, callsFile, "connect Germany"))
}

func TestInteractiveConnectToGroup(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	// Group menu hides the regional groups, so the sorted view is
	// Double_VPN, Onion_Over_VPN, P2P.
	out, err := executeCommand(t, "3\n3\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Select a Server Group")
	assert.Contains(t, out, "  1. Double_VPN")
	assert.NotContains(t, out, "Europe")
	assert.NotContains(t, out, "The_Americas")
	assert.Contains(t, out, "Connecting to P2P servers...")
	assert.Contains(t, out, "You are connected to P2P!")
	assert.Equal(t, 1, countCalls(t, callsFile, "connect --group P2P"))
}

func TestInteractiveCountryMenuFilter(t *testing.T) {
	setupFakeNordVPN(t)

	// Filter the country list down to the one name containing "jap".
	out, err := executeCommand(t, "2\nf\njap\n1\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Connecting to Japan...")
	assert.Contains(t, out, "You are connected to Japan!")
}

func TestInteractiveDisconnect(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	out, err := executeCommand(t, "4\n\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Disconnecting...")
	assert.Contains(t, out, "You are disconnected from NordVPN.")
	assert.Equal(t, 1, countCalls(t, callsFile, "disconnect"))
}

func TestInteractiveStatus(t *testing.T) {
	setupFakeNordVPN(t)

	out, err := executeCommand(t, "5\n\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "CONNECTION STATUS")
	assert.Contains(t, out, "Connected")
	assert.Contains(t, out, "de1076.nordvpn.com")
	assert.Contains(t, out, "Germany")
}

func TestInteractiveCountryListCached(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	// Open the country menu twice without connecting in between; the
	// second open must come from the cache.
	_, err := executeCommand(t, "2\n0\n2\n0\n0\n")
	require.NoError(t, err)

	assert.Equal(t, 1, countCalls(t, callsFile, "countries"))
}

func TestInteractiveConnectInvalidatesCache(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	// Connect clears the cache, so reopening the country menu queries
	// the client again.
	_, err := executeCommand(t, "2\n3\n2\n0\n0\n")
	require.NoError(t, err)

	assert.Equal(t, 2, countCalls(t, callsFile, "countries"))
}

func TestInteractiveDisconnectInvalidatesCache(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	_, err := executeCommand(t, "2\n0\n4\n\n2\n0\n0\n")
	require.NoError(t, err)

	assert.Equal(t, 2, countCalls(t, callsFile, "countries"))
}

func TestInteractiveInvalidChoiceReprompts(t *testing.T) {
	setupFakeNordVPN(t)

	out, err := executeCommand(t, "9\nabc\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Please enter a number between 0 and 6")
	assert.Contains(t, out, "Please enter a valid number")
	assert.Contains(t, out, "Exiting...")
}

func TestInteractiveAutoConnectBest(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	out, err := executeCommand(t, "6\n1\n\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Auto-Connect Settings")
	assert.Contains(t, out, "  1. Enable Auto-Connect (best server)")
	assert.Contains(t, out, "  4. Disable Auto-Connect")
	assert.Contains(t, out, "Enabling auto-connect to best server...")
	assert.Contains(t, out, "Auto-connect settings updated.")
	assert.Equal(t, 1, countCalls(t, callsFile, "set autoconnect on"))
}

func TestInteractiveAutoConnectCountry(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	out, err := executeCommand(t, "6\n2\n3\n\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Select a Country for Auto-Connect")
	assert.Contains(t, out, "Setting auto-connect to Germany...")
	assert.Equal(t, 1, countCalls(t, callsFile, "set autoconnect on Germany"))
}

func TestInteractiveAutoConnectDisable(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	out, err := executeCommand(t, "6\n4\n\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Disabling auto-connect...")
	assert.Equal(t, 1, countCalls(t, callsFile, "set autoconnect off"))
}

func TestInteractiveAutoConnectBackFromSubmenu(t *testing.T) {
	callsFile := setupFakeNordVPN(t)

	_, err := executeCommand(t, "6\n0\n0\n")
	require.NoError(t, err)

	assert.Equal(t, 0, countCalls(t, callsFile, "set autoconnect"))
}

func TestInteractiveMissingBinaryAbortsBeforeMenu(t *testing.T) {
	setupFakeNordVPN(t)
	t.Setenv("PATH", t.TempDir())

	out, err := executeCommand(t, "0\n")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "nordvpn client not found")
	assert.Contains(t, err.Error(), "Install the NordVPN client")
	assert.NotContains(t, out, "NordVPN Quick Connect")
}

func TestInteractiveClientFailureKeepsMenuAlive(t *testing.T) {
	setupFakeNordVPN(t)
	// Swap in a binary that exists but fails every command; the menu
	// must report the failure and keep running rather than crash.
	dir := t.TempDir()
	script := "#!/bin/sh\necho 'Whoops! Cannot reach daemon.' >&2\nexit 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nordvpn"), []byte(script), 0o755))
	t.Setenv("PATH", dir)

	out, err := executeCommand(t, "1\n\n0\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "Whoops! Cannot reach daemon.")
	assert.Contains(t, out, "Hint: Inspect the daemon state with: nordvpn status")
	assert.Contains(t, out, "Exiting...")
}

func TestMenuCommandRunsInteractiveLoop(t *testing.T) {
	setupFakeNordVPN(t)

	out, err := executeCommand(t, "0\n", "menu")
	require.NoError(t, err)

	assert.Contains(t, out, "NordVPN Quick Connect")
	assert.Contains(t, out, "Exiting...")
}
