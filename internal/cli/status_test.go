package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommand(t *testing.T) {
	setupFakeNordVPN(t)

	out, err := executeCommand(t, "", "status")
	require.NoError(t, err)

	assert.Contains(t, out, "CONNECTION STATUS")
	assert.Contains(t, out, "Connected")
	assert.Contains(t, out, "de1076.nordvpn.com")
	assert.Contains(t, out, "192.0.2.10")
	assert.Contains(t, out, "NORDLYNX")
}

func TestStatusCommandWatchWithoutTTY(t *testing.T) {
	setupFakeNordVPN(t)

	// go test runs without a terminal, so --watch degrades to a single
	// snapshot instead of starting the live view.
	out, err := executeCommand(t, "", "status", "--watch")
	require.NoError(t, err)

	assert.Contains(t, out, "single status snapshot")
	assert.Contains(t, out, "CONNECTION STATUS")
}

func TestStatusCommandBinaryMissing(t *testing.T) {
	setupFakeNordVPN(t)
	t.Setenv("PATH", t.TempDir())

	_, err := executeCommand(t, "", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nordvpn client not found")
}
