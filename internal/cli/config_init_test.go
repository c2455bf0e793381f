package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nordmenu/internal/cli"
	"github.com/rshade/nordmenu/internal/config"
)

// setupConfigTest isolates the config home and global state.
func setupConfigTest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("NORDMENU_HOME", home)
	t.Setenv("NORDMENU_LOG_LEVEL", "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// runConfigCmd executes the root command with captured output.
func runConfigCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInitCreatesFile(t *testing.T) {
	home := setupConfigTest(t)

	out, err := runConfigCmd(t, "config", "init")
	require.NoError(t, err)

	configPath := filepath.Join(home, "config.yaml")
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, configPath)
	require.FileExists(t, configPath)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ttl_seconds: 300")
	assert.Contains(t, string(data), "binary: nordvpn")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	setupConfigTest(t)

	_, err := runConfigCmd(t, "config", "init")
	require.NoError(t, err)

	_, err = runConfigCmd(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Contains(t, err.Error(), "--force")
}

func TestConfigInitForceOverwrites(t *testing.T) {
	home := setupConfigTest(t)
	configPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n  ttl_seconds: 60\n"), 0o600))
	config.ResetGlobalConfigForTest()

	_, err := runConfigCmd(t, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ttl_seconds: 300", "force should reset to defaults")
}

func TestConfigInitForceRepairsBrokenFile(t *testing.T) {
	home := setupConfigTest(t)
	configPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache: ["), 0o600))
	config.ResetGlobalConfigForTest()

	_, err := runConfigCmd(t, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ttl_seconds: 300")
}

func TestConfigShowDefaults(t *testing.T) {
	home := setupConfigTest(t)

	out, err := runConfigCmd(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "# defaults (no file at")
	assert.Contains(t, out, filepath.Join(home, "config.yaml"))
	assert.Contains(t, out, "ttl_seconds: 300")
	assert.Contains(t, out, "binary: nordvpn")
	assert.Contains(t, out, "level: info")
}

func TestConfigShowLoadedFile(t *testing.T) {
	home := setupConfigTest(t)
	configPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n  ttl_seconds: 120\n"), 0o600))
	config.ResetGlobalConfigForTest()

	out, err := runConfigCmd(t, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "# "+configPath)
	assert.Contains(t, out, "ttl_seconds: 120")
}
