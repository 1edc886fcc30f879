package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	RegisterFlags(cmd)
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load(newCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, "", c.Mode)
	assert.Equal(t, "en", c.Language)
	assert.Equal(t, "info", c.Log.Level)
	assert.False(t, c.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: hard\nlanguage: de\nlog:\n  level: debug\n  json: true\n"), 0o600))

	c, err := Load(newCmd(), path)
	require.NoError(t, err)
	assert.Equal(t, "hard", c.Mode)
	assert.Equal(t, "de", c.Language)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.JSON)
}

func TestLoadFindsFileInWorkingDir(t *testing.T) {
	tmp := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "guessing-game.yaml"), []byte("mode: hard\n"), 0o600))

	c, err := Load(newCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, "hard", c.Mode)
}

func TestExplicitMissingFileIsAnError(t *testing.T) {
	tmp := isolate(t)
	_, err := Load(newCmd(), filepath.Join(tmp, "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	tmp := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "guessing-game.yaml"), []byte("mode: normal\n"), 0o600))
	t.Setenv("GUESSING_GAME_MODE", "hard")
	t.Setenv("GUESSING_GAME_LOG_LEVEL", "warn")

	c, err := Load(newCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, "hard", c.Mode)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestFlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("GUESSING_GAME_LANGUAGE", "fr")

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set("language", "de"))
	require.NoError(t, cmd.Flags().Set("log-json", "true"))

	c, err := Load(cmd, "")
	require.NoError(t, err)
	assert.Equal(t, "de", c.Language)
	assert.True(t, c.Log.JSON)
}

func TestInvalidModeRejected(t *testing.T) {
	isolate(t)
	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set("mode", "impossible"))

	_, err := Load(cmd, "")
	assert.Error(t, err)
}
