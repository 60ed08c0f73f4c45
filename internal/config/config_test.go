package config

import (
	"os"
	"path/filepath"
	"testing"

	"nestdnd/internal/model"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvItems, EnvSubItems, EnvRestoreOnCancel, EnvGlyphs, EnvLogFile, EnvLogLevel, EnvFormat} {
		t.Setenv(k, "")
	}
	// Keep the default path out of the user's real config dir.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, model.DefaultItems, cfg.Items)
	require.Equal(t, model.DefaultSubItems, cfg.SubItems)
}

func TestLoad_FileOverridesOnlyDefinedKeys(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
items = 2
restore_on_cancel = true
glyphs = "ASCII"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	want := Default()
	want.Items = 2
	want.RestoreOnCancel = true
	want.Glyphs = "ascii"
	require.Equal(t, want, cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "items = 2\nsub_items = 4\n")
	t.Setenv(EnvItems, "7")
	t.Setenv(EnvFormat, "EDN")
	t.Setenv(EnvLogLevel, "warn")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Items)
	require.Equal(t, 4, cfg.SubItems)
	require.Equal(t, "edn", cfg.Format)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err, "explicit missing file")

	_, err = Load(writeConfig(t, "itemz = 3\n"))
	require.ErrorContains(t, err, "itemz")

	_, err = Load(writeConfig(t, "items = -1\n"))
	require.Error(t, err, "negative items")

	_, err = Load(writeConfig(t, "glyphs = \"emoji\"\n"))
	require.Error(t, err, "unknown glyphs")

	_, err = Load(writeConfig(t, "log_level = \"loud\"\n"))
	require.ErrorContains(t, err, "log level")

	t.Setenv(EnvRestoreOnCancel, "maybe")
	_, err = Load("")
	require.Error(t, err, "bad bool env")
}
