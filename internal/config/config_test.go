package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfigFrom(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, LocalFileName)
	writeFile(t, path, "theme: orca\nprofile: ansi256\ndark_background: false\nwidth: 60\ndebug: true\n")

	cfg := LoadConfigFrom(path, zerolog.Nop())
	assert.Equal(t, "orca", cfg.Theme)
	assert.Equal(t, "ansi256", cfg.Profile)
	require.NotNil(t, cfg.DarkBackground)
	assert.False(t, *cfg.DarkBackground)
	assert.Equal(t, 60, cfg.Width)
	assert.True(t, cfg.Debug)
}

func TestLoadConfigFrom_BadFilesYieldDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "theme: [unclosed\n")
	negative := filepath.Join(dir, "negative.yaml")
	writeFile(t, negative, "width: -5\n")

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	assert.Equal(t, &AppConfig{}, LoadConfigFrom(bad, log))
	assert.Contains(t, buf.String(), "error parsing config file")

	assert.Equal(t, &AppConfig{}, LoadConfigFrom(filepath.Join(dir, "missing.yaml"), log))

	buf.Reset()
	assert.Equal(t, 0, LoadConfigFrom(negative, log).Width)
	assert.Contains(t, buf.String(), "negative width ignored")
}

func TestFindConfig_PrefersLocalFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	local := filepath.Join(dir, LocalFileName)
	writeFile(t, local, "theme: orca\n")

	assert.Equal(t, local, FindConfig(dir))

	cfg, path := LoadConfig(dir, zerolog.Nop())
	assert.Equal(t, local, path)
	assert.Equal(t, "orca", cfg.Theme)
}

// Not parallel: points the XDG lookup at a temporary directory.
func TestFindConfig_UsesXDGConfigHome(t *testing.T) {
	root := t.TempDir()
	xdgHome := filepath.Join(root, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdgHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "etc"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	work := filepath.Join(root, "work")
	require.NoError(t, os.MkdirAll(work, 0o755))
	assert.Empty(t, FindConfig(work))

	cfg, path := LoadConfig(work, zerolog.Nop())
	assert.Empty(t, path)
	assert.Equal(t, &AppConfig{}, cfg)

	xdgFile := filepath.Join(xdgHome, "gloss", "config.yaml")
	writeFile(t, xdgFile, "profile: truecolor\n")
	assert.Equal(t, xdgFile, FindConfig(work))
}
