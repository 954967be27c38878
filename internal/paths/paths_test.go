package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates a file with parent directories for discovery tests.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// requireXDG skips tests that rely on os.UserConfigDir honoring
// XDG_CONFIG_HOME, which only holds on Unix-like platforms.
func requireXDG(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skipf("os.UserConfigDir ignores XDG_CONFIG_HOME on %s", runtime.GOOS)
	}
}

func TestAppDataDir_ReturnsNonEmpty(t *testing.T) {
	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.NotEqual(t, ".", dir)
}

func TestAppDataDir_ContainsAppName(t *testing.T) {
	dir := AppDataDir()
	require.True(t, strings.Contains(strings.ToLower(dir), "thm"),
		"AppDataDir should contain 'thm': %s", dir)
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	require.True(t, strings.HasSuffix(path, "thm.log"))
}

func TestThemesDir(t *testing.T) {
	dir, err := ThemesDir()
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(dir, filepath.Join("alacritty", "themes")),
		"themes dir should live under the emulator config root: %s", dir)
}

func TestFindEmulatorConfig_DefaultWhenAbsent(t *testing.T) {
	requireXDG(t)

	// Point the config root at an empty directory so no candidate exists.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, found := FindEmulatorConfig()
	require.False(t, found)
	require.True(t, strings.HasSuffix(path, filepath.Join("alacritty", "alacritty.toml")),
		"fallback should name the default location: %s", path)
}

func TestFindEmulatorConfig_PrefersHomeFile(t *testing.T) {
	requireXDG(t)

	home := t.TempDir()
	cfgHome := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", cfgHome)

	writeFile(t, filepath.Join(home, "alacritty.yml"), "font = 1\n")
	writeFile(t, filepath.Join(cfgHome, "alacritty", "alacritty.toml"), "font = 1\n")

	path, found := FindEmulatorConfig()
	require.True(t, found)
	require.Equal(t, filepath.Join(home, "alacritty.yml"), path)
}

func TestFindEmulatorConfig_ConfigRootFile(t *testing.T) {
	requireXDG(t)

	home := t.TempDir()
	cfgHome := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", cfgHome)

	want := filepath.Join(cfgHome, "alacritty", "alacritty.toml")
	writeFile(t, want, "font = 1\n")

	path, found := FindEmulatorConfig()
	require.True(t, found)
	require.Equal(t, want, path)
}
