package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "thm"

// emulatorDirName is the directory under the user config root that holds the
// emulator's configuration and themes.
const emulatorDirName = "alacritty"

// configFileNames are the recognized emulator config file names, in
// precedence order. TOML is the current format, YAML the legacy one.
var configFileNames = []string{"alacritty.toml", "alacritty.yml"}

// AppDataDir returns the application data directory for thm's own files
// (currently just the log file). Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "thm.log")
}

// EmulatorConfigRoot returns the emulator's configuration directory,
// e.g. ~/.config/alacritty on Linux.
func EmulatorConfigRoot() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, emulatorDirName), nil
}

// ThemesDir returns the directory holding the user's theme files,
// e.g. ~/.config/alacritty/themes. The directory is not created: it is
// owned by the user, not by thm.
func ThemesDir() (string, error) {
	root, err := EmulatorConfigRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "themes"), nil
}

// FindEmulatorConfig locates the emulator's configuration file. Candidates
// are checked in order: the user's home directory first (a historical
// Alacritty location), then the config root. The first existing file wins.
// Returns the default config-root path and false when none exists, so
// callers can name the expected location in error messages.
func FindEmulatorConfig() (string, bool) {
	var candidates []string

	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range configFileNames {
			candidates = append(candidates, filepath.Join(home, name))
		}
	}

	root, err := EmulatorConfigRoot()
	if err == nil {
		for _, name := range configFileNames {
			candidates = append(candidates, filepath.Join(root, name))
		}
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}

	if root != "" {
		return filepath.Join(root, configFileNames[0]), false
	}
	return configFileNames[0], false
}
