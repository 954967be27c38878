package theme

import (
	"fmt"

	"github.com/thm-tools/cli/internal/config"
	"github.com/thm-tools/cli/internal/dispatchers"
	"github.com/thm-tools/cli/internal/paths"
	"github.com/thm-tools/cli/internal/themes"
)

type Deps struct {
	FindConfig    func() (string, bool)
	ThemesDir     func() (string, error)
	Resolve       func(dir, identifier string) (string, error)
	ListThemes    func(dir string) ([]themes.Entry, error)
	Apply         func(configPath, themePath string, backup bool) error
	CurrentImport func(configPath string) (string, bool, error)
	LoadPalette   func(path string) (themes.Palette, error)
	Printf        func(string, ...any) (int, error)
	Println       func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		FindConfig:    paths.FindEmulatorConfig,
		ThemesDir:     paths.ThemesDir,
		Resolve:       themes.Resolve,
		ListThemes:    themes.List,
		Apply:         config.ApplyTheme,
		CurrentImport: config.CurrentImport,
		LoadPalette:   themes.LoadPalette,
		Printf:        fmt.Printf,
		Println:       fmt.Println,
	}
}

// configPath returns the emulator config path, honoring the --config
// override. Without an override the discovered (or default) location is
// used; a missing file surfaces later as ConfigMissing naming that path.
func (d Deps) configPath(flags *dispatchers.ParsedFlags) string {
	if p := flags.String("--config", ""); p != "" {
		return p
	}
	path, _ := d.FindConfig()
	return path
}

// themesDir returns the themes directory, honoring the --themes-dir override.
func (d Deps) themesDir(flags *dispatchers.ParsedFlags) (string, error) {
	if p := flags.String("--themes-dir", ""); p != "" {
		return p, nil
	}
	return d.ThemesDir()
}
