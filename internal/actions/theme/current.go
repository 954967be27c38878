package theme

import (
	"path/filepath"
	"strings"

	"github.com/thm-tools/cli/internal/dispatchers"
	"github.com/thm-tools/cli/internal/ui/style"
)

func Current(args []string, flags *dispatchers.ParsedFlags) error {
	return current(args, flags, DefaultDeps())
}

func current(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	configPath := deps.configPath(flags)

	themePath, ok, err := deps.CurrentImport(configPath)
	if err != nil {
		return err
	}

	if !ok {
		_, _ = deps.Println("no theme set")
		return nil
	}

	file := filepath.Base(themePath)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	// The theme file may declare a display name; show it when it differs
	if pal, err := deps.LoadPalette(themePath); err == nil && pal.Name != "" && pal.Name != name {
		_, _ = deps.Printf("%s %s\n", name, style.Muted("("+pal.Name+")"))
		return nil
	}

	_, _ = deps.Println(name)
	return nil
}
