package theme

import (
	"github.com/thm-tools/cli/internal/dispatchers"
	"github.com/thm-tools/cli/internal/ui/style"
	"github.com/thm-tools/cli/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setTheme(args, flags, DefaultDeps())
}

func setTheme(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("name")
	}

	dir, err := deps.themesDir(flags)
	if err != nil {
		return err
	}

	themePath, err := deps.Resolve(dir, args[0])
	if err != nil {
		return err
	}

	configPath := deps.configPath(flags)
	backup := !flags.Has("--no-backup")

	if err := deps.Apply(configPath, themePath, backup); err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(args[0]))

	return nil
}
