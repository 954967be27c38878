package completions

import (
	"fmt"
	"io"
)

// PrintCompletions renders the completion script for shell to w. The script
// is generated from the command tree registered at startup, so it always
// matches the commands and flags the running binary actually has.
func PrintCompletions(w io.Writer, shell Shell) error {
	root := GetCommandTree()
	if root == nil {
		return fmt.Errorf("command tree not registered")
	}

	script := scriptFor(shell, ExtractCommands(root))
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

func scriptFor(shell Shell, commands []CommandInfo) string {
	switch shell {
	case ShellBash:
		return GenerateBash(commands)
	case ShellZsh:
		return GenerateZsh(commands)
	case ShellFish:
		return GenerateFish(commands)
	default:
		return ""
	}
}
