package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceInstructions returns the line a user adds to their shell rc file to
// load completions on every start. The script is regenerated at shell
// startup, so completions track the installed binary.
func SourceInstructions(shell Shell) string {
	bin := GetBinaryPath()
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions --script)"`, bin)
	case ShellFish:
		return fmt.Sprintf(`%s completions --script | source`, bin)
	default:
		return ""
	}
}

// RcFile names the startup file for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns a directory-based alternative: a file path the
// shell picks completions up from without touching the rc file. Empty when
// the shell has no such mechanism available.
func AutoInstallPath(shell Shell) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	bin := GetBinaryName()

	switch shell {
	case ShellFish:
		// Fish auto-loads everything in this directory
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		// Requires the bash-completion package
		if IsBashCompletionInstalled() {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", bin)
		}
		return ""
	default:
		return ""
	}
}
