package completions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Shell identifies a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// RunningShell detects the user's shell from $SHELL. Returns "" when the
// shell cannot be determined or is not supported.
func RunningShell() Shell {
	shell := filepath.Base(os.Getenv("SHELL"))
	switch shell {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ""
	}
}

// IsBashCompletionInstalled reports whether the bash-completion package
// appears to be available, which enables auto-loading from the user
// completions directory.
func IsBashCompletionInstalled() bool {
	candidates := []string{
		"/usr/share/bash-completion/bash_completion",
		"/usr/local/share/bash-completion/bash_completion",
		"/opt/homebrew/share/bash-completion/bash_completion",
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return true
		}
	}
	return false
}

// rootOf returns the root CommandInfo (the one with a single-element path).
func rootOf(commands []CommandInfo) *CommandInfo {
	for i := range commands {
		if len(commands[i].Path) == 1 {
			return &commands[i]
		}
	}
	return nil
}

func sortedSubcommands(cmd *CommandInfo) []string {
	subs := append([]string(nil), cmd.Subcommands...)
	sort.Strings(subs)
	return subs
}

func flagNames(cmd *CommandInfo) []string {
	var names []string
	for _, f := range cmd.Flags {
		names = append(names, f.Names...)
	}
	sort.Strings(names)
	return names
}

// GenerateBash builds a bash completion script for the command tree.
func GenerateBash(commands []CommandInfo) string {
	root := rootOf(commands)
	if root == nil {
		return ""
	}
	bin := root.Name

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	fmt.Fprintf(&b, "_%s_completions() {\n", bin)
	b.WriteString("    local cur prev words\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    case \"${prev}\" in\n")
	for _, cmd := range commands {
		if len(cmd.Path) < 2 && cmd.Name != bin {
			continue
		}
		words := append(sortedSubcommands(&cmd), flagNames(&cmd)...)
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", cmd.Name)
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(words, " "))
		b.WriteString("            return\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n\n")

	rootWords := append(sortedSubcommands(root), flagNames(root)...)
	fmt.Fprintf(&b, "    COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(rootWords, " "))
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", bin, bin)

	return b.String()
}

// GenerateZsh builds a zsh completion script for the command tree.
func GenerateZsh(commands []CommandInfo) string {
	root := rootOf(commands)
	if root == nil {
		return ""
	}
	bin := root.Name

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	fmt.Fprintf(&b, "_%s_commands() {\n", bin)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, sub := range sortedSubcommands(root) {
		if cmd := FindCommand(commands, append(root.Path, sub)); cmd != nil {
			fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, escapeZsh(cmd.Summary))
		}
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", bin)
	b.WriteString("    local curcontext=\"$curcontext\" state line\n")
	b.WriteString("    _arguments -C \\\n")
	for _, f := range root.Flags {
		for _, name := range f.Names {
			fmt.Fprintf(&b, "        '%s[%s]' \\\n", name, escapeZsh(f.Description))
		}
	}
	fmt.Fprintf(&b, "        '1: :_%s_commands' \\\n", bin)
	b.WriteString("        '*::arg:->args'\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", bin)

	return b.String()
}

// GenerateFish builds a fish completion script for the command tree.
func GenerateFish(commands []CommandInfo) string {
	root := rootOf(commands)
	if root == nil {
		return ""
	}
	bin := root.Name

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", bin)

	for _, sub := range sortedSubcommands(root) {
		cmd := FindCommand(commands, append(root.Path, sub))
		if cmd == nil {
			continue
		}
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s -d '%s'\n",
			bin, cmd.Name, escapeFish(cmd.Summary))

		for _, f := range cmd.Flags {
			for _, name := range f.Names {
				switch {
				case strings.HasPrefix(name, "--"):
					fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -l %s -d '%s'\n",
						bin, cmd.Name, strings.TrimPrefix(name, "--"), escapeFish(f.Description))
				case strings.HasPrefix(name, "-"):
					fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from %s' -s %s -d '%s'\n",
						bin, cmd.Name, strings.TrimPrefix(name, "-"), escapeFish(f.Description))
				}
			}
		}
	}

	return b.String()
}

func escapeZsh(s string) string {
	return strings.ReplaceAll(s, "'", "'\\''")
}

func escapeFish(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
