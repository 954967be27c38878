package completions

import (
	"strings"
	"testing"

	"github.com/thm-tools/cli/internal/dispatchers"
)

func buildTestTree() *dispatchers.DispatchNode {
	root := dispatchers.NewNode("thm", nil, "Test CLI", "thm <command>",
		[]dispatchers.FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--version", "-v"}, Description: "Show version"},
		}, nil, nil)

	noop := func(args []string, flags *dispatchers.ParsedFlags) error { return nil }

	dispatchers.NewNode("set", root, "Apply a theme", "thm set <name>",
		[]dispatchers.FlagDescriptor{
			{Names: []string{"--no-backup"}, Description: "Skip backup"},
		},
		[]dispatchers.ArgSpec{{Name: "name", Required: true}},
		noop)

	dispatchers.NewNode("pick", root, "Pick interactively", "thm pick", nil, nil, noop)

	return root
}

func TestGenerateBash(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)
	script := GenerateBash(commands)

	checks := []string{
		"_thm_completions()",
		"complete -F _thm_completions thm",
		"set",
		"pick",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("bash script should contain %q", check)
		}
	}

	if !strings.HasPrefix(script, "# thm bash completion script") {
		t.Error("bash script should start with comment header")
	}
}

func TestGenerateZsh(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)
	script := GenerateZsh(commands)

	checks := []string{
		"#compdef thm",
		"_thm()",
		"_thm_commands()",
		"_describe",
		"set:Apply a theme",
		"pick:Pick interactively",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("zsh script should contain %q", check)
		}
	}
}

func TestGenerateFish(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)
	script := GenerateFish(commands)

	checks := []string{
		"complete -c thm -f",
		"__fish_use_subcommand",
		"set",
		"pick",
		"-d 'Apply a theme'",
		"-d 'Pick interactively'",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("fish script should contain %q", check)
		}
	}
}

func TestGenerateBash_EmptyTree(t *testing.T) {
	root := dispatchers.NewNode("thm", nil, "Test CLI", "thm", nil, nil, nil)

	commands := ExtractCommands(root)
	script := GenerateBash(commands)

	if !strings.Contains(script, "_thm_completions()") {
		t.Error("bash script should contain function definition even for empty tree")
	}
}

func TestGenerateZsh_EmptyTree(t *testing.T) {
	root := dispatchers.NewNode("thm", nil, "Test CLI", "thm", nil, nil, nil)

	commands := ExtractCommands(root)
	script := GenerateZsh(commands)

	if !strings.Contains(script, "#compdef thm") {
		t.Error("zsh script should contain compdef header even for empty tree")
	}
}

func TestGenerateFish_EmptyTree(t *testing.T) {
	root := dispatchers.NewNode("thm", nil, "Test CLI", "thm", nil, nil, nil)

	commands := ExtractCommands(root)
	script := GenerateFish(commands)

	if !strings.Contains(script, "complete -c thm -f") {
		t.Error("fish script should contain basic completion setup even for empty tree")
	}
}
