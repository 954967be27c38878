package completions

import (
	"testing"

	"github.com/thm-tools/cli/internal/dispatchers"
)

func TestExtractCommands(t *testing.T) {
	root := dispatchers.NewNode("thm", nil, "Switch terminal color themes", "thm <command>",
		[]dispatchers.FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
		}, nil, nil)

	noop := func(args []string, flags *dispatchers.ParsedFlags) error { return nil }

	dispatchers.NewNode("set", root, "Apply a theme by name", "thm set <name>",
		[]dispatchers.FlagDescriptor{
			{Names: []string{"--no-backup"}, Description: "Skip backup"},
		},
		[]dispatchers.ArgSpec{{Name: "name", Required: true}},
		noop)

	dispatchers.NewNode("list", root, "List available themes", "thm list", nil, nil, noop)

	commands := ExtractCommands(root)

	if len(commands) != 3 {
		t.Errorf("expected 3 commands, got %d", len(commands))
	}

	rootCmd := FindCommand(commands, []string{"thm"})
	if rootCmd == nil {
		t.Fatal("root command not found")
	}
	if len(rootCmd.Subcommands) != 2 {
		t.Errorf("expected 2 subcommands, got %v", rootCmd.Subcommands)
	}

	setCmd := FindCommand(commands, []string{"thm", "set"})
	if setCmd == nil {
		t.Fatal("set command not found")
	}
	if setCmd.Summary != "Apply a theme by name" {
		t.Errorf("expected summary 'Apply a theme by name', got '%s'", setCmd.Summary)
	}
	if len(setCmd.Flags) != 1 {
		t.Errorf("expected 1 flag, got %d", len(setCmd.Flags))
	}
}

func TestFindCommand_NotFound(t *testing.T) {
	commands := []CommandInfo{
		{Name: "thm", Path: []string{"thm"}},
	}

	cmd := FindCommand(commands, []string{"thm", "nonexistent"})
	if cmd != nil {
		t.Error("expected nil for non-existent command")
	}
}
