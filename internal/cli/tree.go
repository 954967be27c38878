package cli

import (
	"github.com/thm-tools/cli/internal/actions"
	"github.com/thm-tools/cli/internal/actions/completions"
	"github.com/thm-tools/cli/internal/actions/theme"
	"github.com/thm-tools/cli/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.NewNode(
		"thm",
		nil,
		"Switch terminal color themes",
		"thm <command> [flags]",
		RootFlags,
		nil,
		nil,
	)

	dispatchers.NewNode(
		"set",
		root,
		"Apply a theme by name",
		"thm set <name> [flags]",
		NoBackupFlags,
		ThemeNameArg,
		theme.Set,
	)

	dispatchers.NewNode(
		"pick",
		root,
		"Pick a theme interactively",
		"thm pick [flags]",
		NoBackupFlags,
		nil,
		theme.Pick,
	)

	dispatchers.NewNode(
		"list",
		root,
		"List available themes",
		"thm list",
		nil,
		nil,
		theme.List,
	)

	dispatchers.NewNode(
		"current",
		root,
		"Show the active theme",
		"thm current",
		nil,
		nil,
		theme.Current,
	)

	dispatchers.NewNode(
		"completions",
		root,
		"Set up shell completions",
		"thm completions [bash|zsh|fish] [flags]",
		[]dispatchers.FlagDescriptor{
			{
				Names:       []string{"--script"},
				Description: "Print the completion script to stdout",
				Scope:       dispatchers.FlagScopeLocal,
			},
		},
		[]dispatchers.ArgSpec{
			{
				Name:        "shell",
				Description: "Shell to generate completions for (defaults to $SHELL)",
				Required:    false,
			},
		},
		completions.Completions,
	)

	dispatchers.NewNode(
		"version",
		root,
		"Show thm version",
		"thm version",
		nil,
		nil,
		actions.ShowVersion,
	)

	dispatchers.NewNode(
		"help",
		root,
		"Show help for a command",
		"thm help [command]",
		nil,
		nil,
		nil,
	)

	return root
}
