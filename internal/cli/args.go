package cli

import "github.com/thm-tools/cli/internal/dispatchers"

var ThemeNameArg = []dispatchers.ArgSpec{
	{
		Name:        "name",
		Description: "Theme name or file name (e.g., dracula, gruvbox.yml)",
		Required:    true,
	},
}
