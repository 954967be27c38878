package cli

import "github.com/thm-tools/cli/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--config"},
			ValueHint:   "<path>",
			Description: "Path to the terminal config file (overrides auto-detection)",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--themes-dir"},
			ValueHint:   "<path>",
			Description: "Directory to look up themes in",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	NoBackupFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--no-backup"},
			Description: "Do not create a one-time backup of the config file",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
