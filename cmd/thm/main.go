package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/thm-tools/cli/internal/actions"
	"github.com/thm-tools/cli/internal/cli"
	"github.com/thm-tools/cli/internal/completions"
	"github.com/thm-tools/cli/internal/dispatchers"
	"github.com/thm-tools/cli/internal/log"
	"github.com/thm-tools/cli/internal/paths"
	"github.com/thm-tools/cli/internal/ui/style"
	"github.com/thm-tools/cli/internal/usage"
)

// Flags that take a value, so `--flag value` normalizes to `--flag=value`.
var valueFlags = map[string]bool{
	"--config":     true,
	"--themes-dir": true,
}

func main() {
	rawFlags, commands := extractFlagsAndCommands(os.Args[1:])
	flags := dispatchers.NewParsedFlags(rawFlags)

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	style.Init(enableColor)

	initLog()
	defer log.Close()

	if len(commands) == 0 && (flags.Has("--version") || flags.Has("-v")) {
		if err := actions.ShowVersion(nil, flags); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}

	root := cli.BuildTree()
	completions.RegisterCommandTree(root)

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		exit(err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		exit(err)
	}

	if res.ExitCode != 0 {
		os.Exit(res.ExitCode)
	}
}

// initLog sets up the file logger. Logging is best-effort: a failure here
// must never block the command itself.
func initLog() {
	_ = log.Init(paths.LogFilePath(), log.LevelInfo)
}

func exit(err error) {
	log.Error("%v", err)
	fmt.Fprintln(os.Stderr, err.Error())
	if ue, ok := err.(*usage.Error); ok {
		os.Exit(ue.ExitCode())
	}
	os.Exit(1)
}

// extractFlagsAndCommands splits argv into flag tokens and command tokens.
// Value flags given as `--flag value` are folded into `--flag=value` form.
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		if len(a) == 0 || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		if valueFlags[a] && i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
			flags = append(flags, a+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, a)
	}

	return flags, commands
}
