package dispatchers

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/thm-tools/cli/internal/ui/style"
)

// commandDisplayOrder defines explicit ordering in help listings.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"set":         1,
	"pick":        2,
	"list":        3,
	"current":     4,
	"completions": 5,
	"version":     6,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	// The command ends at the first [ or <
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

func sortByDisplayOrder(cmds []*DispatchNode) {
	sort.Slice(cmds, func(i, j int) bool {
		nameI := strings.Join(cmds[i].Path[1:], " ")
		nameJ := strings.Join(cmds[j].Path[1:], " ")
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		if hasI && hasJ {
			return orderI < orderJ
		}
		if hasI {
			return true
		}
		if hasJ {
			return false
		}
		return nameI < nameJ
	})
}

// HelpAction generates help output for a command node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		var out bytes.Buffer

		if node == root {
			out.WriteString("thm - ")
			out.WriteString(node.Summary)
			out.WriteString("\n\n")

			out.WriteString("USAGE\n   ")
			out.WriteString(formatUsage(node.Usage))
			out.WriteString("\n\n")

			var leaves []*DispatchNode
			for _, child := range root.Children {
				collectLeafCommands(child, &leaves)
			}
			sortByDisplayOrder(leaves)

			out.WriteString("COMMANDS\n")
			for _, cmd := range leaves {
				displayName := strings.Join(cmd.Path[1:], " ")
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", displayName)), cmd.Summary)
			}
			out.WriteString("\n")

			if len(root.Flags) > 0 {
				out.WriteString("FLAGS\n")
				writeFlags(&out, root.Flags)
				out.WriteString("\n")
			}

			out.WriteString("See 'thm help <command>' for detailed help on a specific command.\n")
		} else {
			out.WriteString(strings.Join(node.Path, " "))
			if node.Summary != "" {
				out.WriteString(" - ")
				out.WriteString(node.Summary)
			}
			out.WriteString("\n\n")

			out.WriteString("USAGE\n   ")
			out.WriteString(formatUsage(node.Usage))
			out.WriteString("\n\n")

			if len(node.Args) > 0 {
				out.WriteString("ARGUMENTS\n")
				for _, a := range node.Args {
					name := a.Name
					if !a.Required {
						name = "[" + name + "]"
					}
					fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", name)), a.Description)
				}
				out.WriteString("\n")
			}

			if len(node.Flags) > 0 {
				out.WriteString("FLAGS\n")
				writeFlags(&out, node.Flags)
				out.WriteString("\n")
			}

			out.WriteString("See 'thm help <command>' to read about a specific command.\n")
		}

		fmt.Fprint(os.Stdout, out.String())
		return nil
	}
}

func writeFlags(out *bytes.Buffer, flags []FlagDescriptor) {
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name = name + " " + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
}
