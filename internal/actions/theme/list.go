package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thm-tools/cli/internal/dispatchers"
	"github.com/thm-tools/cli/internal/themes"
	"github.com/thm-tools/cli/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	dir, err := deps.themesDir(flags)
	if err != nil {
		return err
	}

	entries, err := deps.ListThemes(dir)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		_, _ = deps.Printf("no themes found in %s\n", dir)
		return nil
	}

	current, _, _ := deps.CurrentImport(deps.configPath(flags))

	_, _ = deps.Println("Available themes (* = current)\n")

	for _, entry := range entries {
		marker := "  "
		if entry.Path == current {
			marker = style.Success("* ")
		}

		preview := ""
		if pal, err := deps.LoadPalette(entry.Path); err == nil {
			preview = renderSwatches(pal)
		}

		_, _ = deps.Printf("%s%-20s  %s\n", marker, entry.File, preview)
	}

	_, _ = deps.Println("\nUse 'thm set <name>' or 'thm pick' to change")

	return nil
}

// renderSwatches returns one colored block per normal ANSI color of a theme,
// framed by its background and foreground. Colors that fail to parse render
// as plain space.
func renderSwatches(pal themes.Palette) string {
	cells := []string{
		pal.Background,
		pal.Foreground,
		pal.Normal.Black,
		pal.Normal.Red,
		pal.Normal.Green,
		pal.Normal.Yellow,
		pal.Normal.Blue,
		pal.Normal.Magenta,
		pal.Normal.Cyan,
		pal.Normal.White,
	}

	out := ""
	for _, c := range cells {
		hex := themes.NormalizeHex(c)
		if hex == "" {
			out += " "
			continue
		}
		out += lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
	}
	return out
}
