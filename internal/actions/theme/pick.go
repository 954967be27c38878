package theme

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/thm-tools/cli/internal/dispatchers"
	"github.com/thm-tools/cli/internal/themes"
	"github.com/thm-tools/cli/internal/ui/style"
)

//
// Public API
//

func Pick(args []string, flags *dispatchers.ParsedFlags) error {
	return pick(args, flags, DefaultDeps())
}

//
// Entrypoint
//

func pick(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	// Hard guard: Bubble Tea REQUIRES a real terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("theme picker requires an interactive terminal")
	}

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

	configPath := deps.configPath(flags)
	current, _, _ := deps.CurrentImport(configPath)

	cursor := 0
	for i, e := range entries {
		if e.Path == current {
			cursor = i
			break
		}
	}

	m := model{
		entries:     entries,
		palettes:    loadPalettes(entries, deps),
		cursor:      cursor,
		currentPath: current,
		keys:        defaultKeyMap(),
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // harmless, but stabilizes input
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	fm := final.(model)

	if fm.chosen != nil {
		if fm.chosen.Path == current {
			_, _ = deps.Printf("\nTheme %s is already active\n", style.Info(fm.chosen.Name))
			return nil
		}
		backup := !flags.Has("--no-backup")
		if err := deps.Apply(configPath, fm.chosen.Path, backup); err != nil {
			return err
		}
		_, _ = deps.Printf("\nTheme set to %s\n", style.Success(fm.chosen.Name))
		return nil
	}

	if fm.cancelled {
		_, _ = deps.Println("\nCancelled")
	}

	return nil
}

// loadPalettes reads every theme's palette up front. Parse failures leave a
// zero palette: the preview degrades, picking still works.
func loadPalettes(entries []themes.Entry, deps Deps) map[string]themes.Palette {
	palettes := make(map[string]themes.Palette, len(entries))
	for _, e := range entries {
		if pal, err := deps.LoadPalette(e.Path); err == nil {
			palettes[e.Path] = pal
		}
	}
	return palettes
}

//
// Key map
//

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

//
// Model
//

type model struct {
	entries     []themes.Entry
	palettes    map[string]themes.Palette
	cursor      int
	currentPath string
	chosen      *themes.Entry
	cancelled   bool
	keys        keyMap
	width       int
	height      int
}

//
// Bubble Tea lifecycle
//

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {

		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.entries) - 1
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0

		case key.Matches(msg, m.keys.Bottom):
			m.cursor = len(m.entries) - 1

		case key.Matches(msg, m.keys.Select):
			entry := m.entries[m.cursor]
			m.chosen = &entry
			return m, tea.Quit
		}
	}

	return m, nil
}

//
// View
//

func (m model) View() string {
	var b strings.Builder

	b.WriteString("Select a theme:\n\n")

	// Left column
	left := make([]string, len(m.entries))
	for i, entry := range m.entries {
		cursor := "   "
		if i == m.cursor {
			cursor = " → "
		}

		selected := "  "
		if entry.Path == m.currentPath {
			selected = "✓ "
		}

		styleName := lipgloss.NewStyle().Width(20)
		if i == m.cursor {
			styleName = styleName.Bold(true).Background(lipgloss.Color("237"))
		}

		left[i] = cursor + selected + styleName.Render(entry.File)
	}

	// Right column (preview)
	entry := m.entries[m.cursor]
	right := renderPreviewCard(
		buildThemeDetailsLines(entry, m.palettes[entry.Path]),
	)

	b.WriteString(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			strings.Join(left, "\n"),
			"    ",
			right,
		),
	)

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m model) renderFooter() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 1)

	sep := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Render(" │ ")

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	bindings := []key.Binding{
		m.keys.Up,
		m.keys.Down,
		m.keys.Select,
		m.keys.Quit,
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, keyStyle.Render(h.Key)+label.Render(" "+h.Desc))
	}

	return strings.Join(parts, sep)
}

//
// Preview rendering
//

func renderPreviewCard(lines []string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func buildThemeDetailsLines(entry themes.Entry, pal themes.Palette) []string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	swatch := func(label, c string) string {
		hex := themes.NormalizeHex(c)
		if hex == "" {
			return muted.Render(label + " ·")
		}
		return label + " " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex)).
			Render("██ "+hex)
	}

	name := entry.Name
	if pal.Name != "" {
		name = pal.Name
	}

	var lines []string

	lines = append(lines, muted.Render("Preview: ")+lipgloss.NewStyle().Bold(true).Render(name))
	if pal.Author != "" {
		lines = append(lines, muted.Render("Author:  ")+pal.Author)
	}

	lines = append(lines, "")
	lines = append(lines, muted.Render("primary"))
	lines = append(lines, swatch("background", pal.Background))
	lines = append(lines, swatch("foreground", pal.Foreground))

	lines = append(lines, "")
	lines = append(lines, muted.Render("normal"))
	lines = append(lines, swatch("black  ", pal.Normal.Black))
	lines = append(lines, swatch("red    ", pal.Normal.Red))
	lines = append(lines, swatch("green  ", pal.Normal.Green))
	lines = append(lines, swatch("yellow ", pal.Normal.Yellow))
	lines = append(lines, swatch("blue   ", pal.Normal.Blue))
	lines = append(lines, swatch("magenta", pal.Normal.Magenta))
	lines = append(lines, swatch("cyan   ", pal.Normal.Cyan))
	lines = append(lines, swatch("white  ", pal.Normal.White))

	lines = append(lines, "")
	lines = append(lines, muted.Render("bright"))
	lines = append(lines, swatch("black  ", pal.Bright.Black))
	lines = append(lines, swatch("red    ", pal.Bright.Red))
	lines = append(lines, swatch("green  ", pal.Bright.Green))
	lines = append(lines, swatch("yellow ", pal.Bright.Yellow))
	lines = append(lines, swatch("blue   ", pal.Bright.Blue))
	lines = append(lines, swatch("magenta", pal.Bright.Magenta))
	lines = append(lines, swatch("cyan   ", pal.Bright.Cyan))
	lines = append(lines, swatch("white  ", pal.Bright.White))

	return lines
}
