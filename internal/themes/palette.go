package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// AnsiColors holds the eight standard terminal colors of one intensity.
type AnsiColors struct {
	Black   string `toml:"black" yaml:"black"`
	Red     string `toml:"red" yaml:"red"`
	Green   string `toml:"green" yaml:"green"`
	Yellow  string `toml:"yellow" yaml:"yellow"`
	Blue    string `toml:"blue" yaml:"blue"`
	Magenta string `toml:"magenta" yaml:"magenta"`
	Cyan    string `toml:"cyan" yaml:"cyan"`
	White   string `toml:"white" yaml:"white"`
}

// Palette is the color scheme declared by a theme file, used only for
// previews. Missing fields stay empty; the applier never looks at this.
type Palette struct {
	Name       string
	Author     string
	Background string
	Foreground string
	CursorText string
	Cursor     string
	Normal     AnsiColors
	Bright     AnsiColors
}

// themeFile mirrors the Alacritty color scheme layout in both its TOML and
// legacy YAML forms.
type themeFile struct {
	Colors struct {
		Name    string `toml:"name" yaml:"name"`
		Author  string `toml:"author" yaml:"author"`
		Primary struct {
			Background string `toml:"background" yaml:"background"`
			Foreground string `toml:"foreground" yaml:"foreground"`
		} `toml:"primary" yaml:"primary"`
		Cursor struct {
			Text   string `toml:"text" yaml:"text"`
			Cursor string `toml:"cursor" yaml:"cursor"`
		} `toml:"cursor" yaml:"cursor"`
		Normal AnsiColors `toml:"normal" yaml:"normal"`
		Bright AnsiColors `toml:"bright" yaml:"bright"`
	} `toml:"colors" yaml:"colors"`
}

// LoadPalette parses the color palette from a theme file. The format is
// chosen by extension: TOML for .toml, YAML for .yml/.yaml.
func LoadPalette(path string) (Palette, error) {
	var pal Palette

	data, err := os.ReadFile(path)
	if err != nil {
		return pal, err
	}

	var tf themeFile
	switch filepath.Ext(path) {
	case ".toml":
		err = toml.Unmarshal(data, &tf)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &tf)
	default:
		err = fmt.Errorf("unrecognized theme format: %s", filepath.Ext(path))
	}
	if err != nil {
		return pal, err
	}

	pal = Palette{
		Name:       tf.Colors.Name,
		Author:     tf.Colors.Author,
		Background: tf.Colors.Primary.Background,
		Foreground: tf.Colors.Primary.Foreground,
		CursorText: tf.Colors.Cursor.Text,
		Cursor:     tf.Colors.Cursor.Cursor,
		Normal:     tf.Colors.Normal,
		Bright:     tf.Colors.Bright,
	}
	return pal, nil
}

// NormalizeHex converts theme color notations ("#abc", "0xaabbcc", "aabbcc")
// to the "#rrggbb" form lipgloss understands. Returns "" for values it
// cannot make sense of, which renderers treat as "no swatch".
func NormalizeHex(s string) string {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(hex, "0x")

	if len(hex) == 3 {
		// Short form: each digit doubles
		hex = strings.Repeat(string(hex[0]), 2) +
			strings.Repeat(string(hex[1]), 2) +
			strings.Repeat(string(hex[2]), 2)
	}

	if len(hex) != 6 {
		return ""
	}
	for _, c := range hex {
		if !isHexDigit(c) {
			return ""
		}
	}

	return "#" + strings.ToLower(hex)
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
