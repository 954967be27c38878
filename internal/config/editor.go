package config

import (
	"path/filepath"
	"strings"
)

// DirectiveStyle selects how the import directive is written, matching the
// config file's own format.
type DirectiveStyle int

const (
	// StyleTOML renders `import = ["<path>"]`.
	StyleTOML DirectiveStyle = iota
	// StyleYAML renders `import: ["<path>"]`.
	StyleYAML
)

// StyleFor picks the directive style from the config file's extension.
func StyleFor(configPath string) DirectiveStyle {
	switch filepath.Ext(configPath) {
	case ".yml", ".yaml":
		return StyleYAML
	default:
		return StyleTOML
	}
}

func (s DirectiveStyle) render(themePath string) string {
	if s == StyleYAML {
		return `import: ["` + themePath + `"]`
	}
	return `import = ["` + themePath + `"]`
}

// directiveError describes why an existing config cannot be edited safely.
// The applier maps it to a user-facing MalformedConfig error.
type directiveError struct{ detail string }

func (e *directiveError) Error() string { return e.detail }

// isImportLine reports whether a trimmed line is a top-level import
// directive, in either `import = ...` or `import: ...` form.
func isImportLine(trimmed string) bool {
	rest, ok := strings.CutPrefix(trimmed, "import")
	if !ok {
		return false
	}
	rest = strings.TrimLeft(rest, " \t")
	return strings.HasPrefix(rest, "=") || strings.HasPrefix(rest, ":")
}

// SetImport returns a copy of lines with the theme import directive pointing
// at themePath. An existing directive is rewritten in place, keeping any
// inline comment after the value; otherwise the directive is inserted as the
// first line. The second return reports whether an existing directive was
// replaced.
//
// SetImport refuses to edit when it cannot do so safely:
//   - more than one import directive exists (which one is active is the
//     user's call, not ours)
//   - the directive's list value continues past its own line, either as an
//     unclosed flow array or as a YAML block-style list of `- ` items
func SetImport(lines []string, themePath string, style DirectiveStyle) ([]string, bool, error) {
	importIdx := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !isImportLine(trimmed) {
			continue
		}
		if importIdx >= 0 {
			return nil, false, &directiveError{detail: "multiple import directives found"}
		}
		value := directiveValue(trimmed)
		if value == "" {
			// Bare `import:` heading, the value lives on the lines below
			return nil, false, &directiveError{detail: "import uses a block-style list"}
		}
		if strings.Contains(value, "[") && !strings.Contains(value, "]") {
			return nil, false, &directiveError{detail: "import directive spans multiple lines"}
		}
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next == "-" || strings.HasPrefix(next, "- ") {
				return nil, false, &directiveError{detail: "import uses a block-style list"}
			}
		}
		importIdx = i
	}

	out := make([]string, len(lines))
	copy(out, lines)

	directive := style.render(themePath)

	if importIdx >= 0 {
		// Keep an inline comment trailing the old value
		old := out[importIdx]
		if idx := commentIndex(old); idx >= 0 {
			directive = directive + " " + strings.TrimSpace(old[idx:])
		}
		out[importIdx] = directive
		return out, true, nil
	}

	out = append([]string{directive}, out...)
	return out, false, nil
}

// directiveValue returns the value part of a trimmed import line, after the
// separator and before any inline comment.
func directiveValue(trimmed string) string {
	rest, _ := strings.CutPrefix(trimmed, "import")
	rest = strings.TrimLeft(rest, " \t")
	// isImportLine guarantees the separator is here
	rest = rest[1:]
	if idx := commentIndex(rest); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}

// commentIndex finds the start of an inline comment, ignoring '#' inside
// quoted strings. Quotes only close on the character that opened them, so an
// apostrophe inside a double-quoted path does not end the string.
func commentIndex(line string) int {
	var quote rune
	for i, c := range line {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return i
		}
	}
	return -1
}

// GetImport extracts the theme path from the import directive, if one
// exists with a single-element quoted list value.
func GetImport(lines []string) (string, bool) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !isImportLine(trimmed) {
			continue
		}
		return quotedValue(trimmed)
	}
	return "", false
}

// quotedValue pulls the first quoted string out of a directive line.
func quotedValue(line string) (string, bool) {
	for _, q := range []byte{'"', '\''} {
		start := strings.IndexByte(line, q)
		if start < 0 {
			continue
		}
		end := strings.IndexByte(line[start+1:], q)
		if end < 0 {
			continue
		}
		return line[start+1 : start+1+end], true
	}
	return "", false
}
