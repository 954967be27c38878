// Package themes resolves theme identifiers to files in the themes
// directory and reads theme color palettes for previews.
package themes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/thm-tools/cli/internal/usage"
)

// Extensions are the recognized theme file extensions, in the fixed
// precedence order used when an identifier matches more than one file:
// "dracula" resolves to dracula.toml before dracula.yaml before dracula.yml.
var Extensions = []string{".toml", ".yaml", ".yml"}

// Resolve maps a theme identifier to the absolute path of its file inside
// dir. The identifier is a filename stem, optionally carrying one of the
// recognized extensions. It is never interpreted as a path: anything
// containing a separator or traversal segment is rejected, so the applier
// can only ever be pointed inside the themes directory.
func Resolve(dir, identifier string) (string, error) {
	if !validIdentifier(identifier) {
		return "", usage.InvalidIdentifier(identifier)
	}

	var candidates []string
	if hasKnownExtension(identifier) {
		candidates = []string{filepath.Join(dir, identifier)}
	} else {
		for _, ext := range Extensions {
			candidates = append(candidates, filepath.Join(dir, identifier+ext))
		}
	}

	for _, c := range candidates {
		info, err := os.Stat(c)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(c)
		if err != nil {
			return "", err
		}
		return abs, nil
	}

	return "", usage.ThemeNotFound(identifier, dir)
}

func validIdentifier(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	if strings.ContainsAny(id, `/\`) {
		return false
	}
	return true
}

func hasKnownExtension(id string) bool {
	ext := filepath.Ext(id)
	for _, known := range Extensions {
		if ext == known {
			return true
		}
	}
	return false
}
