package themes

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one selectable theme file.
type Entry struct {
	Name string // filename stem, what the user types
	File string // full filename including extension
	Path string // absolute path
}

// List enumerates the theme files in dir, sorted by filename. Files with
// unrecognized extensions and subdirectories are skipped. A missing or
// empty directory yields an empty list, not an error: the picker and list
// commands report that themselves.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		ext := filepath.Ext(name)
		if !hasKnownExtension(name) {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Name: strings.TrimSuffix(name, ext),
			File: name,
			Path: abs,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].File < entries[j].File })

	return entries, nil
}
