package config

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/thm-tools/cli/internal/usage"
)

// WriteLines writes the config atomically: the content goes to a temporary
// file in the same directory, which is then renamed over path. The rename is
// the only step that touches the real file, so a failure anywhere leaves the
// original byte-identical, and no reader ever observes a partial write.
// The original's line-ending style (LF or CRLF) and final-newline state are
// reproduced, so unedited lines survive byte for byte.
func WriteLines(path string, lines []string) error {
	mode := fileMode(path)
	ending, finalNewline := lineStyle(path)

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".thm.tmp.*")
	if err != nil {
		return usage.ConfigUnwritable(path, err)
	}
	tmpPath := tmpFile.Name()

	// Ensure cleanup on any failure
	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	// Carry over the config's own permissions
	if err := tmpFile.Chmod(mode); err != nil {
		return usage.ConfigUnwritable(path, err)
	}

	writer := bufio.NewWriter(tmpFile)

	for i, line := range lines {
		if _, err := writer.WriteString(line); err != nil {
			return usage.ConfigUnwritable(path, err)
		}
		if i < len(lines)-1 || finalNewline {
			if _, err := writer.WriteString(ending); err != nil {
				return usage.ConfigUnwritable(path, err)
			}
		}
	}

	if err := writer.Flush(); err != nil {
		return usage.ConfigUnwritable(path, err)
	}

	// Sync to ensure data is on disk before the rename makes it visible
	if err := tmpFile.Sync(); err != nil {
		return usage.ConfigUnwritable(path, err)
	}

	if err := tmpFile.Close(); err != nil {
		return usage.ConfigUnwritable(path, err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		return usage.ConfigUnwritable(path, err)
	}

	success = true
	return nil
}

func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}

// lineStyle detects the existing file's line ending and whether it ends with
// a trailing newline. A missing or empty file gets LF with a final newline.
func lineStyle(path string) (ending string, finalNewline bool) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return "\n", true
	}

	ending = "\n"
	if bytes.Contains(data, []byte("\r\n")) {
		ending = "\r\n"
	}

	return ending, data[len(data)-1] == '\n'
}
