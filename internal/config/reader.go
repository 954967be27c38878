// Package config reads and rewrites the emulator's configuration file.
// It never parses the full configuration grammar: the file is handled as
// lines of text, and only the single theme import directive is ever
// touched. Everything else round-trips byte for byte.
package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/thm-tools/cli/internal/usage"
)

// ReadLines reads the emulator config at path. A missing file is an error:
// thm updates configurations, it does not fabricate them.
func ReadLines(path string) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, usage.ConfigMissing(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, usage.ConfigUnreadable(path, err)
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, usage.ConfigUnreadable(path, err)
	}

	return lines, nil
}
