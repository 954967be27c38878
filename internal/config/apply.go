package config

import (
	"github.com/thm-tools/cli/internal/log"
	"github.com/thm-tools/cli/internal/usage"
)

// ApplyTheme rewrites the config at configPath so its import directive
// points at themePath, leaving every other line untouched. The sequence is
// read, edit in memory, optionally back up, write atomically: any failure
// aborts before the real file is mutated.
func ApplyTheme(configPath, themePath string, backup bool) error {
	lines, err := ReadLines(configPath)
	if err != nil {
		return err
	}

	updated, _, err := SetImport(lines, themePath, StyleFor(configPath))
	if err != nil {
		return usage.MalformedConfig(configPath, err.Error())
	}

	if backup {
		// Best effort: a failed backup never blocks the switch
		if backupPath, created, err := Backup(configPath); err != nil {
			log.Warn("config: could not back up %s: %v", configPath, err)
		} else if created {
			log.Info("config: backed up %s to %s", configPath, backupPath)
		}
	}

	return WriteLines(configPath, updated)
}

// CurrentImport returns the theme path the config currently imports.
func CurrentImport(configPath string) (string, bool, error) {
	lines, err := ReadLines(configPath)
	if err != nil {
		return "", false, err
	}

	path, ok := GetImport(lines)
	return path, ok, nil
}
