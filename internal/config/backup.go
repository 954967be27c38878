package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Backup copies the config to `<stem>-backup<ext>` beside it, once: an
// existing backup is never overwritten, so it always holds the config as it
// was before thm's first ever edit. Returns the backup path and whether a
// copy was made.
func Backup(path string) (string, bool, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	backupPath := filepath.Join(filepath.Dir(path), stem+"-backup"+ext)

	if _, err := os.Stat(backupPath); err == nil {
		return backupPath, false, nil
	}

	src, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer func() { _ = src.Close() }()

	mode := fileMode(path)
	dst, err := os.OpenFile(backupPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return "", false, err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(backupPath)
		return "", false, err
	}

	if err := dst.Close(); err != nil {
		return "", false, err
	}

	return backupPath, true, nil
}
