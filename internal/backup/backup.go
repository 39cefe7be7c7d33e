// Package backup preserves configuration files before destructive writes.
package backup

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// DirName is the subdirectory under the piklish home where backups
	// accumulate.
	DirName = "backups"

	// FilePerm is the file permission for backup files.
	FilePerm fs.FileMode = 0o600

	// DirPerm is the directory permission for backup directories.
	DirPerm fs.FileMode = 0o700

	timestampLayout = "20060102-150405"
)

// ErrInvalidPath is returned when an invalid path is provided.
var ErrInvalidPath = errors.New("invalid path")

// Snapshot copies the file at path into dir under a timestamped name and
// returns the backup path. The source file is left untouched.
func Snapshot(path, dir string) (string, error) {
	if path == "" {
		return "", errors.Wrap(ErrInvalidPath, "path cannot be empty")
	}

	if dir == "" {
		return "", errors.Wrap(ErrInvalidPath, "dir cannot be empty")
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from config discovery
	if err != nil {
		return "", errors.Wrap(err, "failed to read original file")
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return "", errors.Wrap(err, "failed to create backup directory")
	}

	name := backupName(filepath.Base(path), time.Now())
	backupPath := filepath.Join(dir, name)

	if err := os.WriteFile(backupPath, data, FilePerm); err != nil {
		return "", errors.Wrap(err, "failed to write backup")
	}

	return backupPath, nil
}

// backupName derives a timestamped backup filename from the original name.
func backupName(base string, now time.Time) string {
	return base + "." + now.Format(timestampLayout) + ".bak"
}
