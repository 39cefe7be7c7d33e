// Package crashdump captures panic details to disk so crashes can be
// reported after the process has died.
package crashdump

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// DirName is the subdirectory under the piklish home where dumps land.
	DirName = "crash"

	// FilePerm is the file permission for crash dump files.
	FilePerm fs.FileMode = 0o600

	// DirPerm is the directory permission for crash dump directories.
	DirPerm fs.FileMode = 0o700

	timestampLayout = "20060102-150405"
)

// ErrInvalidDumpDir is returned when the dump directory is invalid.
var ErrInvalidDumpDir = errors.New("invalid dump directory")

// Dump is the serialized form of a single crash.
type Dump struct {
	// Timestamp is when the panic was recovered.
	Timestamp time.Time `json:"timestamp"`

	// Version is the binary version that crashed.
	Version string `json:"version"`

	// GoVersion is the Go runtime version.
	GoVersion string `json:"go_version"`

	// Panic is the recovered panic value, stringified.
	Panic string `json:"panic"`

	// Stack is the goroutine stack at the point of recovery.
	Stack string `json:"stack"`
}

// Write serializes a recovered panic into dir and returns the dump path.
func Write(dir, version string, recovered any, stack []byte) (string, error) {
	if dir == "" {
		return "", errors.Wrap(ErrInvalidDumpDir, "dir cannot be empty")
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return "", errors.Wrap(err, "failed to create dump directory")
	}

	dump := Dump{
		Timestamp: time.Now(),
		Version:   version,
		GoVersion: runtime.Version(),
		Panic:     fmt.Sprintf("%v", recovered),
		Stack:     string(stack),
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal dump")
	}

	path := filepath.Join(
		dir,
		"crash-"+dump.Timestamp.Format(timestampLayout)+".json",
	)

	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return "", errors.Wrap(err, "failed to write dump")
	}

	return path, nil
}
