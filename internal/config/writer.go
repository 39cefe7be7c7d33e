package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-labs/piklish/internal/schema"
	"github.com/smykla-labs/piklish/pkg/config"
)

// ErrInvalidConfig is returned when a nil configuration is written.
var ErrInvalidConfig = errors.New("invalid config")

const (
	// ConfigFileMode is the file mode for configuration files (user read/write only).
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories (user rwx only).
	ConfigDirMode = 0o700
)

// Writer handles writing configuration to TOML files.
type Writer struct {
	homeDir string
	workDir string
}

// NewWriter creates a new Writer with default directories.
func NewWriter() (*Writer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewWriterWithDirs(homeDir, workDir), nil
}

// NewWriterWithDirs creates a new Writer with custom directories (for testing).
func NewWriterWithDirs(homeDir, workDir string) *Writer {
	return &Writer{homeDir: homeDir, workDir: workDir}
}

// WriteGlobal writes the configuration to the global config file.
func (w *Writer) WriteGlobal(cfg *config.Config) error {
	return w.WriteFile(w.GlobalConfigPath(), cfg)
}

// WriteProject writes the configuration to the project config file.
// Uses the primary location (.piklish/config.toml).
func (w *Writer) WriteProject(cfg *config.Config) error {
	return w.WriteFile(w.ProjectConfigPath(), cfg)
}

// WriteFile writes the configuration to the given path.
func (w *Writer) WriteFile(path string, cfg *config.Config) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	var buf bytes.Buffer

	// Prepend Taplo schema directive
	buf.WriteString(schema.SchemaDirective())
	buf.WriteByte('\n')

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config to TOML")
	}

	if err := os.WriteFile(path, buf.Bytes(), ConfigFileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

// GlobalConfigPath returns the path to the global configuration file.
func (w *Writer) GlobalConfigPath() string {
	return filepath.Join(w.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// ProjectConfigPath returns the path to the primary project configuration file.
func (w *Writer) ProjectConfigPath() string {
	return filepath.Join(w.workDir, ProjectConfigDir, ProjectConfigFile)
}

// ExistingProjectConfigPath returns the project config file that is already
// present, or empty when neither supported location has one.
func (w *Writer) ExistingProjectConfigPath() string {
	for _, path := range []string{
		w.ProjectConfigPath(),
		filepath.Join(w.workDir, ProjectConfigFileAlt),
	} {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// IsProjectConfigExists checks if a project config file exists in either
// supported location.
func (w *Writer) IsProjectConfigExists() bool {
	return w.ExistingProjectConfigPath() != ""
}
