package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-labs/piklish/pkg/config"
)

// ErrInvalidPermissions is returned when a config file has insecure permissions.
var ErrInvalidPermissions = errors.New("config file has insecure permissions")

const (
	// GlobalConfigDir is the directory name for global configuration.
	GlobalConfigDir = ".piklish"

	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// ProjectConfigDir is the directory name for project configuration.
	ProjectConfigDir = ".piklish"

	// ProjectConfigFile is the primary project configuration file name.
	ProjectConfigFile = "config.toml"

	// ProjectConfigFileAlt is the alternative project configuration file name.
	ProjectConfigFileAlt = "piklish.toml"

	// EnvPrefix prefixes all recognized environment variables.
	EnvPrefix = "PIKLISH_"
)

// KoanfLoader loads configuration from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (PIKLISH_*)
// 3. Project Config (.piklish/config.toml or piklish.toml, discovered by
//    walking up from the working directory)
// 4. Global Config (~/.piklish/config.toml)
// 5. Defaults
type KoanfLoader struct {
	k       *koanf.Koanf
	homeDir string
	workDir string
}

// NewKoanfLoader creates a new KoanfLoader with default directories.
func NewKoanfLoader() (*KoanfLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewKoanfLoaderWithDirs(homeDir, workDir), nil
}

// NewKoanfLoaderWithDirs creates a new KoanfLoader with custom directories (for testing).
func NewKoanfLoaderWithDirs(homeDir, workDir string) *KoanfLoader {
	return &KoanfLoader{
		k:       koanf.New("."),
		homeDir: homeDir,
		workDir: workDir,
	}
}

// Load loads configuration from all sources with precedence.
// Defaults → Global TOML → Project TOML → Env Vars → CLI Flags
func (l *KoanfLoader) Load(flags map[string]any) (*config.Config, error) {
	// Reset koanf instance for fresh load
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	globalPath := l.GlobalConfigPath()
	if err := l.loadTOMLFile(globalPath); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	if projectPath := l.findProjectConfig(); projectPath != "" {
		if err := l.loadTOMLFile(projectPath); err != nil {
			return nil, errors.Wrap(err, "failed to load project config")
		}
	}

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg config.Config

	decoderCfg := CustomDecoderConfig()
	decoderCfg.Result = &cfg

	unmarshalConf := koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: decoderCfg,
	}

	if err := l.k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// loadTOMLFile loads a TOML configuration file with security checks.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	// Reject world-writable files.
	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	return l.k.Load(file.Provider(path), tomlparser.Parser())
}

// envTransform transforms environment variable names to config paths.
// PIKLISH_SEVERITY_WIP → severity.wip
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	return key, value
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// ProjectConfigPaths returns the paths checked for project configuration
// in a single directory.
func (l *KoanfLoader) ProjectConfigPaths() []string {
	return projectConfigCandidates(l.workDir)
}

// projectConfigCandidates lists the supported config locations within dir,
// in preference order.
func projectConfigCandidates(dir string) []string {
	return []string{
		filepath.Join(dir, ProjectConfigDir, ProjectConfigFile),
		filepath.Join(dir, ProjectConfigFileAlt),
	}
}

// findProjectConfig walks up from the working directory towards the
// filesystem root and returns the first config file found.
func (l *KoanfLoader) findProjectConfig() string {
	dir := l.workDir

	for {
		for _, path := range projectConfigCandidates(dir) {
			if fileExists(path) {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}
}

// HasGlobalConfig checks if a global configuration file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.GlobalConfigPath())
}

// HasProjectConfig checks if a project configuration file exists.
func (l *KoanfLoader) HasProjectConfig() bool {
	return l.findProjectConfig() != ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
