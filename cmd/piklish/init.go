// Package main provides the CLI entry point for piklish.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/piklish/internal/backup"
	internalconfig "github.com/smykla-labs/piklish/internal/config"
)

var (
	globalFlag bool
	forceFlag  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize piklish configuration",
	Long: `Initialize a piklish configuration file with the default settings.

By default, creates a project-local configuration file (.piklish/config.toml).
Use --global or -g to create a global configuration file (~/.piklish/config.toml).

Use --force to overwrite an existing configuration file.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(
		&globalFlag,
		"global",
		"g",
		false,
		"Initialize global configuration",
	)

	initCmd.Flags().BoolVarP(
		&forceFlag,
		"force",
		"f",
		false,
		"Overwrite existing configuration file",
	)
}

func runInit(_ *cobra.Command, _ []string) error {
	writer, err := internalconfig.NewWriter()
	if err != nil {
		return err
	}

	// Overwrite the file that is actually in effect, which for projects
	// may be the alternate piklish.toml location.
	path := writer.ProjectConfigPath()
	existing := writer.ExistingProjectConfigPath()

	if globalFlag {
		path = writer.GlobalConfigPath()

		existing = ""
		if fileExists(path) {
			existing = path
		}
	}

	if existing != "" {
		path = existing

		if !forceFlag {
			return errors.Newf(
				"configuration file already exists at %s (use --force to overwrite)",
				existing,
			)
		}

		backupPath, backupErr := backupExisting(existing)
		if backupErr != nil {
			return errors.Wrap(backupErr, "failed to back up existing configuration")
		}

		fmt.Printf("Backed up existing configuration to %s\n", backupPath)
	}

	cfg := internalconfig.DefaultConfig()

	if err := writer.WriteFile(path, cfg); err != nil {
		return errors.Wrap(err, "failed to write configuration")
	}

	fmt.Printf("Created %s\n", path)

	return nil
}

// backupExisting snapshots the current config into ~/.piklish/backups
// before it is overwritten.
func backupExisting(path string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(
		homeDir,
		internalconfig.GlobalConfigDir,
		backup.DirName,
	)

	return backup.Snapshot(path, dir)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
