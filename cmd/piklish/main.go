// Package main provides the CLI entry point for piklish.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/piklish/internal/analyzer"
	"github.com/smykla-labs/piklish/internal/color"
	"github.com/smykla-labs/piklish/internal/crashdump"
	internalconfig "github.com/smykla-labs/piklish/internal/config"
	"github.com/smykla-labs/piklish/pkg/config"
	"github.com/smykla-labs/piklish/pkg/lint"
	"github.com/smykla-labs/piklish/pkg/logger"
)

const (
	// ExitCodeOK indicates the history passed.
	ExitCodeOK = 0

	// ExitCodeIssues indicates the history contains blocking findings.
	// The report has already been printed to stdout.
	ExitCodeIssues = 1

	// ExitCodeError indicates the analysis itself could not run.
	ExitCodeError = 2

	// ExitCodeCrash indicates an unexpected panic occurred.
	ExitCodeCrash = 3
)

var (
	repoPath      string
	limitFlag     int
	thresholdFlag int
	quietFlag     bool
	strictFlag    bool
	onlyList      []string
	disableList   []string
	branchesList  []string
	errorList     []string
	warnList      []string
	ignoreList    []string
	debugMode     bool
	noColorFlag   bool
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)

			if path, dumpErr := writeCrashDump(r); dumpErr == nil {
				fmt.Fprintf(os.Stderr, "crash dump written to %s\n", path)
			}

			exitCode = ExitCodeCrash
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, analyzer.ErrValidationFailed) {
			return ExitCodeIssues
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return ExitCodeError
	}

	return ExitCodeOK
}

var rootCmd = &cobra.Command{
	Use:   "piklish",
	Short: "Commit message quality analyzer",
	Long: `Commit message quality analyzer - walks the history of a git repository
and reports commits whose messages are too short, vague, unreferenced,
or otherwise below the bar.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.RunE = run

	rootCmd.Flags().StringVarP(
		&repoPath,
		"path",
		"p",
		".",
		"Path to the git repository to analyze",
	)
	rootCmd.Flags().IntVarP(
		&limitFlag,
		"limit",
		"n",
		0,
		"Maximum number of commits to analyze, newest first (0 = all)",
	)
	rootCmd.Flags().IntVar(
		&thresholdFlag,
		"threshold",
		0,
		"Minimum subject length in characters (0 disables the length check)",
	)
	rootCmd.Flags().BoolVarP(
		&quietFlag,
		"quiet",
		"q",
		false,
		"Suppress output when the history passes",
	)
	rootCmd.Flags().BoolVar(
		&strictFlag,
		"strict",
		false,
		"Treat warnings as failures",
	)
	rootCmd.Flags().StringSliceVar(
		&onlyList,
		"only",
		[]string{},
		"Comma-separated list of checks to report exclusively (e.g., short,wip)",
	)
	rootCmd.Flags().StringSliceVar(
		&disableList,
		"disable",
		[]string{},
		"Comma-separated list of checks to disable (e.g., reference,format)",
	)
	rootCmd.Flags().StringSliceVar(
		&branchesList,
		"branches",
		[]string{},
		"Branch glob patterns the analysis applies to (e.g., 'main,release/*')",
	)
	rootCmd.Flags().StringSliceVar(
		&errorList,
		"error",
		[]string{},
		"Checks whose findings should fail the run (e.g., short,vague)",
	)
	rootCmd.Flags().StringSliceVar(
		&warnList,
		"warn",
		[]string{},
		"Checks whose findings should only warn",
	)
	rootCmd.Flags().StringSliceVar(
		&ignoreList,
		"ignore",
		[]string{},
		"Checks whose findings should be ignored entirely",
	)
	rootCmd.Flags().BoolVar(
		&debugMode,
		"debug",
		false,
		"Enable debug logging",
	)

	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
}

func run(_ *cobra.Command, _ []string) error {
	log := logger.New(os.Stderr, debugMode)

	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return errors.Wrap(err, "failed to resolve repository path")
	}

	cfg, err := loadConfig(absPath)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	lintCfg, err := cfg.ToLint()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	only, err := cfg.OnlyKinds()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	log.Debug("configuration resolved",
		"threshold", lintCfg.Threshold,
		"strict", cfg.IsStrict(),
		"quiet", cfg.IsQuiet(),
	)

	theme := color.NewTheme(
		color.Profile(noColorFlag) && color.IsTerminal(os.Stdout),
	)
	reporter := analyzer.NewReporter(os.Stdout, theme)

	a, err := analyzer.NewForPath(absPath, reporter, log)
	if err != nil {
		return err
	}

	return a.Run(context.Background(), analyzer.Options{
		Limit:    cfg.Limit,
		Quiet:    cfg.IsQuiet(),
		Strict:   cfg.IsStrict(),
		Only:     only,
		Branches: cfg.Branches,
		Config:   lintCfg,
	})
}

// writeCrashDump preserves the panic under ~/.piklish/crash for later
// reporting.
func writeCrashDump(recovered any) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(
		homeDir,
		internalconfig.GlobalConfigDir,
		crashdump.DirName,
	)

	return crashdump.Write(dir, version, recovered, debug.Stack())
}

// loadConfig merges defaults, global and project TOML files, environment
// variables, and explicitly set CLI flags, in that order of precedence.
func loadConfig(workDir string) (*config.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	loader := internalconfig.NewKoanfLoaderWithDirs(homeDir, workDir)

	flags, err := flagOverrides()
	if err != nil {
		return nil, err
	}

	return loader.Load(flags)
}

// flagOverrides collects flags the user actually set, keyed the way the
// configuration loader expects them.
func flagOverrides() (map[string]any, error) {
	flags := map[string]any{}
	fs := rootCmd.Flags()

	if fs.Changed("threshold") {
		flags["threshold"] = thresholdFlag
	}

	if fs.Changed("limit") && limitFlag > 0 {
		flags["limit"] = limitFlag
	}

	if fs.Changed("quiet") {
		flags["quiet"] = quietFlag
	}

	if fs.Changed("strict") {
		flags["strict"] = strictFlag
	}

	if len(onlyList) > 0 {
		flags["only"] = onlyList
	}

	if len(disableList) > 0 {
		flags["disable"] = disableList
	}

	if len(branchesList) > 0 {
		flags["branches"] = branchesList
	}

	if err := severityOverrides(flags); err != nil {
		return nil, err
	}

	return flags, nil
}

// severityOverrides maps the --error/--warn/--ignore check lists onto
// severity.* keys for the loader.
func severityOverrides(flags map[string]any) error {
	groups := []struct {
		names []string
		level lint.Severity
	}{
		{errorList, lint.SeverityError},
		{warnList, lint.SeverityWarning},
		{ignoreList, lint.SeverityIgnore},
	}

	for _, group := range groups {
		for _, name := range group.names {
			kind, err := lint.ParseValidation(name)
			if err != nil {
				return err
			}

			flags["severity."+kind.String()] = group.level.String()
		}
	}

	return nil
}
