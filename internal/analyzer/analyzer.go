// Package analyzer orchestrates a full history analysis: fetching commits,
// validating them concurrently, and reporting the findings.
package analyzer

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-labs/piklish/internal/git"
	"github.com/smykla-labs/piklish/pkg/lint"
	"github.com/smykla-labs/piklish/pkg/logger"
)

// ErrValidationFailed is returned by Run when the history does not pass.
// The reporter has already printed the findings by the time it is returned.
var ErrValidationFailed = errors.New("found commits with validation issues")

// Options tunes a single analysis run.
type Options struct {
	// Limit caps how many commits are examined, newest first.
	// nil examines all; 0 examines none.
	Limit *int

	// Threshold overrides the minimum subject length. nil keeps the
	// configured value.
	Threshold *int

	// Quiet suppresses output for passing runs. It never changes the
	// pass/fail outcome.
	Quiet bool

	// Strict makes warning-level findings fail the run.
	Strict bool

	// Only restricts reporting to the listed validation kinds.
	Only []lint.Validation

	// Branches lists branch glob patterns the analysis applies to.
	// On other branches the run is skipped and passes.
	Branches []string

	// Config is the validation configuration. nil uses defaults.
	Config *lint.Config
}

// Analyzer validates the commit history of one repository.
type Analyzer struct {
	repo     git.Repository
	reporter *Reporter
	log      logger.Logger
}

// New creates an Analyzer over an already-open repository.
func New(repo git.Repository, reporter *Reporter, log logger.Logger) *Analyzer {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Analyzer{repo: repo, reporter: reporter, log: log}
}

// NewForPath opens the repository containing path and wraps it in an Analyzer.
func NewForPath(path string, reporter *Reporter, log logger.Logger) (*Analyzer, error) {
	repo, err := git.Open(path)
	if err != nil {
		return nil, err
	}

	return New(repo, reporter, log), nil
}

// Run analyzes the history and reports the findings. It returns
// ErrValidationFailed when the history does not pass, or another error when
// the repository cannot be read.
func (a *Analyzer) Run(ctx context.Context, opts Options) error {
	cfg := resolveConfig(opts)

	if len(opts.Branches) > 0 {
		branch, err := currentBranch(a.repo)
		if err != nil {
			return err
		}

		if !branchMatches(branch, opts.Branches) {
			a.log.Info("branch not covered, skipping", "branch", branch)

			return nil
		}
	}

	limit := -1
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	commits, err := a.repo.FetchCommits(limit)
	if err != nil {
		return errors.Wrap(err, "failed to fetch commits")
	}

	a.log.Debug("fetched commits", "count", len(commits), "limit", limit)

	results := validateAll(ctx, commits, cfg)
	results = filterOnly(results, opts.Only)

	run := summarize(commits, results, cfg)
	failed := run.Failed(opts.Strict)

	if !opts.Quiet || failed {
		a.reporter.Report(run)
	}

	if failed {
		return errors.Wrapf(
			ErrValidationFailed,
			"%d of %d commits",
			len(run.Results),
			run.Total,
		)
	}

	return nil
}

// resolveConfig builds the effective configuration for a run. An explicit
// Config wins; the Threshold option overrides either source.
func resolveConfig(opts Options) *lint.Config {
	cfg := opts.Config
	if cfg == nil {
		cfg = lint.NewConfig()
	} else {
		cfg = cfg.Clone()
	}

	if opts.Threshold != nil {
		cfg.Threshold = *opts.Threshold
	}

	return cfg
}

// validateAll validates every commit concurrently, keeping results aligned
// with the input order, then drops commits without reportable findings.
func validateAll(
	ctx context.Context,
	commits []lint.Commit,
	cfg *lint.Config,
) []lint.Result {
	failures := make([][]lint.Validation, len(commits))
	g, _ := errgroup.WithContext(ctx)

	for i := range commits {
		commit := commits[i]

		g.Go(func() error {
			failures[i] = commit.Validate(cfg)

			return nil
		})
	}

	_ = g.Wait()

	results := make([]lint.Result, 0, len(commits))

	for i, commit := range commits {
		reportable := make([]lint.Validation, 0, len(failures[i]))

		for _, kind := range failures[i] {
			if cfg.ShouldReport(kind) {
				reportable = append(reportable, kind)
			}
		}

		if len(reportable) == 0 {
			continue
		}

		results = append(results, lint.Result{Commit: commit, Failures: reportable})
	}

	return results
}

// filterOnly restricts results to the allow-listed kinds. Commits left
// without findings drop out entirely.
func filterOnly(results []lint.Result, only []lint.Validation) []lint.Result {
	if len(only) == 0 {
		return results
	}

	filtered := make([]lint.Result, 0, len(results))

	for _, result := range results {
		kept := make([]lint.Validation, 0, len(result.Failures))

		for _, kind := range result.Failures {
			if slices.Contains(only, kind) {
				kept = append(kept, kind)
			}
		}

		if len(kept) == 0 {
			continue
		}

		filtered = append(filtered, lint.Result{Commit: result.Commit, Failures: kept})
	}

	return filtered
}

// summarize tallies failing commits by their most severe finding.
func summarize(
	commits []lint.Commit,
	results []lint.Result,
	cfg *lint.Config,
) Run {
	run := Run{
		Total:   len(commits),
		Results: results,
		Config:  cfg,
	}

	for _, result := range results {
		switch result.MaxSeverity(cfg) {
		case lint.SeverityError:
			run.ErrorCommits++
		case lint.SeverityWarning:
			run.WarningCommits++
		case lint.SeverityInfo:
			run.InfoCommits++
		}
	}

	return run
}
