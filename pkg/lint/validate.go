package lint

// Result pairs a commit with the validation kinds it failed.
type Result struct {
	Commit   Commit
	Failures []Validation
}

// HasFailures reports whether any check triggered for the commit.
func (r Result) HasFailures() bool {
	return len(r.Failures) > 0
}

// MaxSeverity returns the most severe rating among the failures under cfg.
// It returns SeverityIgnore when there are no failures.
func (r Result) MaxSeverity(cfg *Config) Severity {
	if cfg == nil {
		cfg = NewConfig()
	}

	best := SeverityIgnore

	for _, kind := range r.Failures {
		if sev := cfg.GetSeverity(kind); sev != SeverityUnknown && sev < best {
			best = sev
		}
	}

	return best
}

// ValidateCommits validates each commit against cfg and returns results for
// the commits that failed at least one check, preserving input order. A nil
// cfg uses defaults.
func ValidateCommits(commits []Commit, cfg *Config) []Result {
	if cfg == nil {
		cfg = NewConfig()
	}

	results := make([]Result, 0, len(commits))

	for _, commit := range commits {
		failures := commit.Validate(cfg)
		if len(failures) == 0 {
			continue
		}

		results = append(results, Result{Commit: commit, Failures: failures})
	}

	return results
}
