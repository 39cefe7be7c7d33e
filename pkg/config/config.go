// Package config provides the configuration schema for piklish. Fields are
// pointers so that unset values can be told apart from explicit zeroes when
// merging sources.
package config

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/piklish/pkg/lint"
)

// Config is the root configuration document.
type Config struct {
	// Threshold is the minimum subject length in characters. 0 disables
	// the length check.
	Threshold *int `json:"threshold,omitempty" koanf:"threshold" toml:"threshold,omitempty"`

	// Limit caps how many commits are examined, newest first.
	Limit *int `json:"limit,omitempty" koanf:"limit" toml:"limit,omitempty"`

	// Quiet suppresses output for passing runs.
	Quiet *bool `json:"quiet,omitempty" koanf:"quiet" toml:"quiet,omitempty"`

	// Strict makes warning-level findings fail the run.
	Strict *bool `json:"strict,omitempty" koanf:"strict" toml:"strict,omitempty"`

	// Branches lists branch glob patterns the analysis applies to.
	Branches []string `json:"branches,omitempty" koanf:"branches" toml:"branches,omitempty"`

	// Only restricts reporting to the named validation kinds.
	Only []string `json:"only,omitempty" koanf:"only" toml:"only,omitempty"`

	// Disable turns off the named validation kinds entirely.
	Disable []string `json:"disable,omitempty" koanf:"disable" toml:"disable,omitempty"`

	// Checks toggles individual validation kinds.
	Checks *ChecksConfig `json:"checks,omitempty" koanf:"checks" toml:"checks,omitempty"`

	// Severity overrides the consequence level per validation kind.
	Severity *SeverityConfig `json:"severity,omitempty" koanf:"severity" toml:"severity,omitempty"`
}

// ChecksConfig toggles individual validation kinds. Keys match the short
// validation names.
type ChecksConfig struct {
	// Reference gates the issue reference check.
	Reference *bool `json:"reference,omitempty" koanf:"reference" toml:"reference,omitempty"`

	// Format gates the conventional commit format check.
	Format *bool `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`

	// Vague gates the vague language check.
	Vague *bool `json:"vague,omitempty" koanf:"vague" toml:"vague,omitempty"`

	// Wip gates the work-in-progress check.
	Wip *bool `json:"wip,omitempty" koanf:"wip" toml:"wip,omitempty"`

	// Imperative gates the imperative mood check.
	Imperative *bool `json:"imperative,omitempty" koanf:"imperative" toml:"imperative,omitempty"`
}

// SeverityConfig overrides the consequence level per validation kind.
// Unset entries keep their defaults.
type SeverityConfig struct {
	Short      lint.Severity `json:"short,omitempty" koanf:"short" toml:"short,omitempty"`
	Reference  lint.Severity `json:"reference,omitempty" koanf:"reference" toml:"reference,omitempty"`
	Format     lint.Severity `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`
	Vague      lint.Severity `json:"vague,omitempty" koanf:"vague" toml:"vague,omitempty"`
	Wip        lint.Severity `json:"wip,omitempty" koanf:"wip" toml:"wip,omitempty"`
	Imperative lint.Severity `json:"imperative,omitempty" koanf:"imperative" toml:"imperative,omitempty"`
}

// entries pairs each override with its validation kind.
func (s *SeverityConfig) entries() map[lint.Validation]lint.Severity {
	return map[lint.Validation]lint.Severity{
		lint.ShortCommit:      s.Short,
		lint.MissingReference: s.Reference,
		lint.InvalidFormat:    s.Format,
		lint.VagueLanguage:    s.Vague,
		lint.WipCommit:        s.Wip,
		lint.NonImperative:    s.Imperative,
	}
}

// ToLint converts the document into an engine configuration, starting from
// defaults and applying every set field.
func (c *Config) ToLint() (*lint.Config, error) {
	cfg := lint.NewConfig()

	if c == nil {
		return cfg, nil
	}

	if c.Threshold != nil {
		cfg.Threshold = *c.Threshold
	}

	if checks := c.Checks; checks != nil {
		if checks.Reference != nil {
			cfg.RequireIssueRef = *checks.Reference
		}

		if checks.Format != nil {
			cfg.RequireConventionalFormat = *checks.Format
		}

		if checks.Vague != nil {
			cfg.CheckVagueLanguage = *checks.Vague
		}

		if checks.Wip != nil {
			cfg.CheckWIP = *checks.Wip
		}

		if checks.Imperative != nil {
			cfg.CheckImperative = *checks.Imperative
		}
	}

	if c.Severity != nil {
		for kind, severity := range c.Severity.entries() {
			if severity != lint.SeverityUnknown {
				cfg.SetSeverity(kind, severity)
			}
		}
	}

	for _, name := range c.Disable {
		kind, err := lint.ParseValidation(name)
		if err != nil {
			return nil, errors.Wrap(err, "invalid disable entry")
		}

		cfg.Disable(kind)
	}

	return cfg, nil
}

// OnlyKinds parses the Only allow-list into validation kinds.
func (c *Config) OnlyKinds() ([]lint.Validation, error) {
	if c == nil || len(c.Only) == 0 {
		return nil, nil
	}

	kinds := make([]lint.Validation, 0, len(c.Only))

	for _, name := range c.Only {
		kind, err := lint.ParseValidation(name)
		if err != nil {
			return nil, errors.Wrap(err, "invalid only entry")
		}

		kinds = append(kinds, kind)
	}

	return kinds, nil
}

// IsQuiet returns the quiet flag, defaulting to false.
func (c *Config) IsQuiet() bool {
	return c != nil && c.Quiet != nil && *c.Quiet
}

// IsStrict returns the strict flag, defaulting to false.
func (c *Config) IsStrict() bool {
	return c != nil && c.Strict != nil && *c.Strict
}
