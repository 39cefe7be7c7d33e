package lint

import (
	"time"
	"unicode/utf8"
)

// Commit is an immutable record of one historical commit. Instances are
// constructed by the repository accessor when decoding history and passed
// around by value.
type Commit struct {
	// Hash is the full 40-character lowercase hex commit identifier.
	Hash string

	// AuthorName is the commit author's name.
	AuthorName string

	// AuthorEmail is the commit author's email address.
	AuthorEmail string

	// Subject is the first line of the commit message. May be empty.
	Subject string

	// Body is the commit message after the subject line, trimmed.
	Body string

	// When is the author timestamp. Used for reporting only.
	When time.Time
}

// shortHashLength is the abbreviated hash length used in reports.
const shortHashLength = 7

// ShortHash returns the abbreviated commit hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) < shortHashLength {
		return c.Hash
	}

	return c.Hash[:shortHashLength]
}

// IsShort reports whether the subject is shorter than the threshold.
// Length is measured in characters, not bytes.
func (c Commit) IsShort(threshold int) bool {
	return utf8.RuneCountInString(c.Subject) < threshold
}

// message returns the text searched for issue references: the subject plus
// the body when present.
func (c Commit) message() string {
	if c.Body == "" {
		return c.Subject
	}

	return c.Subject + "\n" + c.Body
}

// Validate applies the enabled checks from cfg to the commit and returns the
// triggered kinds in evaluation order, each at most once. A nil cfg uses
// defaults. The function is pure; it never fails.
func (c Commit) Validate(cfg *Config) []Validation {
	if cfg == nil {
		cfg = NewConfig()
	}

	failures := make([]Validation, 0, len(AllValidations))

	if cfg.Threshold > 0 && c.IsShort(cfg.Threshold) {
		failures = append(failures, ShortCommit)
	}

	if cfg.RequireIssueRef && !HasReference(c.message()) {
		failures = append(failures, MissingReference)
	}

	if cfg.RequireConventionalFormat && !HasConventionalFormat(c.Subject) {
		failures = append(failures, InvalidFormat)
	}

	if cfg.CheckVagueLanguage && HasVagueLanguage(c.Subject) {
		failures = append(failures, VagueLanguage)
	}

	if cfg.CheckWIP && IsWIPCommit(c.Subject) {
		failures = append(failures, WipCommit)
	}

	if cfg.CheckImperative && IsNonImperative(c.Subject) {
		failures = append(failures, NonImperative)
	}

	return failures
}

// ValidateWithThreshold validates with the threshold field of a copy of cfg
// overridden. The caller's cfg is never mutated.
func (c Commit) ValidateWithThreshold(cfg *Config, threshold int) []Validation {
	if cfg == nil {
		cfg = NewConfig()
	} else {
		cfg = cfg.Clone()
	}

	cfg.Threshold = threshold

	return c.Validate(cfg)
}
