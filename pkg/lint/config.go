package lint

import (
	"fmt"
	"maps"
)

// DefaultThreshold is the default minimum subject length in characters.
const DefaultThreshold = 30

// Config tunes which validation kinds run and how severely their findings
// are treated. The zero value is not useful; construct with NewConfig.
// A Config is owned by a single caller during a run and is not safe for
// concurrent mutation.
type Config struct {
	// Threshold is the minimum subject length in characters.
	// 0 disables the ShortCommit check.
	Threshold int

	// RequireIssueRef gates the MissingReference check.
	RequireIssueRef bool

	// RequireConventionalFormat gates the InvalidFormat check.
	RequireConventionalFormat bool

	// CheckVagueLanguage gates the VagueLanguage check.
	CheckVagueLanguage bool

	// CheckWIP gates the WipCommit check.
	CheckWIP bool

	// CheckImperative gates the NonImperative check.
	CheckImperative bool

	severities map[Validation]Severity
}

// defaultSeverities maps every kind to its default consequence level.
// WipCommit blocks by default; structural checks only inform.
func defaultSeverities() map[Validation]Severity {
	return map[Validation]Severity{
		ShortCommit:      SeverityWarning,
		MissingReference: SeverityInfo,
		InvalidFormat:    SeverityInfo,
		VagueLanguage:    SeverityWarning,
		WipCommit:        SeverityError,
		NonImperative:    SeverityWarning,
	}
}

// NewConfig creates a Config with all checks enabled, the default threshold,
// and default severities.
func NewConfig() *Config {
	return &Config{
		Threshold:                 DefaultThreshold,
		RequireIssueRef:           true,
		RequireConventionalFormat: true,
		CheckVagueLanguage:        true,
		CheckWIP:                  true,
		CheckImperative:           true,
		severities:                defaultSeverities(),
	}
}

// GetSeverity returns the severity assigned to a kind. It is total: kinds
// without an explicit assignment report as Warning.
func (c *Config) GetSeverity(kind Validation) Severity {
	if severity, ok := c.severities[kind]; ok {
		return severity
	}

	return SeverityWarning
}

// SetSeverity replaces the severity assignment for a kind.
func (c *Config) SetSeverity(kind Validation, severity Severity) {
	if c.severities == nil {
		c.severities = defaultSeverities()
	}

	c.severities[kind] = severity
}

// SetSeverities assigns a severity to every kind in the list.
func (c *Config) SetSeverities(kinds []Validation, severity Severity) {
	for _, kind := range kinds {
		c.SetSeverity(kind, severity)
	}
}

// ShouldReport returns true if findings of the kind are reported.
func (c *Config) ShouldReport(kind Validation) bool {
	return c.GetSeverity(kind) != SeverityIgnore
}

// IsError returns true if findings of the kind fail the run.
func (c *Config) IsError(kind Validation) bool {
	return c.GetSeverity(kind) == SeverityError
}

// Disable turns off a check entirely. Unlike Ignore severity, a disabled
// check is never evaluated.
func (c *Config) Disable(kind Validation) {
	switch kind {
	case ShortCommit:
		c.Threshold = 0
	case MissingReference:
		c.RequireIssueRef = false
	case InvalidFormat:
		c.RequireConventionalFormat = false
	case VagueLanguage:
		c.CheckVagueLanguage = false
	case WipCommit:
		c.CheckWIP = false
	case NonImperative:
		c.CheckImperative = false
	}
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (c *Config) Clone() *Config {
	clone := *c
	clone.severities = make(map[Validation]Severity, len(c.severities))
	maps.Copy(clone.severities, c.severities)

	return &clone
}

// String returns a compact representation including the threshold.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config(threshold=%d, issue_ref=%t, conventional_format=%t, vague_language=%t, wip=%t, imperative=%t)",
		c.Threshold,
		c.RequireIssueRef,
		c.RequireConventionalFormat,
		c.CheckVagueLanguage,
		c.CheckWIP,
		c.CheckImperative,
	)
}
