package lint

import (
	"github.com/cockroachdb/errors"
)

//go:generate enumer -type=Severity -trimprefix=Severity -transform=lower -json -text
//go:generate go run github.com/smykla-labs/piklish/tools/enumerfix severity_enumer.go

// ErrInvalidSeverity is returned when an invalid severity value is provided.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity is the consequence level assigned to a triggered Validation kind.
// Error is the most severe; Ignore suppresses reporting entirely.
type Severity int

const (
	// SeverityUnknown is the zero value. It never appears in a populated
	// severity table and is rejected by ParseSeverity.
	SeverityUnknown Severity = iota

	// SeverityError indicates a finding that fails the run.
	SeverityError

	// SeverityWarning indicates a finding that is reported but does not
	// fail the run (unless strict mode is enabled).
	SeverityWarning

	// SeverityInfo indicates an informational finding.
	SeverityInfo

	// SeverityIgnore indicates a finding that is recorded but not reported.
	SeverityIgnore
)

// Blocks returns true if the severity fails the run. When strict is set,
// warnings block as well.
func (s Severity) Blocks(strict bool) bool {
	return s == SeverityError || (strict && s == SeverityWarning)
}

// GoString returns the qualified debug form, e.g. "Severity.Error".
func (s Severity) GoString() string {
	switch s {
	case SeverityError:
		return "Severity.Error"
	case SeverityWarning:
		return "Severity.Warning"
	case SeverityInfo:
		return "Severity.Info"
	case SeverityIgnore:
		return "Severity.Ignore"
	default:
		return "Severity.Unknown"
	}
}

// ParseSeverity parses a string into a Severity value. Only the four
// reportable severities are accepted.
func ParseSeverity(s string) (Severity, error) {
	severity, err := SeverityString(s)
	if err != nil || severity == SeverityUnknown {
		return SeverityUnknown,
			errors.Wrapf(
				ErrInvalidSeverity,
				"%q, must be one of %q, %q, %q, %q",
				s,
				SeverityError.String(),
				SeverityWarning.String(),
				SeverityInfo.String(),
				SeverityIgnore.String(),
			)
	}

	return severity, nil
}
