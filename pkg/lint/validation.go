// Package lint implements the commit message validation engine: the closed
// set of check kinds, their severities, the tunable configuration, and the
// per-commit validator.
package lint

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownValidation is returned when a validation name cannot be parsed.
var ErrUnknownValidation = errors.New("unknown validation type")

// Validation is a named rule-check kind that may trigger against a commit.
type Validation int

const (
	// ShortCommit triggers when the subject is shorter than the threshold.
	ShortCommit Validation = iota

	// MissingReference triggers when no issue reference is found.
	MissingReference

	// InvalidFormat triggers when the subject is not a conventional commit.
	InvalidFormat

	// VagueLanguage triggers on low-information wording like "fix stuff".
	VagueLanguage

	// WipCommit triggers on work-in-progress markers.
	WipCommit

	// NonImperative triggers when the subject does not use imperative mood.
	NonImperative
)

// AllValidations lists every kind in evaluation and reporting order.
var AllValidations = []Validation{
	ShortCommit,
	MissingReference,
	InvalidFormat,
	VagueLanguage,
	WipCommit,
	NonImperative,
}

// String returns the short lowercase name used in configuration keys and
// allow-lists.
func (v Validation) String() string {
	switch v {
	case ShortCommit:
		return "short"
	case MissingReference:
		return "reference"
	case InvalidFormat:
		return "format"
	case VagueLanguage:
		return "vague"
	case WipCommit:
		return "wip"
	case NonImperative:
		return "imperative"
	default:
		return "unknown"
	}
}

// Name returns the canonical PascalCase name of the kind.
func (v Validation) Name() string {
	switch v {
	case ShortCommit:
		return "ShortCommit"
	case MissingReference:
		return "MissingReference"
	case InvalidFormat:
		return "InvalidFormat"
	case VagueLanguage:
		return "VagueLanguage"
	case WipCommit:
		return "WipCommit"
	case NonImperative:
		return "NonImperative"
	default:
		return "Unknown"
	}
}

// GoString returns the qualified debug form, e.g. "Validation.ShortCommit".
func (v Validation) GoString() string {
	return "Validation." + v.Name()
}

// Description returns the human-readable description of the kind.
func (v Validation) Description() string {
	switch v {
	case ShortCommit:
		return "Short commit message"
	case MissingReference:
		return "Missing issue reference (e.g., #123)"
	case InvalidFormat:
		return "Invalid format (expected: type: description)"
	case VagueLanguage:
		return "Vague language (e.g., 'fix bug', 'update code')"
	case WipCommit:
		return "Work-in-progress commit (e.g., 'WIP', 'fixup!')"
	case NonImperative:
		return "Non-imperative mood (use 'Add' not 'Added')"
	default:
		return "Unknown validation"
	}
}

// ParseValidation parses a validation name, case-insensitive. Both canonical
// names (ShortCommit) and short aliases (short) are accepted.
func ParseValidation(s string) (Validation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shortcommit", "short":
		return ShortCommit, nil
	case "missingreference", "reference", "ref":
		return MissingReference, nil
	case "invalidformat", "format":
		return InvalidFormat, nil
	case "vaguelanguage", "vague":
		return VagueLanguage, nil
	case "wipcommit", "wip":
		return WipCommit, nil
	case "nonimperative", "imperative":
		return NonImperative, nil
	default:
		return 0, errors.Wrapf(ErrUnknownValidation, "%q", s)
	}
}

// ParseValidationList parses a comma-separated list of validation names.
// Empty elements are skipped.
func ParseValidationList(s string) ([]Validation, error) {
	var kinds []Validation

	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		kind, err := ParseValidation(name)
		if err != nil {
			return nil, err
		}

		kinds = append(kinds, kind)
	}

	return kinds, nil
}
