package lint

import (
	"regexp"
)

// Rule patterns are centralized here so they can be tuned without touching
// the validator control flow.
var (
	// Issue/ticket references: #123, GH-456, JIRA-789 and similar
	// alphanumeric-dash-number tokens.
	referenceRegex = regexp.MustCompile(`(?i)(#\d+|gh-\d+|[A-Z]{2,}-\d+)`)

	// Conventional commit format: type(scope)?!?: description
	conventionalCommitRegex = regexp.MustCompile(
		`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\(.+\))?!?:\s.+`,
	)

	// Vague wording: a generic verb followed by a low-information object,
	// like "fix bug", "update code", "change stuff".
	vagueLanguageRegex = regexp.MustCompile(
		`(?i)\b(fix(ed|es|ing)?|update[ds]?|change[ds]?|modify|modified|modifies|tweak(ed|s)?|adjust(ed|s)?)\s+(it|this|that|things?|stuff|code|bug|issue|error|problem)s?\b`,
	)

	// Work-in-progress markers: WIP prefixes/suffixes, fixup!/squash!/amend!
	// autosquash subjects, and do-not-merge flags.
	wipCommitRegex = regexp.MustCompile(
		`(?i)(^wip\b|^wip:|^\[wip\]|\bwork.?in.?progress\b|^fixup!|^squash!|^amend!|\bdo\s*not\s*merge\b|\bdon'?t\s*merge\b|\bwip\s*$)`,
	)

	// Non-imperative mood: past tense (-ed) and present continuous (-ing)
	// verb forms at the start of the subject, after an optional conventional
	// commit prefix.
	nonImperativeRegex = regexp.MustCompile(
		`(?i)^(?:(?:feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(?:\([^)]+\))?!?:\s*)?(added|removed|fixed|updated|changed|implemented|created|deleted|modified|refactored|improved|resolved|merged|moved|renamed|replaced|cleaned|enabled|disabled|converted|introduced|integrated|adjusted|corrected|enhanced|extended|optimized|simplified|upgraded|migrated|adding|removing|fixing|updating|changing|implementing|creating|deleting|modifying|refactoring|improving|resolving|merging|moving|renaming|replacing|cleaning|enabling|disabling|converting|introducing|integrating|adjusting|correcting|enhancing|extending|optimizing|simplifying|upgrading|migrating)\b`,
	)
)

// HasReference reports whether the text contains an issue/ticket reference.
func HasReference(text string) bool {
	return referenceRegex.MatchString(text)
}

// HasConventionalFormat reports whether the subject follows the conventional
// commits format.
func HasConventionalFormat(subject string) bool {
	return conventionalCommitRegex.MatchString(subject)
}

// HasVagueLanguage reports whether the subject contains vague wording.
func HasVagueLanguage(subject string) bool {
	return vagueLanguageRegex.MatchString(subject)
}

// IsWIPCommit reports whether the subject carries a work-in-progress marker.
func IsWIPCommit(subject string) bool {
	return wipCommitRegex.MatchString(subject)
}

// IsNonImperative reports whether the subject starts with a non-imperative
// verb form, ignoring a conventional commit prefix if present.
func IsNonImperative(subject string) bool {
	return nonImperativeRegex.MatchString(subject)
}
