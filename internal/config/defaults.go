// Package config provides configuration loading and writing.
package config

import (
	"github.com/smykla-labs/piklish/pkg/config"
	"github.com/smykla-labs/piklish/pkg/lint"
)

// defaultsToMap returns the default configuration as a flat koanf map.
// These form the lowest-precedence layer of every load.
func defaultsToMap() map[string]any {
	return map[string]any{
		"threshold": lint.DefaultThreshold,
		"quiet":     false,
		"strict":    false,

		"checks.reference":  true,
		"checks.format":     true,
		"checks.vague":      true,
		"checks.wip":        true,
		"checks.imperative": true,

		"severity.short":      lint.SeverityWarning.String(),
		"severity.reference":  lint.SeverityInfo.String(),
		"severity.format":     lint.SeverityInfo.String(),
		"severity.vague":      lint.SeverityWarning.String(),
		"severity.wip":        lint.SeverityError.String(),
		"severity.imperative": lint.SeverityWarning.String(),
	}
}

// DefaultConfig returns a fully-populated document mirroring the defaults.
// The init command writes it so users have every knob in front of them.
func DefaultConfig() *config.Config {
	threshold := lint.DefaultThreshold
	quiet := false
	strict := false
	enabled := true

	return &config.Config{
		Threshold: &threshold,
		Quiet:     &quiet,
		Strict:    &strict,
		Checks: &config.ChecksConfig{
			Reference:  &enabled,
			Format:     &enabled,
			Vague:      &enabled,
			Wip:        &enabled,
			Imperative: &enabled,
		},
		Severity: &config.SeverityConfig{
			Short:      lint.SeverityWarning,
			Reference:  lint.SeverityInfo,
			Format:     lint.SeverityInfo,
			Vague:      lint.SeverityWarning,
			Wip:        lint.SeverityError,
			Imperative: lint.SeverityWarning,
		},
	}
}
