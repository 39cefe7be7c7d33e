package lint_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/piklish/pkg/lint"
)

var _ = Describe("Config", func() {
	var cfg *lint.Config

	BeforeEach(func() {
		cfg = lint.NewConfig()
	})

	Describe("NewConfig", func() {
		It("enables every check", func() {
			Expect(cfg.Threshold).To(Equal(lint.DefaultThreshold))
			Expect(cfg.RequireIssueRef).To(BeTrue())
			Expect(cfg.RequireConventionalFormat).To(BeTrue())
			Expect(cfg.CheckVagueLanguage).To(BeTrue())
			Expect(cfg.CheckWIP).To(BeTrue())
			Expect(cfg.CheckImperative).To(BeTrue())
		})

		DescribeTable(
			"assigns default severities",
			func(kind lint.Validation, expected lint.Severity) {
				Expect(cfg.GetSeverity(kind)).To(Equal(expected))
			},
			Entry("short commits warn", lint.ShortCommit, lint.SeverityWarning),
			Entry("missing references inform", lint.MissingReference, lint.SeverityInfo),
			Entry("invalid format informs", lint.InvalidFormat, lint.SeverityInfo),
			Entry("vague language warns", lint.VagueLanguage, lint.SeverityWarning),
			Entry("WIP commits fail", lint.WipCommit, lint.SeverityError),
			Entry("non-imperative mood warns", lint.NonImperative, lint.SeverityWarning),
		)
	})

	Describe("severity assignment", func() {
		It("round-trips every kind and severity", func() {
			severities := []lint.Severity{
				lint.SeverityError,
				lint.SeverityWarning,
				lint.SeverityInfo,
				lint.SeverityIgnore,
			}

			for _, kind := range lint.AllValidations {
				for _, severity := range severities {
					cfg.SetSeverity(kind, severity)
					Expect(cfg.GetSeverity(kind)).To(Equal(severity))
				}
			}
		})

		It("assigns a severity to a list of kinds", func() {
			cfg.SetSeverities(
				[]lint.Validation{lint.ShortCommit, lint.VagueLanguage},
				lint.SeverityError,
			)

			Expect(cfg.GetSeverity(lint.ShortCommit)).To(Equal(lint.SeverityError))
			Expect(cfg.GetSeverity(lint.VagueLanguage)).To(Equal(lint.SeverityError))
			Expect(cfg.GetSeverity(lint.WipCommit)).To(Equal(lint.SeverityError))
			Expect(cfg.GetSeverity(lint.NonImperative)).To(Equal(lint.SeverityWarning))
		})

		It("falls back to Warning on a zero-value config", func() {
			var zero lint.Config
			Expect(zero.GetSeverity(lint.WipCommit)).To(Equal(lint.SeverityWarning))
		})

		It("seeds defaults when setting on a zero-value config", func() {
			var zero lint.Config
			zero.SetSeverity(lint.ShortCommit, lint.SeverityError)

			Expect(zero.GetSeverity(lint.ShortCommit)).To(Equal(lint.SeverityError))
			Expect(zero.GetSeverity(lint.WipCommit)).To(Equal(lint.SeverityError))
		})
	})

	Describe("ShouldReport and IsError", func() {
		It("reports everything but Ignore", func() {
			Expect(cfg.ShouldReport(lint.WipCommit)).To(BeTrue())

			cfg.SetSeverity(lint.WipCommit, lint.SeverityIgnore)
			Expect(cfg.ShouldReport(lint.WipCommit)).To(BeFalse())
		})

		It("treats only Error as failing", func() {
			Expect(cfg.IsError(lint.WipCommit)).To(BeTrue())
			Expect(cfg.IsError(lint.ShortCommit)).To(BeFalse())
		})
	})

	Describe("Disable", func() {
		It("zeroes the threshold for the length check", func() {
			cfg.Disable(lint.ShortCommit)
			Expect(cfg.Threshold).To(BeZero())
		})

		It("clears the matching flag for the other checks", func() {
			cfg.Disable(lint.MissingReference)
			cfg.Disable(lint.InvalidFormat)
			cfg.Disable(lint.VagueLanguage)
			cfg.Disable(lint.WipCommit)
			cfg.Disable(lint.NonImperative)

			Expect(cfg.RequireIssueRef).To(BeFalse())
			Expect(cfg.RequireConventionalFormat).To(BeFalse())
			Expect(cfg.CheckVagueLanguage).To(BeFalse())
			Expect(cfg.CheckWIP).To(BeFalse())
			Expect(cfg.CheckImperative).To(BeFalse())
		})
	})

	Describe("Clone", func() {
		It("detaches the severity table", func() {
			clone := cfg.Clone()
			clone.SetSeverity(lint.WipCommit, lint.SeverityIgnore)
			clone.Threshold = 0

			Expect(cfg.GetSeverity(lint.WipCommit)).To(Equal(lint.SeverityError))
			Expect(cfg.Threshold).To(Equal(lint.DefaultThreshold))
		})
	})

	Describe("String", func() {
		It("includes the threshold and check flags", func() {
			Expect(cfg.String()).To(ContainSubstring("threshold=30"))
			Expect(cfg.String()).To(ContainSubstring("wip=true"))
		})
	})
})
