package lint_test

import (
	"encoding/json"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/piklish/pkg/lint"
)

var _ = Describe("Severity", func() {
	DescribeTable(
		"string forms",
		func(severity lint.Severity, text, debug string) {
			Expect(severity.String()).To(Equal(text))
			Expect(fmt.Sprintf("%#v", severity)).To(Equal(debug))
		},
		Entry("error", lint.SeverityError, "error", "Severity.Error"),
		Entry("warning", lint.SeverityWarning, "warning", "Severity.Warning"),
		Entry("info", lint.SeverityInfo, "info", "Severity.Info"),
		Entry("ignore", lint.SeverityIgnore, "ignore", "Severity.Ignore"),
		Entry("unknown", lint.SeverityUnknown, "unknown", "Severity.Unknown"),
	)

	Describe("ParseSeverity", func() {
		DescribeTable(
			"parses valid values",
			func(input string, expected lint.Severity) {
				severity, err := lint.ParseSeverity(input)
				Expect(err).NotTo(HaveOccurred())
				Expect(severity).To(Equal(expected))
			},
			Entry("error", "error", lint.SeverityError),
			Entry("warning", "warning", lint.SeverityWarning),
			Entry("info", "info", lint.SeverityInfo),
			Entry("ignore", "ignore", lint.SeverityIgnore),
		)

		It("rejects unknown values", func() {
			_, err := lint.ParseSeverity("fatal")
			Expect(err).To(MatchError(lint.ErrInvalidSeverity))
			Expect(err.Error()).To(ContainSubstring("fatal"))
		})

		It("rejects the zero value by name", func() {
			_, err := lint.ParseSeverity("unknown")
			Expect(err).To(MatchError(lint.ErrInvalidSeverity))
		})
	})

	Describe("Blocks", func() {
		DescribeTable(
			"severity vs strict mode",
			func(severity lint.Severity, strict, expected bool) {
				Expect(severity.Blocks(strict)).To(Equal(expected))
			},
			Entry("error always blocks", lint.SeverityError, false, true),
			Entry("error blocks in strict mode", lint.SeverityError, true, true),
			Entry("warning passes by default", lint.SeverityWarning, false, false),
			Entry("warning blocks in strict mode", lint.SeverityWarning, true, true),
			Entry("info never blocks", lint.SeverityInfo, true, false),
			Entry("ignore never blocks", lint.SeverityIgnore, true, false),
		)
	})

	Describe("JSON round-trip", func() {
		It("marshals to the lowercase name", func() {
			data, err := json.Marshal(lint.SeverityWarning)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`"warning"`))
		})

		It("unmarshals from the lowercase name", func() {
			var severity lint.Severity
			Expect(json.Unmarshal([]byte(`"ignore"`), &severity)).To(Succeed())
			Expect(severity).To(Equal(lint.SeverityIgnore))
		})

		It("fails on unknown names", func() {
			var severity lint.Severity
			Expect(json.Unmarshal([]byte(`"fatal"`), &severity)).NotTo(Succeed())
		})
	})
})
