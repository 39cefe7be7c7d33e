package analyzer

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/smykla-labs/piklish/internal/color"
	"github.com/smykla-labs/piklish/pkg/lint"
)

// maxSubjectWidth caps the subject column so findings tables stay readable
// on narrow terminals.
const maxSubjectWidth = 50

// Run carries everything the reporter needs to describe one analysis pass.
type Run struct {
	// Total is the number of commits examined.
	Total int

	// Results holds the failing commits in history order.
	Results []lint.Result

	// Config supplies the severity table for styling and counting.
	Config *lint.Config

	// ErrorCommits, WarningCommits, and InfoCommits count failing commits
	// by their most severe finding.
	ErrorCommits   int
	WarningCommits int
	InfoCommits    int
}

// Failed reports whether the run fails under the strict flag.
func (r Run) Failed(strict bool) bool {
	return r.ErrorCommits > 0 || (strict && r.WarningCommits > 0)
}

// Reporter renders analysis runs for humans.
type Reporter struct {
	out   io.Writer
	theme color.Theme
}

// NewReporter creates a Reporter writing to out with the given theme.
func NewReporter(out io.Writer, theme color.Theme) *Reporter {
	return &Reporter{out: out, theme: theme}
}

// Report writes the outcome of a run: a short status line when there is
// nothing to show, a findings table otherwise.
func (r *Reporter) Report(run Run) {
	switch {
	case run.Total == 0:
		fmt.Fprintln(r.out, "No commits found in repository.")
	case len(run.Results) == 0:
		fmt.Fprintln(r.out, r.theme.Header.Render("Commit messages are adequately executed."))
	default:
		r.reportFindings(run)
	}
}

func (r *Reporter) reportFindings(run Run) {
	header := fmt.Sprintf(
		"Found %d of %d commits with validation issues:",
		len(run.Results),
		run.Total,
	)
	fmt.Fprintln(r.out, r.theme.Header.Render(header))

	fmt.Fprintln(r.out, r.renderTable(run))
	fmt.Fprintln(r.out, r.summaryLine(run))
}

// renderTable builds the findings table, one row per failing commit.
func (r *Reporter) renderTable(run Run) string {
	var buf strings.Builder

	t := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenRows: tw.On,
				},
			},
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Row().Formatting().WithAutoWrap(tw.WrapNone).Build().
			Build().Build()),
	)

	t.Header([]string{"Commit", "Age", "Subject", "Issues"})

	cfg := run.Config
	if cfg == nil {
		cfg = lint.NewConfig()
	}

	for _, result := range run.Results {
		_ = t.Append(r.buildRow(result, cfg))
	}

	_ = t.Render()

	return strings.TrimRight(buf.String(), "\n")
}

func (r *Reporter) buildRow(result lint.Result, cfg *lint.Config) []string {
	issues := make([]string, 0, len(result.Failures))

	for _, kind := range result.Failures {
		severity := cfg.GetSeverity(kind)
		tag := r.theme.ForSeverity(severity).Render(severity.String())
		issues = append(issues, tag+" "+kind.Description())
	}

	subject := runewidth.Truncate(result.Commit.Subject, maxSubjectWidth, "…")
	if subject == "" {
		subject = r.theme.Muted.Render("(empty subject)")
	}

	return []string{
		r.theme.Hash.Render(result.Commit.ShortHash()),
		humanize.Time(result.Commit.When),
		subject,
		strings.Join(issues, "\n"),
	}
}

// summaryLine counts failing commits by their most severe finding.
func (r *Reporter) summaryLine(run Run) string {
	parts := []string{}

	if run.ErrorCommits > 0 {
		parts = append(parts,
			r.theme.Error.Render(fmt.Sprintf("%d %s", run.ErrorCommits, plural("error", run.ErrorCommits))))
	}

	if run.WarningCommits > 0 {
		parts = append(parts,
			r.theme.Warning.Render(fmt.Sprintf("%d %s", run.WarningCommits, plural("warning", run.WarningCommits))))
	}

	if run.InfoCommits > 0 {
		parts = append(parts,
			r.theme.Info.Render(fmt.Sprintf("%d info", run.InfoCommits)))
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, ", ")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
