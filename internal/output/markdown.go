package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/contentgate/internal/engine"
	"github.com/dotcommander/contentgate/internal/types"
)

// MarkdownFormatter renders a run summary as a Markdown report.
type MarkdownFormatter struct {
	w          io.Writer
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a MarkdownFormatter. When outputFile is empty
// the report goes to w.
func NewMarkdownFormatter(w io.Writer, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		w:          w,
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format renders the summary as Markdown.
func (f *MarkdownFormatter) Format(summary *Summary) error {
	var b strings.Builder

	b.WriteString("# Content Quality Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	if summary.Root != "" {
		b.WriteString(fmt.Sprintf("**Root:** %s\n\n", summary.Root))
	}
	b.WriteString(fmt.Sprintf("**Duration:** %v\n\n", time.Since(summary.StartTime).Round(time.Millisecond)))
	b.WriteString(strings.Repeat("-", 50) + "\n\n")

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Files Evaluated | %d |\n", summary.TotalFiles()))
	b.WriteString(fmt.Sprintf("| Approved | %d |\n", summary.CountVerdict(types.VerdictApproved)))
	b.WriteString(fmt.Sprintf("| Needs Revision | %d |\n", summary.CountVerdict(types.VerdictNeedsRevision)))
	b.WriteString(fmt.Sprintf("| Rejected | %d |\n", summary.CountVerdict(types.VerdictRejected)))
	b.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.FailedEvaluations()))
	b.WriteString("\n")

	b.WriteString("## Results\n\n")
	if summary.TotalFiles() == 0 {
		b.WriteString("*No content files found.*\n")
	}
	for _, r := range summary.Results {
		if r.Err != nil {
			b.WriteString(fmt.Sprintf("### %s\n\n✗ evaluation failed: %v\n\n", r.File, r.Err))
			continue
		}
		if r.Result.Verdict == types.VerdictApproved && !f.verbose {
			continue
		}
		b.WriteString(fmt.Sprintf("### %s\n\n", r.File))
		b.WriteString(ReportMarkdown(r.Result))
		for _, issue := range r.Issues {
			b.WriteString(fmt.Sprintf("- ⚠ %s\n", issue.Message))
		}
		b.WriteString("\n")
	}

	out := b.String()
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	_, err := io.WriteString(f.w, out)
	return err
}

// ReportMarkdown renders one evaluation as a Markdown fragment. The output
// is a pure function of the result, so identical evaluations produce
// byte-identical fragments.
func ReportMarkdown(res *engine.ValidationResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("**Verdict:** %s\n\n", res.Verdict))
	b.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", res.OverallScore))

	b.WriteString("| Dimension | Score | Minimum | Gate |\n")
	b.WriteString("|-----------|-------|---------|------|\n")
	for _, g := range res.Gates {
		mark := "pass"
		if !g.Passed {
			mark = "fail"
		}
		min := "—"
		if g.Gated {
			min = fmt.Sprintf("%d", g.Threshold)
		}
		b.WriteString(fmt.Sprintf("| %s | %d | %s | %s |\n", g.Dimension, g.Score, min, mark))
	}
	b.WriteString("\n")

	if len(res.CriticalIssues) > 0 {
		b.WriteString("**Critical Issues**\n\n")
		for _, issue := range res.CriticalIssues {
			b.WriteString(fmt.Sprintf("- %s\n", issue))
		}
		b.WriteString("\n")
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("**Recommendations**\n\n")
		for _, rec := range res.Recommendations {
			b.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		b.WriteString("\n")
	}

	if len(res.RequiredActions) > 0 {
		b.WriteString("**Required Actions**\n\n")
		for _, action := range res.RequiredActions {
			b.WriteString(fmt.Sprintf("- %s\n", action))
		}
		b.WriteString("\n")
	}

	if len(res.OptimizationGaps) > 0 {
		b.WriteString("**Optimization Targets**\n\n")
		for _, gap := range res.OptimizationGaps {
			b.WriteString(fmt.Sprintf("- %s\n", gap))
		}
		b.WriteString("\n")
	}

	return b.String()
}
