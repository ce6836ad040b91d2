package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dotcommander/contentgate/internal/types"
)

// ConsoleFormatter renders a run summary for terminal display.
type ConsoleFormatter struct {
	w        io.Writer
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a ConsoleFormatter writing to w. Color is
// enabled only when stdout is a terminal.
func NewConsoleFormatter(w io.Writer, quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		w:        w,
		quiet:    quiet,
		verbose:  verbose,
		colorize: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Format renders the summary. In quiet mode nothing is printed; the exit
// code carries the outcome.
func (f *ConsoleFormatter) Format(summary *Summary) error {
	if f.quiet {
		return nil
	}

	for _, r := range summary.Results {
		f.printFileResult(r)
	}
	f.printSummary(summary)

	return nil
}

func (f *ConsoleFormatter) printFileResult(r FileResult) {
	if r.Err != nil {
		fmt.Fprintf(f.w, "%s %s: %v\n", f.styled("✗", "9"), r.File, r.Err)
		return
	}

	res := r.Result
	approved := res.Verdict == types.VerdictApproved
	if approved && !f.verbose {
		return
	}

	status := "✓"
	color := "10" // green
	switch res.Verdict {
	case types.VerdictRejected:
		status, color = "✗", "9" // red
	case types.VerdictNeedsRevision:
		status, color = "⚠", "3" // yellow
	}

	fmt.Fprintf(f.w, "%s %s  %d/100 %s\n", f.styled(status, color), r.File, res.OverallScore, res.Verdict)

	for _, g := range res.Gates {
		if g.Passed && !f.verbose {
			continue
		}
		mark := "✓"
		if !g.Passed {
			mark = "✘"
		}
		fmt.Fprintf(f.w, "    %s %s %d (min %d)\n", mark, g.Dimension, g.Score, g.Threshold)
	}
	for _, issue := range res.CriticalIssues {
		fmt.Fprintf(f.w, "    %s %s\n", f.styled("✘", "9"), issue)
	}
	if !approved {
		for _, rec := range res.Recommendations {
			fmt.Fprintf(f.w, "    %s %s\n", f.styled("💡", "7"), rec)
		}
		for _, gap := range res.OptimizationGaps {
			fmt.Fprintf(f.w, "      %s\n", f.styled(gap, "7"))
		}
	}
	for _, issue := range r.Issues {
		fmt.Fprintf(f.w, "    %s %s\n", f.styled("⚠", "3"), issue.Message)
	}
}

func (f *ConsoleFormatter) printSummary(summary *Summary) {
	total := summary.TotalFiles()
	if total == 0 {
		fmt.Fprintln(f.w, "No content files found")
		return
	}

	approved := summary.CountVerdict(types.VerdictApproved)
	revise := summary.CountVerdict(types.VerdictNeedsRevision)
	rejected := summary.CountVerdict(types.VerdictRejected)
	failed := summary.FailedEvaluations()

	duration := time.Since(summary.StartTime)
	fmt.Fprintf(f.w, "\n%d/%d approved, %d need revision, %d rejected", approved, total, revise, rejected)
	if failed > 0 {
		fmt.Fprintf(f.w, ", %d failed", failed)
	}
	fmt.Fprintf(f.w, " (%v)\n", duration.Round(time.Millisecond))

	if approved == total {
		fmt.Fprintf(f.w, "%s\n", f.styledBold("✓ All content approved", "10"))
	}
}

func (f *ConsoleFormatter) styled(s, color string) string {
	if !f.colorize {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

func (f *ConsoleFormatter) styledBold(s, color string) string {
	if !f.colorize {
		return s
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(s)
}
