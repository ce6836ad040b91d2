package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/contentgate/internal/engine"
	"github.com/dotcommander/contentgate/internal/types"
)

// JSONFormatter renders a run summary as JSON.
type JSONFormatter struct {
	w          io.Writer
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a JSONFormatter. When outputFile is empty the
// report goes to w.
func NewJSONFormatter(w io.Writer, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		w:          w,
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport is the complete report document.
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader carries report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary carries run-level counters.
type JSONSummary struct {
	TotalFiles    int    `json:"total_files"`
	Approved      int    `json:"approved"`
	NeedsRevision int    `json:"needs_revision"`
	Rejected      int    `json:"rejected"`
	Failed        int    `json:"failed"`
	Duration      string `json:"duration"`
}

// JSONResult is one document's evaluation.
type JSONResult struct {
	File       string                   `json:"file"`
	Evaluation *engine.ValidationResult `json:"evaluation,omitempty"`
	Issues     []JSONIssue              `json:"issues,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

// JSONIssue is a document-level issue such as a frontmatter violation.
type JSONIssue struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// Format renders the summary as a JSON report.
func (f *JSONFormatter) Format(summary *Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "contentgate",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalFiles:    summary.TotalFiles(),
			Approved:      summary.CountVerdict(types.VerdictApproved),
			NeedsRevision: summary.CountVerdict(types.VerdictNeedsRevision),
			Rejected:      summary.CountVerdict(types.VerdictRejected),
			Failed:        summary.FailedEvaluations(),
			Duration:      time.Since(summary.StartTime).Round(time.Millisecond).String(),
		},
		Results: make([]JSONResult, len(summary.Results)),
	}

	for i, r := range summary.Results {
		jr := JSONResult{
			File:       r.File,
			Evaluation: r.Result,
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		for _, issue := range r.Issues {
			jr.Issues = append(jr.Issues, JSONIssue{
				Message:  issue.Message,
				Severity: issue.Severity,
				Line:     issue.Line,
				Column:   issue.Column,
			})
		}
		report.Results[i] = jr
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	_, err = fmt.Fprintln(f.w, string(jsonBytes))
	return err
}
