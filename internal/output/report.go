// Package output renders evaluation summaries to the console, JSON, and
// Markdown.
package output

import (
	"time"

	"github.com/dotcommander/contentgate/internal/engine"
	"github.com/dotcommander/contentgate/internal/types"
)

// FileResult is one evaluated document in a run.
type FileResult struct {
	File   string
	Result *engine.ValidationResult
	Issues []types.Issue
	Err    error
}

// Summary aggregates one run over a set of documents.
type Summary struct {
	Root      string
	StartTime time.Time
	Results   []FileResult
}

// Add appends a result and keeps the summary usable for streaming callers.
func (s *Summary) Add(r FileResult) {
	s.Results = append(s.Results, r)
}

// TotalFiles returns the number of evaluated documents, including failures.
func (s *Summary) TotalFiles() int {
	return len(s.Results)
}

// CountVerdict returns how many documents received the given verdict.
func (s *Summary) CountVerdict(v types.Verdict) int {
	n := 0
	for _, r := range s.Results {
		if r.Result != nil && r.Result.Verdict == v {
			n++
		}
	}
	return n
}

// FailedEvaluations returns how many documents could not be evaluated at all.
func (s *Summary) FailedEvaluations() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// WorstVerdict returns the most severe verdict in the run; approved when the
// run is empty. Evaluation errors count as rejected for exit-code purposes.
func (s *Summary) WorstVerdict() types.Verdict {
	worst := types.VerdictApproved
	rank := map[types.Verdict]int{
		types.VerdictApproved:      0,
		types.VerdictNeedsRevision: 1,
		types.VerdictRejected:      2,
	}
	for _, r := range s.Results {
		v := types.VerdictRejected
		if r.Err == nil && r.Result != nil {
			v = r.Result.Verdict
		}
		if rank[v] > rank[worst] {
			worst = v
		}
	}
	return worst
}
