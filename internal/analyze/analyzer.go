// Package analyze implements the dimension analyzers: independent, stateless
// heuristics that each map a document to a score in [0,100]. Analyzers fail
// with an error when their input invariants are violated; they never return a
// placeholder score, because a silent default would bias the weighted
// aggregate in a way indistinguishable from genuinely poor content.
package analyze

import (
	"context"
	"errors"

	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/dimension"
)

// Analyzer scores one quality dimension. Implementations must be
// deterministic for identical input and safe for concurrent use.
type Analyzer interface {
	// Dimension returns the dimension this analyzer scores.
	Dimension() dimension.Dimension

	// Analyze scores the document in [0,100]. The keyword may be empty for
	// keyword-independent dimensions.
	Analyze(ctx context.Context, doc *content.Document, keyword string) (int, error)
}

// ErrNilDocument is returned when an analyzer is invoked without a document.
var ErrNilDocument = errors.New("no document to analyze")

// ErrNoProse is returned when a document contains no scoreable text.
var ErrNoProse = errors.New("document contains no prose")

// DefaultAnalyzers returns one analyzer per dimension, in canonical order.
func DefaultAnalyzers() []Analyzer {
	return []Analyzer{
		NewWritingAnalyzer(),
		NewSEOAnalyzer(),
		NewReadabilityAnalyzer(),
		NewAuthenticityAnalyzer(),
		NewUniquenessAnalyzer(),
		NewAuthorityAnalyzer(),
	}
}

// clamp bounds a score to [0,100].
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// checkInput performs the shared precondition checks for all analyzers.
func checkInput(ctx context.Context, doc *content.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil {
		return ErrNilDocument
	}
	if doc.WordCount == 0 {
		return ErrNoProse
	}
	return nil
}
