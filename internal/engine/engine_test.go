package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/dotcommander/contentgate/internal/analyze"
	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/dimension"
	"github.com/dotcommander/contentgate/internal/gate"
	"github.com/dotcommander/contentgate/internal/types"
)

// stubAnalyzer returns a fixed score (or error) and counts its invocations.
type stubAnalyzer struct {
	dim   dimension.Dimension
	score int
	err   error
	calls *atomic.Int64
}

func (s *stubAnalyzer) Dimension() dimension.Dimension {
	return s.dim
}

func (s *stubAnalyzer) Analyze(ctx context.Context, doc *content.Document, keyword string) (int, error) {
	if s.calls != nil {
		s.calls.Add(1)
	}
	if s.err != nil {
		return 0, s.err
	}
	return s.score, nil
}

// stubSet builds a full analyzer set with the given per-dimension scores,
// all sharing one call counter.
func stubSet(scores map[dimension.Dimension]int, calls *atomic.Int64) []analyze.Analyzer {
	var out []analyze.Analyzer
	for _, d := range dimension.All() {
		out = append(out, &stubAnalyzer{dim: d, score: scores[d], calls: calls})
	}
	return out
}

func scenarioScores() map[dimension.Dimension]int {
	return map[dimension.Dimension]int{
		dimension.WritingQuality:   90,
		dimension.SEOCompliance:    85,
		dimension.Readability:      88,
		dimension.Authenticity:     90,
		dimension.Uniqueness:       90,
		dimension.TopicalAuthority: 80,
	}
}

func TestEvaluateScenarioApproved(t *testing.T) {
	eng, err := New(WithAnalyzers(stubSet(scenarioScores(), nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := eng.Evaluate(context.Background(), "Some real content here.", "golang")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if result.OverallScore != 88 {
		t.Errorf("OverallScore = %d, want 88 (weighted sum 87.7)", result.OverallScore)
	}
	if result.Verdict != types.VerdictApproved {
		t.Errorf("Verdict = %s, want approved", result.Verdict)
	}
	if !result.IsValid {
		t.Error("IsValid = false, want true")
	}
	for _, g := range result.Gates {
		if !g.Passed {
			t.Errorf("gate %s failed, want all gates passing", g.Dimension)
		}
	}
	wantRecs := []string{"Content meets all quality standards"}
	if len(result.Recommendations) != 1 || result.Recommendations[0] != wantRecs[0] {
		t.Errorf("Recommendations = %v, want %v", result.Recommendations, wantRecs)
	}
	if len(result.CriticalIssues) != 0 {
		t.Errorf("CriticalIssues = %v, want none", result.CriticalIssues)
	}
}

func TestEvaluateCriticalVetoRejects(t *testing.T) {
	// writing-quality weight 0.25 > 0.15 is critical; its failure rejects
	// even though the overall score clears every other bar.
	standards := gate.DefaultStandards()
	standards.Minimums[dimension.WritingQuality] = 85

	scores := scenarioScores()
	scores[dimension.WritingQuality] = 50

	eng, err := New(WithAnalyzers(stubSet(scores, nil)), WithStandards(standards))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := eng.Evaluate(context.Background(), "Some real content here.", "")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if result.Verdict != types.VerdictRejected {
		t.Errorf("Verdict = %s, want rejected (critical veto)", result.Verdict)
	}
	if result.IsValid {
		t.Error("IsValid = true, want false")
	}
	if len(result.CriticalIssues) != 1 {
		t.Errorf("CriticalIssues = %v, want exactly one", result.CriticalIssues)
	}
}

func TestEvaluateEmptyContentFailsFast(t *testing.T) {
	var calls atomic.Int64
	eng, err := New(WithAnalyzers(stubSet(scenarioScores(), &calls)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, raw := range []string{"", "   ", "\n\t"} {
		result, err := eng.Evaluate(context.Background(), raw, "")
		if result != nil {
			t.Errorf("Evaluate(%q) returned a result, want nil", raw)
		}
		var invalid *types.InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("Evaluate(%q) error = %v, want *types.InvalidInputError", raw, err)
		}
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("analyzers invoked %d times for invalid input, want 0", got)
	}
}

func TestEvaluateAnalyzerFailureNamesDimension(t *testing.T) {
	analyzers := stubSet(scenarioScores(), nil)
	for _, a := range analyzers {
		stub := a.(*stubAnalyzer)
		if stub.dim == dimension.Uniqueness {
			stub.err = fmt.Errorf("corpus unavailable")
		}
	}

	eng, err := New(WithAnalyzers(analyzers))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := eng.Evaluate(context.Background(), "Some real content here.", "")
	if result != nil {
		t.Error("Evaluate() returned a partial result alongside an error")
	}
	var aErr *types.AnalyzerError
	if !errors.As(err, &aErr) {
		t.Fatalf("error = %v, want *types.AnalyzerError", err)
	}
	if aErr.Dimension != dimension.Uniqueness.String() {
		t.Errorf("AnalyzerError.Dimension = %q, want %q", aErr.Dimension, dimension.Uniqueness)
	}
}

func TestEvaluateOutOfRangeScoreRejected(t *testing.T) {
	analyzers := stubSet(scenarioScores(), nil)
	analyzers[0].(*stubAnalyzer).score = 150

	eng, err := New(WithAnalyzers(analyzers))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := eng.Evaluate(context.Background(), "Some real content here.", ""); err == nil {
		t.Error("Evaluate() with out-of-range analyzer score should error")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	eng, err := New(WithAnalyzers(stubSet(scenarioScores(), nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const raw = "---\nkeyword: golang\n---\n\n# Title\n\nBody text for the evaluation.\n"
	first, err := eng.Evaluate(context.Background(), raw, "")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	second, err := eng.Evaluate(context.Background(), raw, "")
	if err != nil {
		t.Fatalf("Evaluate() second call error = %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("results differ between identical calls:\n%s\n%s", a, b)
	}
}

func TestEvaluateKeywordFallsBackToFrontmatter(t *testing.T) {
	eng, err := New(WithAnalyzers(stubSet(scenarioScores(), nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	raw := "---\nkeyword: espresso\n---\n\n# Espresso\n\nEspresso basics in one paragraph.\n"
	result, err := eng.Evaluate(context.Background(), raw, "")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(result.Targets) == 0 {
		t.Error("Targets empty; frontmatter keyword should drive optimization targets")
	}
}

func TestEvaluateNoKeywordMeansNoTargets(t *testing.T) {
	eng, err := New(WithAnalyzers(stubSet(scenarioScores(), nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := eng.Evaluate(context.Background(), "# Title\n\nBody with no keyword anywhere.\n", "")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(result.Targets) != 0 {
		t.Errorf("Targets = %v, want empty when no keyword supplied", result.Targets)
	}
	if len(result.OptimizationGaps) != 0 {
		t.Errorf("OptimizationGaps = %v, want empty", result.OptimizationGaps)
	}
}

func TestEvaluateCancelledContext(t *testing.T) {
	eng, err := New() // real analyzers
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := eng.Evaluate(ctx, "# Title\n\nSome body text here.\n", "")
	if err == nil {
		t.Error("Evaluate() with cancelled context should error")
	}
	if result != nil {
		t.Error("Evaluate() returned a partial result after cancellation")
	}
}

func TestNewValidatesConfiguration(t *testing.T) {
	t.Run("missing analyzer", func(t *testing.T) {
		analyzers := stubSet(scenarioScores(), nil)
		if _, err := New(WithAnalyzers(analyzers[:len(analyzers)-1])); err == nil {
			t.Error("New() with missing analyzer should error")
		}
	})

	t.Run("duplicate analyzer", func(t *testing.T) {
		analyzers := stubSet(scenarioScores(), nil)
		analyzers[len(analyzers)-1] = &stubAnalyzer{dim: dimension.WritingQuality, score: 80}
		if _, err := New(WithAnalyzers(analyzers)); err == nil {
			t.Error("New() with duplicate analyzer should error")
		}
	})

	t.Run("bad weights", func(t *testing.T) {
		weights := map[dimension.Dimension]float64{dimension.WritingQuality: 1.0}
		if _, err := New(WithWeights(weights)); err == nil {
			t.Error("New() with incomplete weight table should error")
		}
	})

	t.Run("bad standards", func(t *testing.T) {
		standards := gate.DefaultStandards()
		standards.MinOverallScore = 400
		if _, err := New(WithStandards(standards)); err == nil {
			t.Error("New() with out-of-range standards should error")
		}
	})
}
