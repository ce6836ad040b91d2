package gate

import (
	"testing"

	"github.com/dotcommander/contentgate/internal/dimension"
	"github.com/dotcommander/contentgate/internal/score"
	"github.com/dotcommander/contentgate/internal/types"
)

// buildGates evaluates the default gate set for the given scores and
// standards, failing the test on error.
func buildGates(t *testing.T, scores map[dimension.Dimension]int, standards QualityStandards) []QualityGate {
	t.Helper()
	ev, err := NewEvaluator(score.DefaultWeights())
	if err != nil {
		t.Fatalf("NewEvaluator() error = %v", err)
	}
	gates, err := ev.Evaluate(scores, standards)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	return gates
}

func TestDecideCriticalVeto(t *testing.T) {
	// writing-quality carries weight 0.25 > 0.15, so its failure alone
	// rejects even with a perfect overall score.
	standards := DefaultStandards()
	standards.Minimums[dimension.WritingQuality] = 85

	scores := allScores(90)
	scores[dimension.WritingQuality] = 50
	gates := buildGates(t, scores, standards)

	for _, overall := range []int{50, 75, 90, 100} {
		if got := Decide(gates, overall, standards, DefaultPolicy()); got != types.VerdictRejected {
			t.Errorf("Decide(overall=%d) = %s, want rejected", overall, got)
		}
	}
}

func TestDecideNonCriticalFailureTolerated(t *testing.T) {
	// topical-authority carries weight 0.10 <= 0.15: a single failure there
	// never rejects, and with a strong overall score the content is still
	// approved under the default standards.
	standards := DefaultStandards()
	scores := allScores(90)
	scores[dimension.TopicalAuthority] = 40
	gates := buildGates(t, scores, standards)

	if got := Decide(gates, 85, standards, DefaultPolicy()); got != types.VerdictApproved {
		t.Errorf("Decide() = %s, want approved", got)
	}
}

func TestDecideLowOverall(t *testing.T) {
	standards := DefaultStandards()
	gates := buildGates(t, allScores(74), standards)

	if got := Decide(gates, 74, standards, DefaultPolicy()); got != types.VerdictNeedsRevision {
		t.Errorf("Decide(overall below minimum) = %s, want needs_revision", got)
	}
}

func TestDecideTooManyFailures(t *testing.T) {
	// Three non-critical gate failures exceed MaxGateFailures=2. Use relaxed
	// per-dimension weights so none of the failures are critical.
	weights := map[dimension.Dimension]float64{
		dimension.WritingQuality:   0.15,
		dimension.SEOCompliance:    0.15,
		dimension.Readability:      0.15,
		dimension.Authenticity:     0.15,
		dimension.Uniqueness:       0.15,
		dimension.TopicalAuthority: 0.25,
	}
	ev, err := NewEvaluator(weights)
	if err != nil {
		t.Fatalf("NewEvaluator() error = %v", err)
	}

	standards := DefaultStandards()
	scores := allScores(95)
	scores[dimension.WritingQuality] = 60
	scores[dimension.SEOCompliance] = 60
	scores[dimension.Readability] = 60
	gates, err := ev.Evaluate(scores, standards)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if got := Decide(gates, 85, standards, DefaultPolicy()); got != types.VerdictNeedsRevision {
		t.Errorf("Decide(3 failures) = %s, want needs_revision", got)
	}
}

func TestDecideApproved(t *testing.T) {
	standards := DefaultStandards()
	gates := buildGates(t, allScores(88), standards)

	if got := Decide(gates, 88, standards, DefaultPolicy()); got != types.VerdictApproved {
		t.Errorf("Decide() = %s, want approved", got)
	}
}

func TestDecideAboveMinimumBelowApproveBar(t *testing.T) {
	// Overall clears the minimum (75) but not the approval bar (80).
	standards := DefaultStandards()
	gates := buildGates(t, allScores(78), standards)

	if got := Decide(gates, 78, standards, DefaultPolicy()); got != types.VerdictNeedsRevision {
		t.Errorf("Decide() = %s, want needs_revision (fallback tier)", got)
	}
}

func TestDecideRequireAllGatesPass(t *testing.T) {
	// An ungated failure cannot exist, so fail one low-weight gated
	// dimension and demand all gates pass.
	weights := map[dimension.Dimension]float64{
		dimension.WritingQuality:   0.25,
		dimension.SEOCompliance:    0.20,
		dimension.Readability:      0.15,
		dimension.Authenticity:     0.15,
		dimension.Uniqueness:       0.15,
		dimension.TopicalAuthority: 0.10,
	}
	ev, err := NewEvaluator(weights)
	if err != nil {
		t.Fatalf("NewEvaluator() error = %v", err)
	}

	standards := DefaultStandards()
	standards.RequireAllGatesPass = true
	scores := allScores(95)
	scores[dimension.TopicalAuthority] = 60
	gates, err := ev.Evaluate(scores, standards)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if got := Decide(gates, 92, standards, DefaultPolicy()); got != types.VerdictNeedsRevision {
		t.Errorf("Decide(requireAllGatesPass with a failure) = %s, want needs_revision", got)
	}

	standards.RequireAllGatesPass = false
	if got := Decide(gates, 92, standards, DefaultPolicy()); got != types.VerdictApproved {
		t.Errorf("Decide(single tolerated failure) = %s, want approved", got)
	}
}

func TestCriticalFailures(t *testing.T) {
	standards := DefaultStandards()
	standards.Minimums[dimension.WritingQuality] = 85

	scores := allScores(90)
	scores[dimension.WritingQuality] = 50
	scores[dimension.TopicalAuthority] = 40
	gates := buildGates(t, scores, standards)

	critical := CriticalFailures(gates, DefaultPolicy())
	if len(critical) != 1 || critical[0].Dimension != dimension.WritingQuality {
		t.Errorf("CriticalFailures() = %v, want exactly writing-quality", critical)
	}
}

func TestPolicyCutoffIsExclusive(t *testing.T) {
	// Weight exactly equal to the cutoff is not critical.
	policy := DefaultPolicy()
	atCutoff := QualityGate{Weight: 0.15, Passed: false}
	if policy.IsCritical(atCutoff) {
		t.Error("gate with weight == CriticalWeight should not be critical")
	}
	above := QualityGate{Weight: 0.16, Passed: false}
	if !policy.IsCritical(above) {
		t.Error("gate with weight > CriticalWeight should be critical")
	}
}
