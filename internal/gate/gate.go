package gate

import (
	"fmt"

	"github.com/dotcommander/contentgate/internal/dimension"
	"github.com/dotcommander/contentgate/internal/types"
)

// QualityGate is one pass/fail check of a dimension score against its
// configured threshold. Gates are derived fresh every evaluation, never
// stored.
type QualityGate struct {
	Dimension    dimension.Dimension `json:"dimension"`
	Weight       float64             `json:"weight"`
	Threshold    int                 `json:"threshold"`
	Score        int                 `json:"score"`
	Gated        bool                `json:"gated"`
	Passed       bool                `json:"passed"`
	Requirements []string            `json:"requirements"`
}

// requirementsCatalog carries the static, human-readable description of what
// passing each gate implies. Reporting only; never consulted for scoring.
var requirementsCatalog = map[dimension.Dimension][]string{
	dimension.WritingQuality: {
		"Varied sentence rhythm with no run-on sentences",
		"At least two developed paragraphs",
		"No filler or padding phrases",
	},
	dimension.SEOCompliance: {
		"Title and meta description within recommended length",
		"Single H1 with an intact heading hierarchy",
		"Keyword density inside the 0.5-2.5% band",
	},
	dimension.Readability: {
		"Flesch reading ease suitable for a general audience",
		"Short average sentence and word length",
	},
	dimension.Authenticity: {
		"No formulaic AI phrasing or excessive hedging",
		"Paragraphs vary naturally in length",
	},
	dimension.Uniqueness: {
		"No significant repeated passages within the document",
	},
	dimension.TopicalAuthority: {
		"Topic developed across multiple sections",
		"Concrete detail: numbers, named entities, examples",
	},
}

// Requirements returns the static requirements list for a dimension.
func Requirements(d dimension.Dimension) []string {
	reqs := requirementsCatalog[d]
	out := make([]string, len(reqs))
	copy(out, reqs)
	return out
}

// Evaluator builds the per-dimension gate set for an evaluation. It holds the
// weight table only to annotate gates; thresholds come from the standards
// passed to Evaluate.
type Evaluator struct {
	weights map[dimension.Dimension]float64
}

// NewEvaluator validates that the weight table covers the closed dimension
// set and returns an Evaluator.
func NewEvaluator(weights map[dimension.Dimension]float64) (*Evaluator, error) {
	for _, d := range dimension.All() {
		if _, ok := weights[d]; !ok {
			return nil, &types.ConfigurationError{
				Setting: "weights",
				Reason:  fmt.Sprintf("no weight for dimension %s", d),
			}
		}
	}
	copied := make(map[dimension.Dimension]float64, len(weights))
	for d, w := range weights {
		copied[d] = w
	}
	return &Evaluator{weights: copied}, nil
}

// Evaluate produces one QualityGate per dimension in canonical order. A gate
// passes when its score meets the configured minimum; ungated dimensions
// always pass. The overall score is checked separately by Decide, not here.
func (e *Evaluator) Evaluate(scores map[dimension.Dimension]int, standards QualityStandards) ([]QualityGate, error) {
	gates := make([]QualityGate, 0, dimension.Count())
	for _, d := range dimension.All() {
		value, ok := scores[d]
		if !ok {
			return nil, fmt.Errorf("missing score for dimension %s", d)
		}

		g := QualityGate{
			Dimension:    d,
			Weight:       e.weights[d],
			Score:        value,
			Requirements: Requirements(d),
		}
		if min, gated := standards.Minimum(d); gated {
			g.Gated = true
			g.Threshold = min
			g.Passed = value >= min
		} else {
			g.Passed = true
		}
		gates = append(gates, g)
	}
	return gates, nil
}

// FailedGates returns the gates that did not pass, preserving order.
func FailedGates(gates []QualityGate) []QualityGate {
	var failed []QualityGate
	for _, g := range gates {
		if !g.Passed {
			failed = append(failed, g)
		}
	}
	return failed
}
