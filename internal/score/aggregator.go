// Package score combines per-dimension scores into a single overall score
// using a fixed weight table.
package score

import (
	"fmt"
	"math"

	"github.com/dotcommander/contentgate/internal/dimension"
	"github.com/dotcommander/contentgate/internal/types"
)

// WeightTolerance is the allowed deviation of a weight table's sum from 1.0.
const WeightTolerance = 1e-6

// DefaultWeights returns the standard weight table. Weights must sum to 1.0;
// changing a weight here changes the quality bar everywhere.
func DefaultWeights() map[dimension.Dimension]float64 {
	return map[dimension.Dimension]float64{
		dimension.WritingQuality:   0.25,
		dimension.SEOCompliance:    0.20,
		dimension.Readability:      0.15,
		dimension.Authenticity:     0.15,
		dimension.Uniqueness:       0.15,
		dimension.TopicalAuthority: 0.10,
	}
}

// Aggregator computes the weighted overall score. The weight table is
// validated once at construction and is read-only afterwards, so a single
// Aggregator is safe for concurrent use.
type Aggregator struct {
	weights map[dimension.Dimension]float64
}

// NewAggregator validates the weight table and returns an Aggregator. The
// table must cover exactly the closed dimension set and sum to 1.0 within
// WeightTolerance. A bad table is a *types.ConfigurationError: renormalizing
// silently would make the quality bar irreproducible across deployments.
func NewAggregator(weights map[dimension.Dimension]float64) (*Aggregator, error) {
	if len(weights) != dimension.Count() {
		return nil, &types.ConfigurationError{
			Setting: "weights",
			Reason:  fmt.Sprintf("table has %d entries, want %d", len(weights), dimension.Count()),
		}
	}

	sum := 0.0
	for d, w := range weights {
		if !dimension.Known(d) {
			return nil, &types.ConfigurationError{
				Setting: "weights",
				Reason:  fmt.Sprintf("unknown dimension %q", d),
			}
		}
		if w < 0 || w > 1 {
			return nil, &types.ConfigurationError{
				Setting: "weights",
				Reason:  fmt.Sprintf("weight for %s is %v, want [0,1]", d, w),
			}
		}
		sum += w
	}
	if math.Abs(sum-1.0) > WeightTolerance {
		return nil, &types.ConfigurationError{
			Setting: "weights",
			Reason:  fmt.Sprintf("weights sum to %v, want 1.0 within %v", sum, WeightTolerance),
		}
	}

	copied := make(map[dimension.Dimension]float64, len(weights))
	for d, w := range weights {
		copied[d] = w
	}
	return &Aggregator{weights: copied}, nil
}

// Aggregate computes round-half-to-even of the weighted sum of scores. Each
// score must already be clamped to [0,100] by its analyzer; a missing or
// out-of-range score is an error. The result is always an integer in [0,100].
// Rounding is math.RoundToEven so the overall score is reproducible and
// pinned by tests.
func (a *Aggregator) Aggregate(scores map[dimension.Dimension]int) (int, error) {
	total := 0.0
	for _, d := range dimension.All() {
		value, ok := scores[d]
		if !ok {
			return 0, fmt.Errorf("missing score for dimension %s", d)
		}
		if value < 0 || value > 100 {
			return 0, fmt.Errorf("score for %s is %d, want [0,100]", d, value)
		}
		total += float64(value) * a.weights[d]
	}
	return int(math.RoundToEven(total)), nil
}

// Weight returns the configured weight for a dimension.
func (a *Aggregator) Weight(d dimension.Dimension) float64 {
	return a.weights[d]
}

// Weights returns a copy of the weight table in use.
func (a *Aggregator) Weights() map[dimension.Dimension]float64 {
	out := make(map[dimension.Dimension]float64, len(a.weights))
	for d, w := range a.weights {
		out[d] = w
	}
	return out
}
