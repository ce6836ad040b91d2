// Package gate evaluates dimension scores against configurable quality
// standards and reduces the results to an approval verdict.
package gate

import (
	"fmt"

	"github.com/dotcommander/contentgate/internal/dimension"
	"github.com/dotcommander/contentgate/internal/types"
)

// QualityStandards holds the thresholds one evaluation is gated against.
// A dimension absent from Minimums is not gated and always passes; this keeps
// optional dimensions (no target keyword, say) from causing spurious
// rejections while preserving the weight-sum invariant. Standards are
// immutable once passed into an evaluation.
type QualityStandards struct {
	Minimums            map[dimension.Dimension]int
	MinOverallScore     int
	RequireAllGatesPass bool
}

// DefaultStandards returns the process-wide default standards.
func DefaultStandards() QualityStandards {
	return QualityStandards{
		Minimums: map[dimension.Dimension]int{
			dimension.WritingQuality:   70,
			dimension.SEOCompliance:    70,
			dimension.Readability:      70,
			dimension.Authenticity:     70,
			dimension.Uniqueness:       70,
			dimension.TopicalAuthority: 70,
		},
		MinOverallScore:     75,
		RequireAllGatesPass: false,
	}
}

// Validate checks every threshold is inside [0,100] and every gated dimension
// is a member of the closed set. Violations are *types.ConfigurationError.
func (s QualityStandards) Validate() error {
	if s.MinOverallScore < 0 || s.MinOverallScore > 100 {
		return &types.ConfigurationError{
			Setting: "minOverallScore",
			Reason:  fmt.Sprintf("threshold %d outside [0,100]", s.MinOverallScore),
		}
	}
	for d, min := range s.Minimums {
		if !dimension.Known(d) {
			return &types.ConfigurationError{
				Setting: "minimums",
				Reason:  fmt.Sprintf("unknown dimension %q", d),
			}
		}
		if min < 0 || min > 100 {
			return &types.ConfigurationError{
				Setting: "minimums",
				Reason:  fmt.Sprintf("threshold for %s is %d, want [0,100]", d, min),
			}
		}
	}
	return nil
}

// Minimum returns the configured minimum for a dimension and whether the
// dimension is gated at all.
func (s QualityStandards) Minimum(d dimension.Dimension) (int, bool) {
	min, ok := s.Minimums[d]
	return min, ok
}
