package recommend

import (
	"fmt"

	"github.com/dotcommander/contentgate/internal/content"
)

// Parameterized dimension targets. These drive a downstream editing stage;
// they never influence scoring.
const (
	// TargetKeywordDensity is the desired keyword density in percent.
	TargetKeywordDensity = 1.5
	// TargetHeadingCoverage is the desired percentage of headings that
	// mention the keyword.
	TargetHeadingCoverage = 50.0
)

// Optimization target keys.
const (
	KeyKeywordDensity  = "keyword-density"
	KeyHeadingCoverage = "heading-keyword-coverage"
)

// OptimizationTarget is the numeric delta between a parameterized dimension's
// current and desired value.
type OptimizationTarget struct {
	Key     string  `json:"key"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
	Gap     float64 `json:"gap"`
}

// Targets computes the optimization targets for a document. Without a keyword
// there is nothing to parameterize: the result is an empty list, not a list
// of zero-valued targets, so callers cannot mistake "not applicable" for
// "currently zero."
func Targets(doc *content.Document, keyword string) []OptimizationTarget {
	if keyword == "" {
		return nil
	}

	density := doc.KeywordDensity(keyword)
	coverage := doc.HeadingKeywordCoverage(keyword)
	return []OptimizationTarget{
		{
			Key:     KeyKeywordDensity,
			Target:  TargetKeywordDensity,
			Current: density,
			Gap:     TargetKeywordDensity - density,
		},
		{
			Key:     KeyHeadingCoverage,
			Target:  TargetHeadingCoverage,
			Current: coverage,
			Gap:     TargetHeadingCoverage - coverage,
		},
	}
}

// RenderTargets renders optimization targets as ordered strings for the
// validation record.
func RenderTargets(targets []OptimizationTarget) []string {
	var out []string
	for _, t := range targets {
		out = append(out, fmt.Sprintf("%s: current %.2f, target %.2f, gap %+.2f", t.Key, t.Current, t.Target, t.Gap))
	}
	return out
}
