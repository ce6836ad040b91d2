// Package recommend derives human-readable remediation output from failed
// quality gates: fixed-template recommendations, required actions, and
// numeric optimization targets for parameterized dimensions.
package recommend

import (
	"fmt"

	"github.com/dotcommander/contentgate/internal/dimension"
	"github.com/dotcommander/contentgate/internal/gate"
)

// AllStandardsMet is the single recommendation emitted when no gate failed.
const AllStandardsMet = "Content meets all quality standards"

// templates maps each dimension to its fixed remediation message. Messages
// are static so output is deterministic and diffable across runs.
var templates = map[dimension.Dimension]string{
	dimension.WritingQuality:   "Improve writing quality: vary sentence length, cut filler phrases, and develop paragraphs fully",
	dimension.SEOCompliance:    "Improve SEO compliance: fix title and description length, heading hierarchy, and keyword placement",
	dimension.Readability:      "Improve readability: shorten sentences and prefer simpler words",
	dimension.Authenticity:     "Improve authenticity: remove formulaic phrasing and hedge words",
	dimension.Uniqueness:       "Improve uniqueness: rewrite repeated passages in the document",
	dimension.TopicalAuthority: "Improve topical authority: add depth with concrete detail, examples, and supporting sections",
}

// Recommendations returns one fixed-template message per failing dimension,
// de-duplicated and ordered by the canonical dimension order. When zero gates
// failed it returns exactly [AllStandardsMet].
func Recommendations(gates []gate.QualityGate) []string {
	failed := make(map[dimension.Dimension]bool)
	for _, g := range gates {
		if !g.Passed {
			failed[g.Dimension] = true
		}
	}
	if len(failed) == 0 {
		return []string{AllStandardsMet}
	}

	var out []string
	for _, d := range dimension.All() {
		if failed[d] {
			out = append(out, templates[d])
		}
	}
	return out
}

// RequiredActions renders one concrete action per failing gate, naming the
// score gap that must close, in canonical dimension order.
func RequiredActions(gates []gate.QualityGate) []string {
	var out []string
	for _, g := range gates {
		if g.Passed {
			continue
		}
		out = append(out, fmt.Sprintf("Raise %s from %d to at least %d", g.Dimension, g.Score, g.Threshold))
	}
	return out
}

// CriticalIssues renders the failures of critical dimensions under the given
// policy. These are the failures that vetoed approval outright.
func CriticalIssues(gates []gate.QualityGate, policy gate.DecisionPolicy) []string {
	var out []string
	for _, g := range gate.CriticalFailures(gates, policy) {
		out = append(out, fmt.Sprintf("%s scored %d, below required %d (critical dimension, weight %.2f)",
			g.Dimension, g.Score, g.Threshold, g.Weight))
	}
	return out
}
