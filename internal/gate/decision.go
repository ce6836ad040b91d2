package gate

import (
	"github.com/dotcommander/contentgate/internal/types"
)

// DecisionPolicy holds the policy constants behind the approval state
// machine. The values are carried as configuration, not literals in control
// flow, because they are policy choices that should be revisited against real
// quality data.
type DecisionPolicy struct {
	// CriticalWeight is the cutoff above which a dimension is critical: its
	// gate failure alone vetoes approval regardless of the overall score.
	CriticalWeight float64
	// MaxGateFailures is the number of failed gates tolerated before the
	// verdict degrades to needs_revision.
	MaxGateFailures int
	// ApproveScore is the second, higher overall bar required for approval
	// on top of the standards' minimum.
	ApproveScore int
}

// DefaultPolicy returns the standard decision policy.
func DefaultPolicy() DecisionPolicy {
	return DecisionPolicy{
		CriticalWeight:  0.15,
		MaxGateFailures: 2,
		ApproveScore:    80,
	}
}

// IsCritical reports whether a gate belongs to a critical dimension under
// this policy.
func (p DecisionPolicy) IsCritical(g QualityGate) bool {
	return g.Weight > p.CriticalWeight
}

// CriticalFailures returns the failed gates whose dimensions are critical,
// preserving order.
func CriticalFailures(gates []QualityGate, policy DecisionPolicy) []QualityGate {
	var out []QualityGate
	for _, g := range gates {
		if !g.Passed && policy.IsCritical(g) {
			out = append(out, g)
		}
	}
	return out
}

// Decide reduces the gate verdicts and overall score to one approval verdict.
// Rule order, first match wins:
//
//  1. Any critical gate failed -> rejected. A high overall score must not
//     mask a catastrophic single-dimension failure.
//  2. Overall below the standards' minimum, or more failures than the policy
//     tolerates -> needs_revision.
//  3. Overall meets both the minimum and the approval bar (and, when the
//     standards require it, every gate passed) -> approved.
//  4. Otherwise -> needs_revision.
func Decide(gates []QualityGate, overall int, standards QualityStandards, policy DecisionPolicy) types.Verdict {
	failed := FailedGates(gates)

	if len(CriticalFailures(gates, policy)) > 0 {
		return types.VerdictRejected
	}
	if overall < standards.MinOverallScore || len(failed) > policy.MaxGateFailures {
		return types.VerdictNeedsRevision
	}
	if standards.RequireAllGatesPass && len(failed) > 0 {
		return types.VerdictNeedsRevision
	}
	if overall >= standards.MinOverallScore && overall >= policy.ApproveScore {
		return types.VerdictApproved
	}
	return types.VerdictNeedsRevision
}
