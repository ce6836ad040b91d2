// Package engine orchestrates one content evaluation: analyzer fan-out,
// score aggregation, gate evaluation, the approval decision, and assembly of
// the validation record.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/contentgate/internal/analyze"
	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/dimension"
	"github.com/dotcommander/contentgate/internal/gate"
	"github.com/dotcommander/contentgate/internal/recommend"
	"github.com/dotcommander/contentgate/internal/score"
	"github.com/dotcommander/contentgate/internal/types"
)

// ValidationResult is the externally visible output of one evaluation. It is
// created fresh per call, immutable once returned, and carries no identity
// beyond being handed to the caller.
type ValidationResult struct {
	Verdict          types.Verdict                 `json:"verdict"`
	IsValid          bool                          `json:"is_valid"`
	Scores           map[dimension.Dimension]int   `json:"scores"`
	OverallScore     int                           `json:"overall_score"`
	Gates            []gate.QualityGate            `json:"gates"`
	CriticalIssues   []string                      `json:"critical_issues"`
	Recommendations  []string                      `json:"recommendations"`
	OptimizationGaps []string                      `json:"optimization_gaps"`
	RequiredActions  []string                      `json:"required_actions"`
	Targets          []recommend.OptimizationTarget `json:"targets,omitempty"`
}

// Engine is the composite scoring and quality-gate validation engine. All
// configuration is validated at construction; after New returns, the Engine
// is read-only and safe for arbitrarily many concurrent Evaluate calls.
type Engine struct {
	analyzers  []analyze.Analyzer
	weights    map[dimension.Dimension]float64
	aggregator *score.Aggregator
	evaluator  *gate.Evaluator
	standards  gate.QualityStandards
	policy     gate.DecisionPolicy
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithAnalyzers replaces the default analyzer set. Used by callers that need
// deterministic stubs or an external analyzer implementation.
func WithAnalyzers(analyzers []analyze.Analyzer) Option {
	return func(e *Engine) { e.analyzers = analyzers }
}

// WithStandards replaces the default quality standards.
func WithStandards(standards gate.QualityStandards) Option {
	return func(e *Engine) { e.standards = standards }
}

// WithPolicy replaces the default decision policy.
func WithPolicy(policy gate.DecisionPolicy) Option {
	return func(e *Engine) { e.policy = policy }
}

// WithWeights replaces the default weight table.
func WithWeights(weights map[dimension.Dimension]float64) Option {
	return func(e *Engine) { e.weights = weights }
}

// New builds an Engine. The weight table and standards are validated here,
// and the analyzer set must cover the closed dimension set exactly; any
// mismatch is a *types.ConfigurationError, fatal at startup rather than per
// call.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		analyzers: analyze.DefaultAnalyzers(),
		standards: gate.DefaultStandards(),
		policy:    gate.DefaultPolicy(),
		weights:   score.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}

	agg, err := score.NewAggregator(e.weights)
	if err != nil {
		return nil, err
	}
	e.aggregator = agg

	ev, err := gate.NewEvaluator(agg.Weights())
	if err != nil {
		return nil, err
	}
	e.evaluator = ev

	if err := e.standards.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[dimension.Dimension]bool, len(e.analyzers))
	for _, a := range e.analyzers {
		d := a.Dimension()
		if !dimension.Known(d) {
			return nil, &types.ConfigurationError{
				Setting: "analyzers",
				Reason:  fmt.Sprintf("analyzer declares unknown dimension %q", d),
			}
		}
		if seen[d] {
			return nil, &types.ConfigurationError{
				Setting: "analyzers",
				Reason:  fmt.Sprintf("duplicate analyzer for dimension %s", d),
			}
		}
		seen[d] = true
	}
	for _, d := range dimension.All() {
		if !seen[d] {
			return nil, &types.ConfigurationError{
				Setting: "analyzers",
				Reason:  fmt.Sprintf("no analyzer for dimension %s", d),
			}
		}
	}

	return e, nil
}

// Standards returns the standards this engine gates against.
func (e *Engine) Standards() gate.QualityStandards {
	return e.standards
}

// Policy returns the decision policy in use.
func (e *Engine) Policy() gate.DecisionPolicy {
	return e.policy
}

// Weights returns a copy of the weight table in use.
func (e *Engine) Weights() map[dimension.Dimension]float64 {
	return e.aggregator.Weights()
}

// Evaluate runs one evaluation over raw content. An empty keyword falls back
// to the document's frontmatter keyword when present.
//
// The call is all-or-nothing: analyzers run concurrently under the caller's
// context, and if any fails or the context is cancelled, partial scores are
// discarded and no ValidationResult is returned.
func (e *Engine) Evaluate(ctx context.Context, raw, keyword string) (*ValidationResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &types.InvalidInputError{Field: "content", Reason: "must be a non-empty string"}
	}

	doc, err := content.Parse("", raw)
	if err != nil {
		return nil, &types.InvalidInputError{Field: "content", Reason: err.Error()}
	}
	return e.EvaluateDocument(ctx, doc, keyword)
}

// EvaluateDocument evaluates an already-parsed document.
func (e *Engine) EvaluateDocument(ctx context.Context, doc *content.Document, keyword string) (*ValidationResult, error) {
	if doc == nil {
		return nil, &types.InvalidInputError{Field: "content", Reason: "no document supplied"}
	}
	if keyword == "" {
		keyword = doc.Keyword
	}

	scores := make(map[dimension.Dimension]int, len(e.analyzers))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, a := range e.analyzers {
		g.Go(func() error {
			value, err := a.Analyze(gctx, doc, keyword)
			if err != nil {
				return &types.AnalyzerError{Dimension: a.Dimension().String(), Err: err}
			}
			if value < 0 || value > 100 {
				return &types.AnalyzerError{
					Dimension: a.Dimension().String(),
					Err:       fmt.Errorf("score %d outside [0,100]", value),
				}
			}
			mu.Lock()
			scores[a.Dimension()] = value
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overall, err := e.aggregator.Aggregate(scores)
	if err != nil {
		return nil, err
	}

	gates, err := e.evaluator.Evaluate(scores, e.standards)
	if err != nil {
		return nil, err
	}

	verdict := gate.Decide(gates, overall, e.standards, e.policy)
	targets := recommend.Targets(doc, keyword)

	return &ValidationResult{
		Verdict:          verdict,
		IsValid:          verdict == types.VerdictApproved,
		Scores:           scores,
		OverallScore:     overall,
		Gates:            gates,
		CriticalIssues:   recommend.CriticalIssues(gates, e.policy),
		Recommendations:  recommend.Recommendations(gates),
		OptimizationGaps: recommend.RenderTargets(targets),
		RequiredActions:  recommend.RequiredActions(gates),
		Targets:          targets,
	}, nil
}
