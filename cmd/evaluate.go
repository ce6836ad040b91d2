package cmd

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/contentgate/internal/config"
	"github.com/dotcommander/contentgate/internal/content"
	"github.com/dotcommander/contentgate/internal/discovery"
	"github.com/dotcommander/contentgate/internal/engine"
	"github.com/dotcommander/contentgate/internal/output"
	"github.com/dotcommander/contentgate/internal/schema"
	"github.com/dotcommander/contentgate/internal/types"
)

// buildEngine constructs the engine from typed config values.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	return engine.New(
		engine.WithWeights(cfg.EngineWeights()),
		engine.WithStandards(cfg.EngineStandards()),
		engine.WithPolicy(cfg.EnginePolicy()),
	)
}

func buildValidator(cfg *config.Config) (*schema.Validator, error) {
	if !cfg.Schemas.Enabled {
		return nil, nil
	}
	return schema.NewValidator()
}

// evaluateTree discovers content files under the root and evaluates them
// concurrently. Results keep discovery order regardless of completion order.
func evaluateTree(ctx context.Context, cfg *config.Config) (*output.Summary, error) {
	eng, err := buildEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("error building engine: %w", err)
	}
	validator, err := buildValidator(cfg)
	if err != nil {
		return nil, fmt.Errorf("error loading schemas: %w", err)
	}

	files, err := discovery.New(cfg.Root, cfg.Exclude).Discover()
	if err != nil {
		return nil, fmt.Errorf("error discovering content: %w", err)
	}

	summary := &output.Summary{Root: cfg.Root, StartTime: time.Now()}
	results := make([]output.FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, f := range files {
		g.Go(func() error {
			results[i] = evaluateFile(gctx, eng, validator, f.RelPath, f.Contents, cfg.Keyword)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.Results = results
	return summary, nil
}

// evaluateFile evaluates one document. Evaluation failures are carried in
// the result rather than aborting the whole run; one bad file should not
// hide the report for the rest.
func evaluateFile(ctx context.Context, eng *engine.Engine, validator *schema.Validator, relPath, raw, keyword string) output.FileResult {
	fr := output.FileResult{File: relPath}

	doc, err := content.Parse(relPath, raw)
	if err != nil {
		fr.Err = &types.InvalidInputError{Field: "content", Reason: err.Error()}
		return fr
	}

	if validator != nil {
		fr.Issues = validator.ValidateFrontmatter(relPath, doc.Frontmatter)
	}

	res, err := eng.EvaluateDocument(ctx, doc, keyword)
	if err != nil {
		fr.Err = err
		return fr
	}
	fr.Result = res
	return fr
}
