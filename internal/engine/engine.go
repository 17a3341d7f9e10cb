// Package engine wires the analysis pipeline: collect, detect, extract
// tokens, assemble the catalog. A single Analyze call is a pure function
// from an in-memory document to an in-memory catalog.
package engine

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"uilens/internal/catalog"
	"uilens/internal/components"
	"uilens/internal/document"
	"uilens/internal/logging"
	"uilens/internal/signature"
	"uilens/internal/tokens"
)

// Engine runs the component detection pipeline against documents.
// Construct once per registry; safe for repeated Analyze calls.
type Engine struct {
	registry *signature.Registry
	detector *components.Detector
	logger   *logging.Logger
	workers  int
}

// New creates an engine over the given registry. A nil registry selects
// the built-in default.
func New(registry *signature.Registry, logger *logging.Logger) *Engine {
	if registry == nil {
		registry = signature.DefaultRegistry()
	}
	return &Engine{
		registry: registry,
		detector: components.NewDetector(registry, logger),
		logger:   logger,
		workers:  runtime.GOMAXPROCS(0),
	}
}

// Analyze produces the component catalog for a document.
//
// The per-object map phases (token extraction) fan out across a bounded
// worker pool and write results by index, so the output is identical to
// a sequential run. Grouping and catalog assembly need the full corpus
// and act as the pipeline's two barriers.
func (e *Engine) Analyze(ctx context.Context, doc *document.Document) (*catalog.Catalog, error) {
	collected := document.Collect(doc)

	if e.logger != nil {
		e.logger.Debug("Collected objects", map[string]interface{}{
			"objects": len(collected),
		})
	}

	objectTokens, err := e.extractTokens(ctx, collected)
	if err != nil {
		return nil, err
	}

	aggregator := tokens.NewAggregator()
	for _, t := range objectTokens {
		aggregator.Add(t)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	detected := e.detector.Detect(collected)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return catalog.Build(collected, detected, aggregator.Result()), nil
}

// extractTokens maps tokens.Extract over the corpus concurrently,
// preserving input order in the result slice.
func (e *Engine) extractTokens(ctx context.Context, collected []document.CollectedObject) ([]tokens.ObjectTokens, error) {
	results := make([]tokens.ObjectTokens, len(collected))

	workers := e.workers
	if workers > len(collected) {
		workers = len(collected)
	}
	if workers <= 1 {
		for i, co := range collected {
			results[i] = tokens.Extract(co.Object)
		}
		return results, ctx.Err()
	}

	var next int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&next, 1)) - 1
				if i >= len(collected) || ctx.Err() != nil {
					return
				}
				results[i] = tokens.Extract(collected[i].Object)
			}
		}()
	}
	wg.Wait()

	return results, ctx.Err()
}
