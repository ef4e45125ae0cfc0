package extract

import (
	"context"

	"github.com/tabread/tabread"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel extractions in ExtractAll.
const DefaultConcurrency = 3

// ExtractAll runs the same request against many snapshots concurrently.
// Results are positionally aligned with the input snapshots. Individual
// failures surface as StatusError results, so every snapshot yields a
// result and one pathological page cannot sink the batch.
func (o *Orchestrator) ExtractAll(ctx context.Context, snaps []*tabread.Snapshot, req tabread.ExtractionRequest) []*tabread.ExtractionResult {
	concurrency := o.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*tabread.ExtractionResult, len(snaps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, snap := range snaps {
		g.Go(func() error {
			results[i] = o.Extract(ctx, snap, req)
			return nil
		})
	}
	// Extract never returns an error, so Wait only synchronizes.
	_ = g.Wait()

	return results
}
