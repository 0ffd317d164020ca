package gotdiff

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pair is one old/new document pair for CalculateBatch.
type Pair struct {
	ID  string // Caller-chosen identifier, copied to the result
	Old string
	New string
}

// BatchResult holds the outcome for one Pair.
type BatchResult struct {
	ID    string
	Diffs []Diff
	Err   error // *TooLargeError, or the context error if the pair never ran
}

// CalculateBatch diffs pairs on a bounded pool of goroutines. Results are in
// input order. A failing pair does not stop the others; only cancellation of
// ctx does, in which case unstarted pairs carry ctx's error and it is also
// returned.
func (d *Differ) CalculateBatch(ctx context.Context, pairs []Pair) ([]BatchResult, error) {
	results := make([]BatchResult, len(pairs))
	for i, p := range pairs {
		results[i].ID = p.ID
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	for i := range pairs {
		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			diffs, err := d.CalculateDiff(pairs[i].Old, pairs[i].New)
			results[i].Diffs = diffs
			results[i].Err = err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
