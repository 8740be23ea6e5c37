package encoder

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EncodeAll encodes words in parallel and returns the results in input order.
// workers < 1 uses GOMAXPROCS goroutines. It stops early when ctx is done.
func EncodeAll(ctx context.Context, p *Pipeline, words []string, workers int) ([]Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(words))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, word := range words {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.Encode(word)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
