package search

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/figsearch/bitmap"
	"golang.org/x/sync/errgroup"
)

// span folds the figures of lines [from,to) into best.
type span func(bm *bitmap.Bitmap, from, to int, best *Result)

// LongestHorizontalParallel is LongestHorizontal with rows split across
// workers goroutines. workers == 0 uses GOMAXPROCS; workers == 1 runs inline.
// The result is identical to LongestHorizontal.
func LongestHorizontalParallel(ctx context.Context, bm *bitmap.Bitmap, workers int) (Result, error) {
	return fold(ctx, bm, bm.Rows(), workers, horizontalRows)
}

// LongestVerticalParallel is LongestVertical with columns split across
// workers goroutines. The result is identical to LongestVertical.
func LongestVerticalParallel(ctx context.Context, bm *bitmap.Bitmap, workers int) (Result, error) {
	return fold(ctx, bm, bm.Cols(), workers, verticalCols)
}

// LargestSquareParallel is LargestSquare with top-left rows split across
// workers goroutines. Each partition prunes against its own best only, so
// it does more work than the sequential scan; the result is identical.
func LargestSquareParallel(ctx context.Context, bm *bitmap.Bitmap, workers int) (Result, error) {
	return fold(ctx, bm, bm.Rows(), workers, squareRows)
}

// fold runs scan over contiguous partitions of [0,n) and reduces the partial
// results in partition order. Partitions follow scan order, so keeping the
// earlier result on equal size reproduces the sequential tie-break.
func fold(ctx context.Context, bm *bitmap.Bitmap, n, workers int, scan span) (Result, error) {
	if workers < 0 {
		return Result{}, ErrBadWorkers
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		var best Result
		scan(bm, 0, n, &best)
		return best, nil
	}

	parts := make([]Result, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		from, to := w*n/workers, (w+1)*n/workers
		acc := &parts[w]
		g.Go(func() error {
			for line := from; line < to; line++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				scan(bm, line, line+1, acc)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var best Result
	for _, p := range parts {
		if p.Size > best.Size {
			best = p
		}
	}

	return best, nil
}

// FindParallel is Find using the parallel variant of each search.
func FindParallel(ctx context.Context, mode Mode, bm *bitmap.Bitmap, workers int) (Result, error) {
	switch mode {
	case ModeHorizontal:
		return LongestHorizontalParallel(ctx, bm, workers)
	case ModeVertical:
		return LongestVerticalParallel(ctx, bm, workers)
	case ModeSquare:
		return LargestSquareParallel(ctx, bm, workers)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}
