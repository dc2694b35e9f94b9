// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const methodMultiStart = "MultiStart"

// MultiResult aggregates independent restarts.
type MultiResult struct {
	// Best is the best restart under opts.Sense.
	Best Result
	// BestIndex is the index of Best in the starts slice.
	BestIndex int
	// Runs holds every restart's result in start order.
	Runs []Result
}

// MultiStart runs Run from every start point with at most workers restarts
// in flight (workers < 1 means 1). Restarts share nothing but obj, which must
// be safe for concurrent use when workers > 1. The best result wins; ties go
// to the lowest start index.
//
// The first restart error cancels the others and is returned.
func MultiStart(ctx context.Context, obj Objective, starts [][]float64, opts Options, workers int) (MultiResult, error) {
	if len(starts) == 0 {
		return MultiResult{}, fmt.Errorf("%s: no start points: %w", methodMultiStart, ErrInvalidArgument)
	}
	if err := opts.Validate(); err != nil {
		return MultiResult{}, fmt.Errorf("%s: %w", methodMultiStart, err)
	}
	if workers < 1 {
		workers = 1
	}

	runs := make([]Result, len(starts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, x0 := range starts {
		i, x0 := i, x0
		g.Go(func() error {
			res, err := Run(gctx, obj, x0, opts)
			if err != nil {
				return fmt.Errorf("start %d: %w", i, err)
			}
			runs[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MultiResult{}, fmt.Errorf("%s: %w", methodMultiStart, err)
	}

	best := 0
	for i := 1; i < len(runs); i++ {
		if opts.Sense.better(runs[i].F, runs[best].F) {
			best = i
		}
	}

	return MultiResult{Best: runs[best], BestIndex: best, Runs: runs}, nil
}
