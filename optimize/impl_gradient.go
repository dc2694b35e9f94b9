// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"log/slog"
	"math"
)

// gradient runs fixed-step descent on g = sign·f:
//
//	x_{k+1} = x_k − η·∇g(x_k)
//
// It stops when |g_{k+1} − g_k| < tolerance or after MaxIterations, and
// always returns the best point visited.
func (r *runner) gradient(ctx context.Context, x0 []float64) (Result, error) {
	x := clone(x0)
	g, err := r.eval(x)
	if err != nil {
		return Result{}, err
	}
	bestX, bestG := clone(x), g

	for it := 1; it <= r.opts.MaxIterations; it++ {
		if err = ctx.Err(); err != nil {
			return r.result(bestX, bestG, it-1, StatusNotConverged), err
		}
		grad, err := r.grad(x)
		if err != nil {
			return r.result(bestX, bestG, it-1, StatusNotConverged), err
		}
		for i := range x {
			x[i] -= r.opts.LearningRate * grad[i]
		}
		next, err := r.eval(x)
		if err != nil {
			return r.result(bestX, bestG, it-1, StatusNotConverged), err
		}
		if next < bestG {
			bestX, bestG = clone(x), next
		}
		r.log.Debug("optimize: gradient step", slog.Int("iter", it), slog.Float64("f", r.sign*next))

		if math.Abs(next-g) < r.opts.Tolerance {
			return r.result(bestX, bestG, it, StatusConverged), nil
		}
		g = next
	}

	return r.result(bestX, bestG, r.opts.MaxIterations, StatusNotConverged), nil
}
