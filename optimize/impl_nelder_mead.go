// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"log/slog"
	"math"
	"sort"
)

// Standard Nelder–Mead coefficients.
const (
	nmReflect  = 1.0
	nmExpand   = 2.0
	nmContract = 0.5
	nmShrink   = 0.5
)

type vertex struct {
	x []float64
	g float64
}

// nelderMead minimizes g = sign·f with the Nelder–Mead simplex method.
// The initial simplex is x0 plus x0 + SimplexStep·e_i for each axis.
// It converges when max g − min g over the simplex < tolerance and every
// vertex lies within √tolerance of the best one per coordinate. The second
// test stops a symmetric simplex straddling the optimum from passing as
// converged.
func (r *runner) nelderMead(ctx context.Context, x0 []float64) (Result, error) {
	n := len(x0)
	simplex := make([]vertex, n+1)
	for i := range simplex {
		x := clone(x0)
		if i > 0 {
			x[i-1] += r.opts.SimplexStep
		}
		g, err := r.eval(x)
		if err != nil {
			return Result{}, err
		}
		simplex[i] = vertex{x: x, g: g}
	}

	xTol := math.Sqrt(r.opts.Tolerance)
	order := func() {
		sort.SliceStable(simplex, func(a, b int) bool { return simplex[a].g < simplex[b].g })
	}

	for it := 0; ; it++ {
		order()
		best, worst := simplex[0], simplex[n]
		if worst.g-best.g < r.opts.Tolerance && diameter(simplex) <= xTol {
			return r.result(best.x, best.g, it, StatusConverged), nil
		}
		if it == r.opts.MaxIterations {
			return r.result(best.x, best.g, it, StatusNotConverged), nil
		}
		if err := ctx.Err(); err != nil {
			return r.result(best.x, best.g, it, StatusNotConverged), err
		}

		centroid := make([]float64, n)
		for _, v := range simplex[:n] {
			for i := range centroid {
				centroid[i] += v.x[i] / float64(n)
			}
		}

		reflected, err := r.probe(centroid, worst.x, -nmReflect)
		if err != nil {
			return r.result(best.x, best.g, it, StatusNotConverged), err
		}

		switch {
		case reflected.g < best.g:
			expanded, err := r.probe(centroid, reflected.x, nmExpand)
			if err != nil {
				return r.result(best.x, best.g, it, StatusNotConverged), err
			}
			if expanded.g < reflected.g {
				simplex[n] = expanded
			} else {
				simplex[n] = reflected
			}
		case reflected.g < simplex[n-1].g:
			simplex[n] = reflected
		default:
			var contracted vertex
			if reflected.g < worst.g {
				contracted, err = r.probe(centroid, reflected.x, nmContract)
			} else {
				contracted, err = r.probe(centroid, worst.x, nmContract)
			}
			if err != nil {
				return r.result(best.x, best.g, it, StatusNotConverged), err
			}
			if contracted.g < minFloat(reflected.g, worst.g) {
				simplex[n] = contracted
			} else if err = r.shrink(simplex); err != nil {
				return r.result(best.x, best.g, it, StatusNotConverged), err
			}
		}
		r.log.Debug("optimize: simplex step", slog.Int("iter", it+1), slog.Float64("f", r.sign*simplex[0].g))
	}
}

// probe evaluates c + t·(p − c).
func (r *runner) probe(c, p []float64, t float64) (vertex, error) {
	x := make([]float64, len(c))
	for i := range x {
		x[i] = c[i] + t*(p[i]-c[i])
	}
	g, err := r.eval(x)
	if err != nil {
		return vertex{}, err
	}

	return vertex{x: x, g: g}, nil
}

// shrink pulls every vertex halfway towards the best one (simplex[0]).
func (r *runner) shrink(simplex []vertex) error {
	for k := 1; k < len(simplex); k++ {
		v, err := r.probe(simplex[0].x, simplex[k].x, nmShrink)
		if err != nil {
			return err
		}
		simplex[k] = v
	}

	return nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

// diameter returns max |x_k[i] − x_0[i]| over the simplex.
func diameter(simplex []vertex) float64 {
	var d float64
	for _, v := range simplex[1:] {
		for i := range v.x {
			d = math.Max(d, math.Abs(v.x[i]-simplex[0].x[i]))
		}
	}

	return d
}
