// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

const methodRun = "Run"

// Run optimizes obj starting from x0 according to opts.
//
// Errors:
//   - ErrInvalidArgument for invalid options, an empty or non-finite x0.
//   - ErrNumericalInstability if the objective or gradient yields NaN/±Inf.
//   - ErrDimensionMismatch if a Differentiable gradient has the wrong length.
//   - ctx.Err() (wrapped) on cancellation; the best point so far is returned.
//   - Errors returned by obj are wrapped and returned.
//
// Reaching MaxIterations is reported through Result.Status, not an error.
func Run(ctx context.Context, obj Objective, x0 []float64, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodRun, err)
	}
	if obj == nil {
		return Result{}, fmt.Errorf("%s: nil objective: %w", methodRun, ErrInvalidArgument)
	}
	if len(x0) == 0 {
		return Result{}, fmt.Errorf("%s: empty start point: %w", methodRun, ErrInvalidArgument)
	}
	for i, v := range x0 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("%s: x0[%d]=%g: %w", methodRun, i, v, ErrInvalidArgument)
		}
	}

	r := &runner{obj: obj, opts: opts, sign: opts.Sense.sign(), log: opts.log()}
	var (
		res Result
		err error
	)
	switch opts.Method {
	case MethodDerivativeFree:
		res, err = r.nelderMead(ctx, x0)
	default:
		res, err = r.gradient(ctx, x0)
	}
	res.Evaluations = r.evals
	if err != nil {
		return res, fmt.Errorf("%s: %w", methodRun, err)
	}

	r.log.Info("optimize: done",
		slog.String("method", opts.Method.String()),
		slog.String("sense", opts.Sense.String()),
		slog.String("status", res.Status.String()),
		slog.Int("iterations", res.Iterations),
		slog.Int("evaluations", res.Evaluations),
		slog.Float64("f", res.F))

	return res, nil
}

// runner carries per-call state. All values it handles internally are
// g(x) = sign·f(x), so both senses reduce to minimization.
type runner struct {
	obj   Objective
	opts  Options
	sign  float64
	evals int
	log   *slog.Logger
}

// eval returns g(x).
func (r *runner) eval(x []float64) (float64, error) {
	r.evals++
	f, err := r.obj.Evaluate(x)
	if err != nil {
		return 0, fmt.Errorf("objective: %w", err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("objective=%g: %w", f, ErrNumericalInstability)
	}

	return r.sign * f, nil
}

// grad returns ∇g(x), from Differentiable when available and central
// differences otherwise.
func (r *runner) grad(x []float64) ([]float64, error) {
	if d, ok := r.obj.(Differentiable); ok {
		g, err := d.Gradient(x)
		if err != nil {
			return nil, fmt.Errorf("gradient: %w", err)
		}
		if len(g) != len(x) {
			return nil, fmt.Errorf("gradient: len=%d, want %d: %w", len(g), len(x), ErrDimensionMismatch)
		}
		out := make([]float64, len(g))
		for i, v := range g {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("gradient[%d]=%g: %w", i, v, ErrNumericalInstability)
			}
			out[i] = r.sign * v
		}

		return out, nil
	}

	return CentralDifference(x, r.opts.FiniteDiffStep, r.eval)
}

// result converts an internal (x, g) pair to the caller's sense.
func (r *runner) result(x []float64, g float64, iters int, status Status) Result {
	return Result{X: clone(x), F: r.sign * g, Iterations: iters, Status: status}
}

// CentralDifference approximates ∇f(x) with (f(x+h·e_i) − f(x−h·e_i)) / 2h.
// It probes f 2·len(x) times and never mutates x.
func CentralDifference(x []float64, h float64, f func([]float64) (float64, error)) ([]float64, error) {
	probe := clone(x)
	out := make([]float64, len(x))
	for i := range x {
		probe[i] = x[i] + h
		fp, err := f(probe)
		if err != nil {
			return nil, err
		}
		probe[i] = x[i] - h
		fm, err := f(probe)
		if err != nil {
			return nil, err
		}
		probe[i] = x[i]
		out[i] = (fp - fm) / (2 * h)
	}

	return out, nil
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
