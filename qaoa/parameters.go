// SPDX-License-Identifier: MIT

package qaoa

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/optimize"
	"github.com/katalvlaran/lvqaoa/schedule"
)

const (
	methodOptimizeParameters = "OptimizeParameters"
	methodOptimizeMultiStart = "OptimizeMultiStart"
)

// DefaultInitialTau is the annealing time of the schedule used to seed
// OptimizeParameters when no initial parameters are given.
const DefaultInitialTau = 1.0

// OptimizeResult is the outcome of a parameter optimization.
type OptimizeResult struct {
	// Cost is the expected cost at Params.
	Cost float64
	// Gamma and Beta split Params into cost and mixer angles.
	Gamma []float64
	Beta  []float64
	// Params is the flattened [γ…, β…] vector.
	Params []float64
	// Probabilities is the output distribution at Params.
	Probabilities []float64
	// Status is optimize.StatusConverged or optimize.StatusNotConverged.
	Status optimize.Status
	// Iterations and Evaluations are reported by the optimizer.
	Iterations  int
	Evaluations int
}

// OptimizeParameters tunes the 2p angles of a depth-p circuit for model.
//
// initial is the flattened start point; nil seeds it from
// schedule.Build(p, DefaultInitialTau). opts selects the method, the sense
// (MaxCut models are maximized) and the stopping rule.
//
// Hitting MaxIterations is not an error: the best point is returned with
// Status == optimize.StatusNotConverged.
//
// Errors: ErrInvalidArgument for p < 1 or invalid opts; ErrDimensionMismatch
// if len(initial) != 2p; plus every error of Run.
func (s *Simulator) OptimizeParameters(ctx context.Context, model *ising.Model, p int, initial []float64, opts optimize.Options) (OptimizeResult, error) {
	starts, err := startPoints(methodOptimizeParameters, p, [][]float64{initial})
	if err != nil {
		return OptimizeResult{}, err
	}
	obj, err := s.Objective(model)
	if err != nil {
		return OptimizeResult{}, fmt.Errorf("%s: %w", methodOptimizeParameters, err)
	}

	res, err := optimize.Run(ctx, obj, starts[0], opts)
	if err != nil {
		return OptimizeResult{}, fmt.Errorf("%s: %w", methodOptimizeParameters, err)
	}

	return s.finish(methodOptimizeParameters, model, res)
}

// OptimizeMultiStart runs OptimizeParameters from every start concurrently
// (at most workers at a time) and returns the best result under opts.Sense.
// A nil entry in starts is seeded from the annealing schedule.
func (s *Simulator) OptimizeMultiStart(ctx context.Context, model *ising.Model, p int, starts [][]float64, opts optimize.Options, workers int) (OptimizeResult, error) {
	if len(starts) == 0 {
		return OptimizeResult{}, fmt.Errorf("%s: no start points: %w", methodOptimizeMultiStart, ErrInvalidArgument)
	}
	points, err := startPoints(methodOptimizeMultiStart, p, starts)
	if err != nil {
		return OptimizeResult{}, err
	}
	obj, err := s.Objective(model)
	if err != nil {
		return OptimizeResult{}, fmt.Errorf("%s: %w", methodOptimizeMultiStart, err)
	}

	mr, err := optimize.MultiStart(ctx, obj, points, opts, workers)
	if err != nil {
		return OptimizeResult{}, fmt.Errorf("%s: %w", methodOptimizeMultiStart, err)
	}
	s.log.Info("qaoa: multi-start complete", slog.Int("starts", len(points)), slog.Int("best", mr.BestIndex))

	return s.finish(methodOptimizeMultiStart, model, mr.Best)
}

// finish runs the circuit once more at the optimum for its distribution.
func (s *Simulator) finish(method string, model *ising.Model, res optimize.Result) (OptimizeResult, error) {
	p := len(res.X) / 2
	gamma, beta := res.X[:p], res.X[p:]
	run, err := s.Run(model, gamma, beta)
	if err != nil {
		return OptimizeResult{}, fmt.Errorf("%s: %w", method, err)
	}
	s.log.Info("qaoa: parameters optimized",
		slog.Int("p", p),
		slog.Float64("cost", run.ExpectedCost),
		slog.String("status", res.Status.String()),
		slog.Int("iterations", res.Iterations))

	return OptimizeResult{
		Cost:          run.ExpectedCost,
		Gamma:         append([]float64(nil), gamma...),
		Beta:          append([]float64(nil), beta...),
		Params:        append([]float64(nil), res.X...),
		Probabilities: run.Probabilities,
		Status:        res.Status,
		Iterations:    res.Iterations,
		Evaluations:   res.Evaluations,
	}, nil
}

// startPoints validates p and every start (length 2p), seeding nil entries
// from the annealing schedule.
func startPoints(method string, p int, starts [][]float64) ([][]float64, error) {
	if p < 1 {
		return nil, fmt.Errorf("%s: p=%d < 1: %w", method, p, ErrInvalidArgument)
	}
	out := make([][]float64, len(starts))
	for i, x := range starts {
		if x == nil {
			sched, err := schedule.Build(p, DefaultInitialTau)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
			out[i] = sched.Params()
			continue
		}
		if len(x) != 2*p {
			return nil, fmt.Errorf("%s: start %d has %d params, want %d: %w", method, i, len(x), 2*p, ErrDimensionMismatch)
		}
		out[i] = append([]float64(nil), x...)
	}

	return out, nil
}
