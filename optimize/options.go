// SPDX-License-Identifier: MIT

package optimize

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvqaoa/logger"
)

// Defaults for Options.
const (
	DefaultLearningRate   = 0.05
	DefaultMaxIterations  = 500
	DefaultTolerance      = 1e-8
	DefaultSimplexStep    = 0.1
	DefaultFiniteDiffStep = 1e-6
)

const methodValidate = "Options.Validate"

// Options configures Run and MultiStart.
type Options struct {
	// LearningRate is the gradient step size (MethodGradient).
	LearningRate float64
	// MaxIterations caps the iterations of either method.
	MaxIterations int
	// Tolerance is the convergence threshold on objective change (gradient)
	// or on the simplex value spread (Nelder–Mead).
	Tolerance float64
	// Method selects the algorithm.
	Method Method
	// Sense selects minimization or maximization.
	Sense Sense
	// SimplexStep is the edge length of the initial Nelder–Mead simplex.
	SimplexStep float64
	// FiniteDiffStep is the central-difference step used when the objective
	// is not Differentiable.
	FiniteDiffStep float64
	// Logger receives per-iteration Debug records and a completion Info
	// record. Nil means discard.
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults: gradient descent,
// minimization.
func DefaultOptions() Options {
	return Options{
		LearningRate:   DefaultLearningRate,
		MaxIterations:  DefaultMaxIterations,
		Tolerance:      DefaultTolerance,
		Method:         MethodGradient,
		Sense:          Minimize,
		SimplexStep:    DefaultSimplexStep,
		FiniteDiffStep: DefaultFiniteDiffStep,
	}
}

// Validate reports the first invalid field as ErrInvalidArgument.
func (o Options) Validate() error {
	switch {
	case !positive(o.LearningRate):
		return fmt.Errorf("%s: learning rate %g must be finite and > 0: %w", methodValidate, o.LearningRate, ErrInvalidArgument)
	case o.MaxIterations < 1:
		return fmt.Errorf("%s: max iterations %d < 1: %w", methodValidate, o.MaxIterations, ErrInvalidArgument)
	case o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0):
		return fmt.Errorf("%s: tolerance %g must be finite and ≥ 0: %w", methodValidate, o.Tolerance, ErrInvalidArgument)
	case o.Method != MethodGradient && o.Method != MethodDerivativeFree:
		return fmt.Errorf("%s: unknown %s: %w", methodValidate, o.Method, ErrInvalidArgument)
	case o.Sense != Minimize && o.Sense != Maximize:
		return fmt.Errorf("%s: unknown %s: %w", methodValidate, o.Sense, ErrInvalidArgument)
	case !positive(o.SimplexStep):
		return fmt.Errorf("%s: simplex step %g must be finite and > 0: %w", methodValidate, o.SimplexStep, ErrInvalidArgument)
	case !positive(o.FiniteDiffStep):
		return fmt.Errorf("%s: finite-difference step %g must be finite and > 0: %w", methodValidate, o.FiniteDiffStep, ErrInvalidArgument)
	}

	return nil
}

func (o Options) log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return logger.Discard()
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
