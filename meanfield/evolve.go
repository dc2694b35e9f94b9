// SPDX-License-Identifier: MIT

package meanfield

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/logger"
	"github.com/katalvlaran/lvqaoa/matrix"
	"github.com/katalvlaran/lvqaoa/schedule"
)

const (
	methodEvolve      = "Evolve"
	methodEvolveModel = "EvolveModel"
)

// Option configures Evolve.
type Option func(*config)

type config struct {
	log *slog.Logger
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("meanfield: WithLogger(nil)")
	}

	return func(c *config) { c.log = l }
}

// Evolve propagates initial (N−1 Bloch vectors) through schedule s under
// fields h (length N) and couplings J (N×N).
//
// Errors:
//   - ErrDimensionMismatch if len(h) == 0, J is not N×N or
//     len(initial) != N−1.
//   - ErrInvalidArgument if an initial vector has norm > 1 + NormTolerance,
//     or J is not symmetric with a zero diagonal within
//     ising.DefaultSymmetryEpsilon.
//   - ErrNumericalInstability for non-finite inputs or if a spin becomes
//     NaN/±Inf during evolution.
//
// Complexity: O(p·N²) time, O(p·N) space.
func Evolve(initial []Vec3, h []float64, J [][]float64, s schedule.Schedule, opts ...Option) (Trajectory, error) {
	cfg := config{log: logger.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(h)
	if n == 0 {
		return Trajectory{}, fmt.Errorf("%s: empty h: %w", methodEvolve, ErrDimensionMismatch)
	}
	if len(J) != n {
		return Trajectory{}, fmt.Errorf("%s: J has %d rows, want %d: %w", methodEvolve, len(J), n, ErrDimensionMismatch)
	}
	for i, row := range J {
		if len(row) != n {
			return Trajectory{}, fmt.Errorf("%s: J row %d has %d cols, want %d: %w", methodEvolve, i, len(row), n, ErrDimensionMismatch)
		}
	}
	if len(initial) != n-1 {
		return Trajectory{}, fmt.Errorf("%s: %d initial spins, want N-1=%d: %w", methodEvolve, len(initial), n-1, ErrDimensionMismatch)
	}
	for i, v := range h {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Trajectory{}, fmt.Errorf("%s: h[%d]=%g: %w", methodEvolve, i, v, ErrNumericalInstability)
		}
	}
	for i, v := range initial {
		if !v.finite() {
			return Trajectory{}, fmt.Errorf("%s: initial[%d]: %w", methodEvolve, i, ErrNumericalInstability)
		}
		if v.Norm() > 1+NormTolerance {
			return Trajectory{}, fmt.Errorf("%s: initial[%d] norm %g > 1: %w", methodEvolve, i, v.Norm(), ErrInvalidArgument)
		}
	}
	couplings, err := matrix.NewDenseFromRows(J)
	if err != nil {
		return Trajectory{}, fmt.Errorf("%s: %w: %w", methodEvolve, ErrNumericalInstability, err)
	}
	if err = matrix.ValidateSymmetric(couplings, ising.DefaultSymmetryEpsilon); err != nil {
		return Trajectory{}, fmt.Errorf("%s: %w: %w", methodEvolve, ErrInvalidArgument, err)
	}
	if err = matrix.ValidateZeroDiagonal(couplings, ising.DefaultSymmetryEpsilon); err != nil {
		return Trajectory{}, fmt.Errorf("%s: %w: %w", methodEvolve, ErrInvalidArgument, err)
	}

	return evolve(initial, h, couplings, s, cfg)
}

// EvolveModel is Evolve with h and J taken from model.
func EvolveModel(initial []Vec3, model *ising.Model, s schedule.Schedule, opts ...Option) (Trajectory, error) {
	if model == nil {
		return Trajectory{}, fmt.Errorf("%s: nil model: %w", methodEvolveModel, ErrInvalidArgument)
	}

	return Evolve(initial, model.H(), model.J(), s, opts...)
}

// evolve runs the validated layers. The fixed spin is appended to the z
// vector as +1 so one MatVec yields J_{i,N−1} + Σ_{j<N−1} J_ij·z_j.
func evolve(initial []Vec3, h []float64, couplings *matrix.Dense, s schedule.Schedule, cfg config) (Trajectory, error) {
	n := len(h)
	gamma, beta := s.Gamma(), s.Beta()

	slices := make([][]Vec3, 0, len(gamma)+1)
	slices = append(slices, append([]Vec3(nil), initial...))

	z := make([]float64, n)
	z[n-1] = 1
	for k := range gamma {
		cur := slices[k]
		for i, v := range cur {
			z[i] = v[2]
		}
		field, err := matrix.MatVec(couplings, z)
		if err != nil {
			return Trajectory{}, fmt.Errorf("%s: layer %d: %w", methodEvolve, k+1, err)
		}

		next := make([]Vec3, len(cur))
		for i, v := range cur {
			m := h[i] + field[i]
			w := v.RotateZ(2 * gamma[k] * m).RotateX(2 * beta[k])
			if !w.finite() {
				return Trajectory{}, fmt.Errorf("%s: layer %d spin %d: %w", methodEvolve, k+1, i, ErrNumericalInstability)
			}
			next[i] = w
		}
		slices = append(slices, next)
		cfg.log.Debug("meanfield: layer", slog.Int("layer", k+1), slog.Float64("gamma", gamma[k]), slog.Float64("beta", beta[k]))
	}

	return Trajectory{slices: slices}, nil
}
