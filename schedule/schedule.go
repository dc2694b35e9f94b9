// SPDX-License-Identifier: MIT

// Package schedule builds the (γ, β) angle schedules that drive both the
// QAOA circuit and the mean-field evolution.
//
// The annealing schedule for depth p and total time τ is
//
//	γ_k = τ·(k − ½)/p              k = 1..p
//	β_k = τ·(1 − k/p)              k = 1..p−1
//	β_p = τ/(4p)
//
// The last mixer angle is a boundary correction for the annealing endpoint;
// the generic formula would give 0 there.
package schedule

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvqaoa/ising"
)

// Sentinel aliases of the shared ising error set.
var (
	ErrInvalidArgument   = ising.ErrInvalidArgument
	ErrDimensionMismatch = ising.ErrDimensionMismatch
)

const (
	methodBuild = "Build"
	methodNew   = "New"
)

// Schedule is an immutable pair of angle sequences plus the total time τ.
// Accessors return copies.
type Schedule struct {
	gamma []float64
	beta  []float64
	tau   float64
}

// Build returns the annealing schedule for depth p and total time τ.
//
// Errors: ErrInvalidArgument if p < 1, τ ≤ 0 or τ is not finite.
// Complexity: O(p).
func Build(p int, tau float64) (Schedule, error) {
	if p < 1 {
		return Schedule{}, fmt.Errorf("%s: p=%d < 1: %w", methodBuild, p, ErrInvalidArgument)
	}
	if !(tau > 0) || math.IsInf(tau, 0) {
		return Schedule{}, fmt.Errorf("%s: tau=%g must be finite and > 0: %w", methodBuild, tau, ErrInvalidArgument)
	}

	gamma := make([]float64, p)
	beta := make([]float64, p)
	fp := float64(p)
	for k := 1; k <= p; k++ {
		gamma[k-1] = tau * (float64(k) - 0.5) / fp
		beta[k-1] = tau * (1 - float64(k)/fp)
	}
	beta[p-1] = tau / (4 * fp)

	return Schedule{gamma: gamma, beta: beta, tau: tau}, nil
}

// New wraps explicit angle sequences with total annealing time τ.
//
// Errors: ErrDimensionMismatch if len(gamma) != len(beta);
// ErrInvalidArgument for an empty schedule, non-finite entries, or τ that
// is not finite and > 0.
func New(gamma, beta []float64, tau float64) (Schedule, error) {
	if len(gamma) != len(beta) {
		return Schedule{}, fmt.Errorf("%s: len(gamma)=%d, len(beta)=%d: %w", methodNew, len(gamma), len(beta), ErrDimensionMismatch)
	}
	if len(gamma) == 0 {
		return Schedule{}, fmt.Errorf("%s: empty schedule: %w", methodNew, ErrInvalidArgument)
	}
	if !finite(tau) || tau <= 0 {
		return Schedule{}, fmt.Errorf("%s: tau=%g must be finite and > 0: %w", methodNew, tau, ErrInvalidArgument)
	}
	for k := range gamma {
		if !finite(gamma[k]) || !finite(beta[k]) {
			return Schedule{}, fmt.Errorf("%s: layer %d: %w", methodNew, k, ErrInvalidArgument)
		}
	}

	return Schedule{gamma: clone(gamma), beta: clone(beta), tau: tau}, nil
}

// P returns the number of layers.
func (s Schedule) P() int { return len(s.gamma) }

// Tau returns the total annealing time.
func (s Schedule) Tau() float64 { return s.tau }

// Gamma returns a copy of the cost angles.
func (s Schedule) Gamma() []float64 { return clone(s.gamma) }

// Beta returns a copy of the mixer angles.
func (s Schedule) Beta() []float64 { return clone(s.beta) }

// Params returns the flattened vector [γ_1..γ_p, β_1..β_p], the layout used
// by qaoa.Simulator.Expectation and the optimizers.
func (s Schedule) Params() []float64 {
	out := make([]float64, 0, 2*len(s.gamma))
	out = append(out, s.gamma...)

	return append(out, s.beta...)
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
