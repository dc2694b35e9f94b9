// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvqaoa/matrix"
)

// DefaultSymmetryEpsilon is the tolerance for |J_ij − J_ji| and |J_ii|.
const DefaultSymmetryEpsilon = matrix.DefaultEpsilon

// Option configures Model construction.
type Option func(*modelConfig)

type modelConfig struct {
	eps    float64
	offset float64
}

func newModelConfig(opts ...Option) modelConfig {
	cfg := modelConfig{eps: DefaultSymmetryEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEpsilon sets the symmetry / zero-diagonal tolerance.
// Panics if eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("ising: WithEpsilon(%g): eps must be finite and ≥ 0", eps))
	}

	return func(c *modelConfig) { c.eps = eps }
}

// WithOffset sets the additive constant reported by Model.Offset.
// Panics if c is non-finite.
func WithOffset(c float64) Option {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		panic(fmt.Sprintf("ising: WithOffset(%g): offset must be finite", c))
	}

	return func(cfg *modelConfig) { cfg.offset = c }
}
