// SPDX-License-Identifier: MIT

package ising

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvqaoa/matrix"
)

const (
	methodNew           = "New"
	methodEvaluate      = "Evaluate"
	methodEvaluateIndex = "EvaluateIndex"
)

// Model is an immutable Ising cost function over N binary variables.
type Model struct {
	n      int
	h      []float64
	j      *matrix.Dense
	offset float64
}

// New builds a Model from linear fields h (length N) and an N×N coupling
// matrix J.
//
// Validation order:
//  1. N = len(h) ≥ 1 (ErrInvalidArgument).
//  2. J has N rows of N entries (ErrDimensionMismatch).
//  3. All h, J entries finite (ErrNumericalInstability).
//  4. J symmetric and zero-diagonal within eps (ErrInvalidArgument wrapping
//     matrix.ErrAsymmetry / matrix.ErrNonZeroDiagonal).
//
// Accepted J is stored as its symmetric part (J_ij+J_ji)/2 with a zero
// diagonal. Inputs are copied; the caller may reuse them.
// Complexity: O(N²).
func New(h []float64, J [][]float64, opts ...Option) (*Model, error) {
	cfg := newModelConfig(opts...)

	n := len(h)
	if n < 1 {
		return nil, fmt.Errorf("%s: N=%d < 1: %w", methodNew, n, ErrInvalidArgument)
	}
	if len(J) != n {
		return nil, fmt.Errorf("%s: J has %d rows, want %d: %w", methodNew, len(J), n, ErrDimensionMismatch)
	}
	for i, row := range J {
		if len(row) != n {
			return nil, fmt.Errorf("%s: J row %d has %d cols, want %d: %w", methodNew, i, len(row), n, ErrDimensionMismatch)
		}
	}
	for i, v := range h {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: h[%d]=%g: %w", methodNew, i, v, ErrNumericalInstability)
		}
	}

	dense, err := matrix.NewDenseFromRows(J)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, fmt.Errorf("%s: %w: %w", methodNew, ErrNumericalInstability, err)
		}

		return nil, fmt.Errorf("%s: %w: %w", methodNew, ErrDimensionMismatch, err)
	}

	return newFromDense(h, dense, cfg)
}

// newFromDense validates structure and takes ownership of dense.
func newFromDense(h []float64, dense *matrix.Dense, cfg modelConfig) (*Model, error) {
	if err := matrix.ValidateSymmetric(dense, cfg.eps); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNew, ErrInvalidArgument, err)
	}
	if err := matrix.ValidateZeroDiagonal(dense, cfg.eps); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNew, ErrInvalidArgument, err)
	}

	if err := canonicalize(dense); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	hc := make([]float64, len(h))
	copy(hc, h)

	return &Model{n: len(h), h: hc, j: dense, offset: cfg.offset}, nil
}

// canonicalize replaces J by its symmetric part with a zero diagonal, so
// every reader (energy over j>i, the Gray-code table over full rows) sees
// the same couplings.
func canonicalize(d *matrix.Dense) error {
	rows := d.ToRows()
	for i := range rows {
		if err := d.Set(i, i, 0); err != nil {
			return err
		}
		for j := i + 1; j < len(rows); j++ {
			w := (rows[i][j] + rows[j][i]) / 2
			if err := d.Set(i, j, w); err != nil {
				return err
			}
			if err := d.Set(j, i, w); err != nil {
				return err
			}
		}
	}

	return nil
}

// N returns the number of binary variables.
func (m *Model) N() int { return m.n }

// H returns a copy of the linear fields.
func (m *Model) H() []float64 {
	out := make([]float64, m.n)
	copy(out, m.h)

	return out
}

// J returns a deep copy of the coupling matrix as rows.
func (m *Model) J() [][]float64 { return m.j.ToRows() }

// Coupling returns J_ij, or 0 for out-of-range indices.
func (m *Model) Coupling(i, j int) float64 {
	v, err := m.j.At(i, j)
	if err != nil {
		return 0
	}

	return v
}

// Couplings returns a copy of the coupling matrix as a matrix.Dense.
func (m *Model) Couplings() *matrix.Dense {
	return m.j.Clone().(*matrix.Dense)
}

// Offset returns the additive constant that maps Evaluate onto the
// problem's native objective (the cut weight for MaxCut models).
func (m *Model) Offset() float64 { return m.offset }

// Evaluate computes C(x) for an assignment of N bits.
//
// Errors: ErrDimensionMismatch if len(bits) != N; ErrInvalidArgument if any
// entry is not 0 or 1.
// Complexity: O(N²).
func (m *Model) Evaluate(bits []int) (float64, error) {
	if len(bits) != m.n {
		return 0, fmt.Errorf("%s: len(bits)=%d, want %d: %w", methodEvaluate, len(bits), m.n, ErrDimensionMismatch)
	}
	spins := make([]float64, m.n)
	for i, b := range bits {
		switch b {
		case 0:
			spins[i] = 1
		case 1:
			spins[i] = -1
		default:
			return 0, fmt.Errorf("%s: bits[%d]=%d: %w", methodEvaluate, i, b, ErrInvalidArgument)
		}
	}

	return m.energy(spins), nil
}

// EvaluateIndex computes C(x) for a basis-state index where bit i of x is
// variable i. Bits at positions ≥ N are ignored.
// Complexity: O(N²).
func (m *Model) EvaluateIndex(x uint64) float64 {
	spins := make([]float64, m.n)
	for i := range spins {
		spins[i] = spinOf(x, i)
	}

	return m.energy(spins)
}

// energy evaluates Σ h_i s_i + Σ_{i<j} J_ij s_i s_j on a ±1 spin vector.
func (m *Model) energy(spins []float64) float64 {
	var e float64
	for i := 0; i < m.n; i++ {
		e += m.h[i] * spins[i]
		row := m.j.Row(i)
		for j := i + 1; j < m.n; j++ {
			e += row[j] * spins[i] * spins[j]
		}
	}

	return e
}

// spinOf returns +1 if bit i of x is 0 and −1 otherwise.
func spinOf(x uint64, i int) float64 {
	if (x>>uint(i))&1 == 1 {
		return -1
	}

	return 1
}
