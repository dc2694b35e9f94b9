// SPDX-License-Identifier: MIT

package meanfield

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvqaoa/ising"
)

// Sentinel aliases of the shared ising error set.
var (
	ErrDimensionMismatch    = ising.ErrDimensionMismatch
	ErrInvalidArgument      = ising.ErrInvalidArgument
	ErrNumericalInstability = ising.ErrNumericalInstability
)

// NormTolerance is the slack allowed above the unit Bloch-sphere bound.
const NormTolerance = 1e-6

// Vec3 is a Bloch vector (⟨σx⟩, ⟨σy⟩, ⟨σz⟩).
type Vec3 [3]float64

// X returns the x component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the y component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the z component.
func (v Vec3) Z() float64 { return v[2] }

// Norm returns the Euclidean norm.
func (v Vec3) Norm() float64 { return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]) }

// RotateZ rotates v about the z axis by phi.
func (v Vec3) RotateZ(phi float64) Vec3 {
	sin, cos := math.Sincos(phi)
	return Vec3{v[0]*cos - v[1]*sin, v[0]*sin + v[1]*cos, v[2]}
}

// RotateX rotates v about the x axis by theta.
func (v Vec3) RotateX(theta float64) Vec3 {
	sin, cos := math.Sincos(theta)
	return Vec3{v[0], v[1]*cos - v[2]*sin, v[1]*sin + v[2]*cos}
}

func (v Vec3) finite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// UniformX returns n copies of (1, 0, 0), the mean-field image of the
// uniform superposition.
func UniformX(n int) []Vec3 {
	out := make([]Vec3, n)
	for i := range out {
		out[i] = Vec3{1, 0, 0}
	}

	return out
}

// Trajectory is the recorded evolution: Len() = p+1 slices of N−1 spins.
// It is owned by the caller; accessors return copies.
type Trajectory struct {
	slices [][]Vec3
}

// Len returns the number of slices (p+1).
func (t Trajectory) Len() int { return len(t.slices) }

// Spins returns the number of free spins (N−1).
func (t Trajectory) Spins() int {
	if len(t.slices) == 0 {
		return 0
	}

	return len(t.slices[0])
}

// Slice returns a copy of slice k (k = 0 is the initial condition).
// Errors: ErrInvalidArgument if k is out of range.
func (t Trajectory) Slice(k int) ([]Vec3, error) {
	if k < 0 || k >= len(t.slices) {
		return nil, fmt.Errorf("Slice(%d): have %d slices: %w", k, len(t.slices), ErrInvalidArgument)
	}

	return append([]Vec3(nil), t.slices[k]...), nil
}

// Final returns a copy of the last slice, or nil for an empty trajectory.
func (t Trajectory) Final() []Vec3 {
	if len(t.slices) == 0 {
		return nil
	}

	return append([]Vec3(nil), t.slices[len(t.slices)-1]...)
}

// Series returns spin i across all slices.
// Errors: ErrInvalidArgument if i is out of range.
func (t Trajectory) Series(i int) ([]Vec3, error) {
	if i < 0 || i >= t.Spins() {
		return nil, fmt.Errorf("Series(%d): have %d spins: %w", i, t.Spins(), ErrInvalidArgument)
	}
	out := make([]Vec3, len(t.slices))
	for k, s := range t.slices {
		out[k] = s[i]
	}

	return out, nil
}

// Solution rounds the final slice to bits: spin i maps to 0 when z ≥ 0
// and to 1 otherwise, and the fixed last spin (z = +1) is appended as 0.
// The result has N entries and is ready for ising.Model.Evaluate.
func (t Trajectory) Solution() []int {
	final := t.Final()
	out := make([]int, len(final)+1)
	for i, v := range final {
		if v[2] < 0 {
			out[i] = 1
		}
	}

	return out
}
