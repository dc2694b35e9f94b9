// SPDX-License-Identifier: MIT

package qaoa

import (
	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/optimize"
)

// Objective exposes a model's expected cost as an optimize.Differentiable
// over flattened parameters [γ_1..γ_p, β_1..β_p]. The cost table is built
// once; Objective is read-only and safe for concurrent use.
type Objective struct {
	sim   *Simulator
	n     int
	costs []float64
}

var _ optimize.Differentiable = (*Objective)(nil)

// Objective validates the model against the resource ceiling and builds the
// cost table for repeated evaluation.
func (s *Simulator) Objective(model *ising.Model) (*Objective, error) {
	costs, err := s.prepare("Objective", model)
	if err != nil {
		return nil, err
	}

	return &Objective{sim: s, n: model.N(), costs: costs}, nil
}

// N returns the number of qubits.
func (o *Objective) N() int { return o.n }

// Evaluate returns the expected cost at params.
func (o *Objective) Evaluate(params []float64) (float64, error) {
	return o.sim.expectation(o.costs, params)
}

// Gradient returns the central-difference gradient at params.
func (o *Objective) Gradient(params []float64) ([]float64, error) {
	return o.sim.gradient(o.costs, params)
}
