// SPDX-License-Identifier: MIT

// Package meanfield propagates the mean-field (product-state) approximation
// of the QAOA annealing dynamics (MF-AOA).
//
// Each of the first N−1 spins is a classical Bloch vector (x, y, z) with
// norm ≤ 1. The last spin is fixed at z = +1 (the Z2 symmetry of MaxCut-type
// models removes it) and its couplings act as an extra field.
//
// Layer k of the schedule, for every free spin i:
//
//	m_i = h_i + J_{i,N−1} + Σ_{j<N−1} J_ij·z_j      (z from the start of the layer)
//	rotate about z by 2·γ_k·m_i                     (cost step)
//	rotate about x by 2·β_k                         (mixer step)
//
// Every intermediate slice is recorded, so a Trajectory of a depth-p
// schedule holds p+1 slices and slice 0 is a copy of the initial condition.
package meanfield
