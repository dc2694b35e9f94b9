// SPDX-License-Identifier: MIT

// Package qaoa simulates the Quantum Approximate Optimization Algorithm on
// a dense 2^N state vector for an ising.Model cost function.
//
// Circuit (depth p, angles γ_1..γ_p and β_1..β_p):
//
//	|ψ_0⟩ = uniform superposition, amplitude 2^{−N/2} on every basis state
//	for ℓ = 1..p:
//	    |ψ⟩ ← exp(−i·γ_ℓ·C) |ψ⟩        diagonal phase, C(x) = model cost
//	    |ψ⟩ ← exp(−i·β_ℓ·Σ_q X_q) |ψ⟩  per-qubit rotation on pairs (x, x|2^q):
//	                                   (a, b) → (cos β·a − i sin β·b, −i sin β·a + cos β·b)
//	    renormalize; NaN/±Inf ⇒ ErrNumericalInstability
//
// Probabilities are indexed by basis state with bit i = variable i, and the
// expected cost is Σ_x P(x)·C(x).
//
// Resources:
//
//	A run holds 2^N amplitudes (16 B), costs (8 B) and probabilities (8 B).
//	Both the qubit ceiling (WithMaxQubits, default 24) and the byte budget
//	(WithMemoryBudget, default 1 GiB) are checked before any allocation and
//	reported as ErrResourceExhausted.
//
// Concurrency:
//
//	A Simulator is immutable after NewSimulator and safe for concurrent
//	use; each call owns its state vector. With WithWorkers(w > 1) the mixer
//	of states with at least WithParallelThreshold amplitudes is split into
//	disjoint pair ranges run through errgroup.
package qaoa
