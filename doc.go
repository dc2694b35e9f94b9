// SPDX-License-Identifier: MIT

// Package lvqaoa simulates the Quantum Approximate Optimization Algorithm
// (QAOA) and its mean-field limit for Ising-type cost models such as MaxCut.
//
// Two paths read the same cost model:
//
//	quantum:   ising.Model → qaoa.Simulator → optimize (angle tuning)
//	classical: schedule.Build → meanfield.Evolve → Trajectory.Solution
//
// Packages:
//
//	core/       thread-safe Graph (problem instances)
//	builder/    deterministic graph constructors (Cycle, Grid, RandomSparse, …)
//	matrix/     Dense matrices, validators and graph adjacency
//	ising/      cost model C(x) = Σ h_i s_i + Σ_{i<j} J_ij s_i s_j (Offset() added separately)
//	schedule/   linear annealing schedules (γ_k, β_k)
//	qaoa/       state-vector simulator, expectation, gradient, parameter tuning
//	optimize/   gradient and Nelder–Mead optimizers, parallel multi-start
//	meanfield/  Bloch-vector propagation (MF-AOA)
//	config/     YAML run configuration
//	logger/     slog constructors
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(6))
//	model, order, _ := ising.FromGraph(g)
//	res, _ := qaoa.NewSimulator().OptimizeParameters(ctx, model, 1, nil, opts)
//	fmt.Println(order, res.Cost+model.Offset())
package lvqaoa
