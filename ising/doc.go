// SPDX-License-Identifier: MIT

// Package ising models Ising-type cost functions over N binary variables:
//
//	C(x) = Σ_i h_i·s_i + Σ_{i<j} J_ij·s_i·s_j,   s_i = 1 − 2·x_i ∈ {+1, −1}
//
// A Model holds the linear fields h, the symmetric zero-diagonal coupling
// matrix J (stored as a matrix.Dense) and an additive offset. It is immutable
// once constructed and safe for concurrent readers; accessors return copies.
//
// Bit convention: bit i of a basis-state index x is variable i, so
// EvaluateIndex(x) == Evaluate(BitsFromIndex(x, N)).
//
// MaxCut:
//
//	FromMaxCutEdges(n, edges) sets h = 0 and J_ij = J_ji = −½ per edge
//	(duplicates accumulate) and an offset of ½ per edge, so
//	Evaluate(x) + Offset() equals the number of cut edges. FromGraph does
//	the same for a weighted core.Graph using matrix.BuildAdjacency.
//
// Errors:
//
//	The sentinels in errors.go are shared by the whole module; qaoa,
//	optimize, schedule and meanfield re-export them so errors.Is matches
//	across package boundaries.
package ising
