// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage behind Ising cost models
// and mean-field couplings, together with a deterministic graph→adjacency
// adapter for core.Graph.
//
// What is here:
//
//   - Dense: a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and a NaN/Inf ingestion policy.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateZeroDiagonal, ValidateFinite, ValidateVecLen. They are the
//     single source of truth for the coupling-matrix contract
//     (square, symmetric within eps, zero diagonal, finite).
//   - BuildAdjacency: weighted adjacency from a core.Graph with vertices
//     indexed in lexicographic ID order.
//   - MatVec: y = A·x with a flat fast path for *Dense.
//
// Determinism:
//
//	Every loop runs in fixed row→column order; the adapter walks vertices
//	in ID order and edges in insertion order, so identical graphs always
//	yield identical matrices.
//
// Errors:
//
//	All functions return package sentinels (ErrBadShape, ErrOutOfRange,
//	ErrDimensionMismatch, ErrAsymmetry, ErrNonZeroDiagonal, ErrNaNInf,
//	ErrGraphNil, ErrNilMatrix, ErrUnknownVertex) wrapped with a method tag.
package matrix
