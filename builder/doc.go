// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph constructors used to
// assemble problem instances (MaxCut rings, paths, stars, complete graphs,
// square lattices and Erdős–Rényi samples) on top of core.Graph.
//
// The package offers:
//
//   - One orchestrator: BuildGraph(gopts, bopts, cons...).
//   - Topology constructors: Cycle, Path, Star, Wheel, Complete,
//     CompleteBipartite, Grid, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), PaddedIDFn(width)
//     ("00","01",… so lexicographic order equals index order), SymbolIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn. Weights are observed only on weighted graphs.
//
// Guarantees:
//
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with a
//     method tag ("Cycle: n=2 < min=3: builder: parameter too small").
//   - Option constructors (WithX) panic on meaningless values (programmer error).
package builder
