// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory Graph used as the input
// surface for combinatorial problem instances (MaxCut and other Ising-type
// cost models).
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge membership via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention
//
// Determinism:
//
//	Vertices() returns IDs in lexicographic order, Edges() returns edges in
//	insertion order, NeighborIDs() returns sorted IDs. Downstream adapters
//	(matrix.BuildAdjacency, ising.FromGraph) rely on these orders to map
//	vertices onto bit positions reproducibly.
//
// Core Methods:
//
//	AddVertex(id string) error                          // O(1)
//	HasVertex(id string) bool                           // O(1)
//	AddEdge(from, to string, w float64) (string, error) // O(1) amortized
//	HasEdge(from, to string) bool                       // O(1)
//	Edges() []*Edge                                     // O(E log E)
//	NeighborIDs(id string) ([]string, error)            // O(d log d)
//	Degree(id string) (int, error)                      // O(d)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
