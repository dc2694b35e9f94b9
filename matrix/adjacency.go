// SPDX-License-Identifier: MIT

// Package matrix - graph→adjacency adapter.
//
// Contract:
//   - Vertex order is lexicographic by ID (core.Graph.Vertices()); vertex k
//     maps to row/column k.
//   - Edges are visited in insertion order; parallel edges accumulate.
//   - Weight = Edge.Weight on weighted graphs, 1 on unweighted graphs or
//     under WithBinaryWeights.
//   - Directed edges write A[u,v] only, unless WithUndirected is set.
//   - Self-loops are skipped unless WithAllowLoops is set.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvqaoa/core"
)

const ctxBuildAdjacency = "BuildAdjacency"

// AdjacencyMatrix couples a square Dense with its vertex index.
type AdjacencyMatrix struct {
	// Mat is the n×n weighted adjacency.
	Mat *Dense

	// VertexIndex maps vertex ID → row/column.
	VertexIndex map[string]int

	vertexByIndex []string
}

// BuildAdjacency converts g into a weighted adjacency matrix.
//
// Errors: ErrGraphNil for nil g; ErrBadShape for a graph with no vertices.
// Complexity: O(V log V + E) plus O(V²) zero-init.
func BuildAdjacency(g *core.Graph, opts ...Option) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, matrixErrorf(ctxBuildAdjacency, ErrGraphNil)
	}
	o := NewMatrixOptions(opts...)

	ids := g.Vertices()
	n := len(ids)
	mat, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(ctxBuildAdjacency, err)
	}
	index := make(map[string]int, n)
	for k, id := range ids {
		index[id] = k
	}

	weighted := g.Weighted() && !o.binaryWeights
	for _, e := range g.Edges() {
		u, okU := index[e.From]
		v, okV := index[e.To]
		if !okU || !okV {
			return nil, fmt.Errorf("%s: edge %s: %w", ctxBuildAdjacency, e.ID, ErrUnknownVertex)
		}
		if u == v && !o.allowLoops {
			continue
		}
		w := 1.0
		if weighted {
			w = e.Weight
		}
		mat.add(u, v, w)
		if u != v && (o.undirected || !e.Directed) {
			mat.add(v, u, w)
		}
	}

	return &AdjacencyMatrix{Mat: mat, VertexIndex: index, vertexByIndex: ids}, nil
}

// Vertices returns a copy of the vertex IDs in row order.
func (am *AdjacencyMatrix) Vertices() []string {
	out := make([]string, len(am.vertexByIndex))
	copy(out, am.vertexByIndex)

	return out
}

// VertexID returns the vertex ID for row/column k or ErrOutOfRange.
func (am *AdjacencyMatrix) VertexID(k int) (string, error) {
	if k < 0 || k >= len(am.vertexByIndex) {
		return "", fmt.Errorf("VertexID(%d): %w", k, ErrOutOfRange)
	}

	return am.vertexByIndex[k], nil
}

// Index returns the row/column of id or ErrUnknownVertex.
func (am *AdjacencyMatrix) Index(id string) (int, error) {
	k, ok := am.VertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", id, ErrUnknownVertex)
	}

	return k, nil
}
