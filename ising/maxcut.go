// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"

	"github.com/katalvlaran/lvqaoa/core"
	"github.com/katalvlaran/lvqaoa/matrix"
)

const (
	methodFromMaxCutEdges = "FromMaxCutEdges"
	methodFromGraph       = "FromGraph"
	methodCutValue        = "CutValue"
)

// FromMaxCutEdges builds the unweighted MaxCut model on n vertices:
// h = 0, J_ij = J_ji = −½ per edge (i, j), offset = ½·|edges|.
// Duplicate edges accumulate weight.
//
// Errors:
//   - ErrInvalidArgument if n < 1.
//   - ErrInvalidEdge if an endpoint is outside [0, n) or i == j.
//
// Complexity: O(n² + |edges|).
func FromMaxCutEdges(n int, edges [][2]int) (*Model, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodFromMaxCutEdges, n, ErrInvalidArgument)
	}
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromMaxCutEdges, err)
	}
	var offset float64
	for k, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n || u == v {
			return nil, fmt.Errorf("%s: edge %d (%d,%d) with n=%d: %w", methodFromMaxCutEdges, k, u, v, n, ErrInvalidEdge)
		}
		if err = addCoupling(dense, u, v, -0.5); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromMaxCutEdges, err)
		}
		offset += 0.5
	}

	return newFromDense(make([]float64, n), dense, modelConfig{eps: DefaultSymmetryEpsilon, offset: offset})
}

// FromGraph builds the weighted MaxCut model of g: vertex k of the returned
// order is variable k, J_ij = −w_ij/2 where w_ij is the summed weight of all
// edges between i and j (1 per edge on unweighted graphs), and the offset is
// half the total weight. Directed edges are treated as undirected; self-loops
// are ignored.
//
// Errors: ErrInvalidArgument for a nil or empty graph.
// Complexity: O(V² + E).
func FromGraph(g *core.Graph, opts ...Option) (*Model, []string, error) {
	am, err := matrix.BuildAdjacency(g, matrix.WithUndirected())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", methodFromGraph, ErrInvalidArgument, err)
	}
	cfg := newModelConfig(opts...)

	n := am.Mat.Rows()
	var total float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w, _ := am.Mat.At(i, j)
			if w == 0 {
				continue
			}
			total += w
			_ = am.Mat.Set(i, j, -w/2)
			_ = am.Mat.Set(j, i, -w/2)
		}
	}
	cfg.offset += total / 2

	m, err := newFromDense(make([]float64, n), am.Mat, cfg)
	if err != nil {
		return nil, nil, err
	}

	return m, am.Vertices(), nil
}

// CutValue returns the unweighted number of edges of edges cut by bits.
// Errors: ErrInvalidEdge for out-of-range endpoints; ErrInvalidArgument for non-binary bits.
func CutValue(bits []int, edges [][2]int) (int, error) {
	for i, b := range bits {
		if b != 0 && b != 1 {
			return 0, fmt.Errorf("%s: bits[%d]=%d: %w", methodCutValue, i, b, ErrInvalidArgument)
		}
	}
	cut := 0
	for k, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= len(bits) || v < 0 || v >= len(bits) {
			return 0, fmt.Errorf("%s: edge %d (%d,%d): %w", methodCutValue, k, u, v, ErrInvalidEdge)
		}
		if bits[u] != bits[v] {
			cut++
		}
	}

	return cut, nil
}

// addCoupling adds w to J_uv and J_vu.
func addCoupling(d *matrix.Dense, u, v int, w float64) error {
	cur, err := d.At(u, v)
	if err != nil {
		return err
	}
	if err = d.Set(u, v, cur+w); err != nil {
		return err
	}

	return d.Set(v, u, cur+w)
}
