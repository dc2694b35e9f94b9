// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqaoa/core"
)

func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Directed())
	assert.False(t, g.Weighted())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())

	full := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, full.Directed())
	assert.True(t, full.Weighted())
	assert.True(t, full.Looped())
	assert.True(t, full.Multigraph())
}

func TestGraph_AddEdgeContracts(t *testing.T) {
	tests := []struct {
		name    string
		opts    []core.GraphOption
		from    string
		to      string
		weight  float64
		wantErr error
	}{
		{"empty from", nil, "", "B", 0, core.ErrEmptyVertexID},
		{"weight on unweighted", nil, "A", "B", 2, core.ErrBadWeight},
		{"NaN weight", []core.GraphOption{core.WithWeighted()}, "A", "B", nan(), core.ErrBadWeight},
		{"loop disallowed", nil, "A", "A", 0, core.ErrLoopNotAllowed},
		{"loop allowed", []core.GraphOption{core.WithLoops()}, "A", "A", 0, nil},
		{"weighted ok", []core.GraphOption{core.WithWeighted()}, "A", "B", 2.5, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, err := g.AddEdge(tc.from, tc.to, tc.weight)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGraph_MultiEdgePolicy(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("X", "Y", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("X", "Y", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	// Undirected mirror counts as the same pair.
	_, err = g.AddEdge("Y", "X", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	mg := core.NewGraph(core.WithMultiEdges())
	_, err = mg.AddEdge("X", "Y", 0)
	require.NoError(t, err)
	_, err = mg.AddEdge("X", "Y", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, mg.EdgeCount())
}

func TestGraph_QueriesAreDeterministic(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	ids := []string{"C", "A", "B", "D"}
	for i := range ids {
		_, err := g.AddEdge(ids[i], ids[(i+1)%len(ids)], float64(i+1))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 4, g.VertexCount())

	edges := g.Edges()
	require.Len(t, edges, 4)
	for i, e := range edges {
		assert.Equal(t, float64(i+1), e.Weight)
	}
	assert.Equal(t, "e1", edges[0].ID)

	nb, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nb)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.Degree("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.True(t, g.HasEdge("B", "D"))
	assert.True(t, g.HasEdge("D", "B"))
	assert.False(t, g.HasEdge("A", "D"))

	e, err := g.GetEdge(edges[2].ID)
	require.NoError(t, err)
	assert.Equal(t, edges[2], e)
	_, err = g.GetEdge("e99")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_DirectedDoesNotMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	const workers = 16
	const perWorker = 25

	g := core.NewGraph(core.WithMultiEdges())
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := g.AddEdge("hub", "leaf", 0); err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, workers*perWorker, g.EdgeCount())

	seen := make(map[string]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.False(t, seen[e.ID], "duplicate edge id %s", e.ID)
		seen[e.ID] = true
	}
}

func nan() float64 { return math.NaN() }
