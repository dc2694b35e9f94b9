// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvqaoa/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}. The left side gets
// IDs idFn(0..n1-1), the right side idFn(n1..n1+n2-1); edges are emitted
// left-major. The maximum cut separates the sides and has n1·n2 edges.
//
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, cfg, methodCompleteBipartite, cfg.idFn(i), cfg.idFn(n1+j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
