// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvqaoa/builder"
	"github.com/katalvlaran/lvqaoa/core"
)

// ExampleCycle builds the 4-ring used as the reference MaxCut instance.
func ExampleCycle() {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// Vertices: [0 1 2 3]
	// Edges: 4
}
