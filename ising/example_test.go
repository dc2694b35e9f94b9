// SPDX-License-Identifier: MIT

package ising_test

import (
	"fmt"

	"github.com/katalvlaran/lvqaoa/ising"
)

// ExampleFromMaxCutEdges evaluates the two optimal cuts of the 4-ring.
func ExampleFromMaxCutEdges() {
	m, err := ising.FromMaxCutEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, x := range []uint64{0b0000, 0b0101, 0b0011} {
		bits := ising.BitsFromIndex(x, m.N())
		fmt.Printf("%s cut=%g\n", ising.FormatBits(bits), m.EvaluateIndex(x)+m.Offset())
	}
	// Output:
	// 0000 cut=0
	// 1010 cut=4
	// 1100 cut=2
}
