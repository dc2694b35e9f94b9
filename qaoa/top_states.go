// SPDX-License-Identifier: MIT

package qaoa

import (
	"sort"

	"github.com/katalvlaran/lvqaoa/ising"
)

// State is a basis state with its measurement probability.
type State struct {
	Index       uint64
	Probability float64
}

// Bits expands the state into n variables, bit i = variable i.
func (st State) Bits(n int) []int { return ising.BitsFromIndex(st.Index, n) }

// TopStates returns the k most probable basis states, highest first; equal
// probabilities are ordered by ascending index. k is clamped to
// [0, len(probabilities)].
// Complexity: O(M log M) for M = len(probabilities).
func TopStates(probabilities []float64, k int) []State {
	if k < 0 {
		k = 0
	}
	if k > len(probabilities) {
		k = len(probabilities)
	}
	all := make([]State, len(probabilities))
	for x, p := range probabilities {
		all[x] = State{Index: uint64(x), Probability: p}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Probability > all[j].Probability })

	return all[:k]
}
