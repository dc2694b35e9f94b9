// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"
	"math/bits"
)

const methodCosts = "Costs"

// MaxTableQubits bounds the diagonal cost table; 2^MaxTableQubits float64
// entries is 8 GiB. Callers with tighter budgets check before calling Costs.
const MaxTableQubits = 30

// Costs returns the diagonal of the cost Hamiltonian: out[x] = EvaluateIndex(x)
// for every x in [0, 2^N).
//
// Implementation:
//   - Walk the reflected Gray code so consecutive states differ in one spin.
//   - Keep local fields f_i = h_i + Σ_j J_ij s_j; flipping spin b changes the
//     energy by −2·s_b·f_b and every f_i by −2·J_ib·s_b.
//
// Errors: ErrResourceExhausted when N > MaxTableQubits.
// Complexity: O(N·2^N) time, O(2^N) space.
func (m *Model) Costs() ([]float64, error) {
	if m.n > MaxTableQubits {
		return nil, fmt.Errorf("%s: N=%d > %d: %w", methodCosts, m.n, MaxTableQubits, ErrResourceExhausted)
	}
	size := uint64(1) << uint(m.n)
	out := make([]float64, size)

	couplings := m.j.ToRows()
	spins := make([]float64, m.n)
	field := make([]float64, m.n)
	var e float64
	for i := 0; i < m.n; i++ {
		spins[i] = 1
	}
	for i := 0; i < m.n; i++ {
		field[i] = m.h[i]
		for j := 0; j < m.n; j++ {
			field[i] += couplings[i][j]
		}
		e += m.h[i]
		for j := i + 1; j < m.n; j++ {
			e += couplings[i][j]
		}
	}
	out[0] = e

	var gray uint64
	for k := uint64(1); k < size; k++ {
		b := bits.TrailingZeros64(k)
		sb := spins[b]
		e -= 2 * sb * field[b]
		for i := 0; i < m.n; i++ {
			field[i] -= 2 * couplings[i][b] * sb
		}
		spins[b] = -sb
		gray ^= 1 << uint(b)
		out[gray] = e
	}

	return out, nil
}
