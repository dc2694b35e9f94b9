// SPDX-License-Identifier: MIT

package ising

import "fmt"

// BitsFromIndex expands x into n bits, bit i of x at position i.
func BitsFromIndex(x uint64, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = int((x >> uint(i)) & 1)
	}

	return out
}

// IndexFromBits packs 0/1 bits into an index, position i into bit i.
// Errors: ErrInvalidArgument for non-binary entries or more than 64 bits.
func IndexFromBits(bits []int) (uint64, error) {
	if len(bits) > 64 {
		return 0, fmt.Errorf("IndexFromBits: %d bits > 64: %w", len(bits), ErrInvalidArgument)
	}
	var x uint64
	for i, b := range bits {
		switch b {
		case 0:
		case 1:
			x |= 1 << uint(i)
		default:
			return 0, fmt.Errorf("IndexFromBits: bits[%d]=%d: %w", i, b, ErrInvalidArgument)
		}
	}

	return x, nil
}

// FormatBits renders bits as a string with variable 0 first, e.g. [1 0 1 0] → "1010".
func FormatBits(bits []int) string {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		buf[i] = byte('0' + b)
	}

	return string(buf)
}
