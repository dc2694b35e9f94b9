// SPDX-License-Identifier: MIT

package qaoa

import "github.com/katalvlaran/lvqaoa/ising"

// Sentinel aliases of the shared ising error set.
var (
	ErrDimensionMismatch    = ising.ErrDimensionMismatch
	ErrInvalidArgument      = ising.ErrInvalidArgument
	ErrResourceExhausted    = ising.ErrResourceExhausted
	ErrNumericalInstability = ising.ErrNumericalInstability
	ErrNotConverged         = ising.ErrNotConverged
)
