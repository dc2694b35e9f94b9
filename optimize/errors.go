// SPDX-License-Identifier: MIT

package optimize

import "github.com/katalvlaran/lvqaoa/ising"

// Sentinel aliases of the shared ising error set, so errors.Is matches
// regardless of which package name the caller uses.
var (
	ErrInvalidArgument      = ising.ErrInvalidArgument
	ErrDimensionMismatch    = ising.ErrDimensionMismatch
	ErrNumericalInstability = ising.ErrNumericalInstability
	ErrNotConverged         = ising.ErrNotConverged
)
