// SPDX-License-Identifier: MIT

package qaoa

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvqaoa/ising"
)

// Defaults for Simulator options.
const (
	// DefaultMaxQubits bounds N; 2^24 amplitudes use 512 MiB for the run.
	DefaultMaxQubits = 24

	// DefaultMemoryBudget is the per-run byte budget (1 GiB).
	DefaultMemoryBudget uint64 = 1 << 30

	// DefaultWorkers keeps the mixer single-threaded.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the minimum state size (amplitudes) for
	// the parallel mixer.
	DefaultParallelThreshold = 1 << 14

	// DefaultGradientStep is the central finite-difference step.
	DefaultGradientStep = 1e-6

	// bytesPerBasisState is amplitude + cost + probability.
	bytesPerBasisState = 16 + 8 + 8
)

// Option configures a Simulator. Option constructors panic on values that
// can only be programmer errors.
type Option func(*Simulator)

// WithMaxQubits sets the qubit ceiling. Panics unless 1 ≤ n ≤ ising.MaxTableQubits.
func WithMaxQubits(n int) Option {
	if n < 1 || n > ising.MaxTableQubits {
		panic(fmt.Sprintf("qaoa: WithMaxQubits(%d): must be in [1,%d]", n, ising.MaxTableQubits))
	}

	return func(s *Simulator) { s.maxQubits = n }
}

// WithMemoryBudget sets the per-run byte budget. Panics on 0.
func WithMemoryBudget(bytes uint64) Option {
	if bytes == 0 {
		panic("qaoa: WithMemoryBudget(0)")
	}

	return func(s *Simulator) { s.memoryBudget = bytes }
}

// WithWorkers sets the number of goroutines used by the mixer.
// Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf("qaoa: WithWorkers(%d): must be ≥ 1", w))
	}

	return func(s *Simulator) { s.workers = w }
}

// WithParallelThreshold sets the minimum number of amplitudes for which
// the mixer runs in parallel. Panics if n < 2.
func WithParallelThreshold(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("qaoa: WithParallelThreshold(%d): must be ≥ 2", n))
	}

	return func(s *Simulator) { s.parallelThreshold = n }
}

// WithGradientStep sets the central finite-difference step.
// Panics unless h is finite and > 0.
func WithGradientStep(h float64) Option {
	if !(h > 0) || math.IsInf(h, 0) {
		panic(fmt.Sprintf("qaoa: WithGradientStep(%g): must be finite and > 0", h))
	}

	return func(s *Simulator) { s.gradStep = h }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("qaoa: WithLogger(nil)")
	}

	return func(s *Simulator) { s.log = l }
}
