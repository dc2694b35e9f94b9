// SPDX-License-Identifier: MIT
// Package ising: sentinel error set shared by every numeric package.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX).
//   • Implementations attach context as fmt.Errorf("Method: ...: %w", ErrX).
//   • No panics on user input.

package ising

import "errors"

var (
	// ErrDimensionMismatch indicates vector or matrix lengths that disagree
	// with the declared N or p. Never silently truncated or padded.
	ErrDimensionMismatch = errors.New("ising: dimension mismatch")

	// ErrInvalidArgument indicates a parameter outside its domain
	// (N < 1, p < 1, τ ≤ 0, non-binary bits, asymmetric J, ...).
	ErrInvalidArgument = errors.New("ising: invalid argument")

	// ErrInvalidEdge indicates a MaxCut edge with an endpoint outside [0, N)
	// or a self-loop. It matches ErrInvalidArgument under errors.Is.
	ErrInvalidEdge error = &edgeError{}

	// ErrResourceExhausted indicates a state vector or cost table that
	// exceeds the configured qubit ceiling or memory budget.
	ErrResourceExhausted = errors.New("ising: resource exhausted")

	// ErrNumericalInstability indicates NaN or ±Inf in inputs, amplitudes,
	// objective values or spin vectors.
	ErrNumericalInstability = errors.New("ising: numerical instability")

	// ErrNotConverged indicates an optimizer that hit its iteration cap.
	// Optimizers report it as a status; Status.Err() converts it.
	ErrNotConverged = errors.New("ising: not converged")
)

// edgeError is the concrete type behind ErrInvalidEdge.
type edgeError struct{}

func (*edgeError) Error() string { return "ising: invalid edge" }

// Is makes ErrInvalidEdge a refinement of ErrInvalidArgument.
func (*edgeError) Is(target error) bool { return target == ErrInvalidArgument }
