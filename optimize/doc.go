// SPDX-License-Identifier: MIT

// Package optimize provides the two local optimizers used to tune QAOA
// circuit angles behind one strategy interface:
//
//   - MethodGradient: fixed-step gradient descent (or ascent under
//     SenseMaximize). Uses Differentiable.Gradient when the objective
//     provides it and central finite differences otherwise.
//   - MethodDerivativeFree: Nelder–Mead simplex search, black-box
//     evaluations only.
//
// Termination:
//
//	Gradient converges when successive objective values differ by less than
//	Options.Tolerance; Nelder–Mead converges when the spread of function
//	values over the simplex falls below it and the simplex has shrunk to
//	√Tolerance. Reaching MaxIterations is not an
//	error: Run returns the best point seen with StatusNotConverged.
//
// Concurrency:
//
//	Run is reentrant and keeps no global state. MultiStart fans restarts out
//	with errgroup; the Objective must then be safe for concurrent use.
package optimize
