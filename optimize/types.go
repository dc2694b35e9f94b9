// SPDX-License-Identifier: MIT

package optimize

import (
	"fmt"
	"strings"
)

// Objective is a black-box scalar function of a parameter vector.
type Objective interface {
	Evaluate(x []float64) (float64, error)
}

// Differentiable is an Objective that also reports its gradient.
type Differentiable interface {
	Objective
	Gradient(x []float64) ([]float64, error)
}

// ObjectiveFunc adapts a plain function to Objective.
type ObjectiveFunc func(x []float64) (float64, error)

// Evaluate calls f(x).
func (f ObjectiveFunc) Evaluate(x []float64) (float64, error) { return f(x) }

// Method selects the optimization algorithm.
type Method int

const (
	// MethodGradient is fixed-step gradient descent/ascent.
	MethodGradient Method = iota
	// MethodDerivativeFree is the Nelder–Mead simplex method.
	MethodDerivativeFree
)

// String returns "gradient" or "derivative_free".
func (m Method) String() string {
	switch m {
	case MethodGradient:
		return "gradient"
	case MethodDerivativeFree:
		return "derivative_free"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "gradient" and "derivative_free" (aliases
// "derivative-free", "nelder_mead", "nelder-mead") to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gradient":
		return MethodGradient, nil
	case "derivative_free", "derivative-free", "nelder_mead", "nelder-mead":
		return MethodDerivativeFree, nil
	default:
		return 0, fmt.Errorf("ParseMethod: %q: %w", s, ErrInvalidArgument)
	}
}

// Sense selects the optimization direction.
type Sense int

const (
	// Minimize drives the objective down.
	Minimize Sense = iota
	// Maximize drives the objective up.
	Maximize
)

// String returns "minimize" or "maximize".
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// ParseSense maps "minimize"/"min" and "maximize"/"max" to a Sense.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimize", "min":
		return Minimize, nil
	case "maximize", "max":
		return Maximize, nil
	default:
		return 0, fmt.Errorf("ParseSense: %q: %w", s, ErrInvalidArgument)
	}
}

// sign maps the sense onto the internal minimization: g(x) = sign·f(x).
func (s Sense) sign() float64 {
	if s == Maximize {
		return -1
	}

	return 1
}

// better reports whether a is strictly better than b under s.
func (s Sense) better(a, b float64) bool {
	if s == Maximize {
		return a > b
	}

	return a < b
}

// Status reports how a run terminated.
type Status int

const (
	// StatusConverged means the tolerance criterion was met.
	StatusConverged Status = iota
	// StatusNotConverged means MaxIterations was reached first.
	StatusNotConverged
)

// String returns "converged" or "not_converged".
func (s Status) String() string {
	if s == StatusConverged {
		return "converged"
	}

	return "not_converged"
}

// Err returns nil for StatusConverged and ErrNotConverged otherwise.
func (s Status) Err() error {
	if s == StatusConverged {
		return nil
	}

	return ErrNotConverged
}

// Result is the outcome of one optimization run.
type Result struct {
	// X is the best point found.
	X []float64
	// F is the objective value at X (in the caller's sense, not negated).
	F float64
	// Iterations counts completed algorithm iterations.
	Iterations int
	// Evaluations counts objective evaluations, finite-difference probes included.
	Evaluations int
	// Status is StatusConverged or StatusNotConverged.
	Status Status
}
