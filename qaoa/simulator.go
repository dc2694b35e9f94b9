// SPDX-License-Identifier: MIT

package qaoa

import (
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/logger"
)

const (
	methodRun         = "Run"
	methodExpectation = "Expectation"
	methodGradient    = "Gradient"
)

// Simulator runs QAOA circuits. Construct with NewSimulator.
type Simulator struct {
	maxQubits         int
	memoryBudget      uint64
	workers           int
	parallelThreshold int
	gradStep          float64
	log               *slog.Logger
}

// Result is the outcome of one circuit run.
type Result struct {
	// ExpectedCost is Σ_x P(x)·C(x).
	ExpectedCost float64
	// Probabilities has 2^N entries indexed by basis state (bit i = variable i).
	Probabilities []float64
	// Layers is the circuit depth p.
	Layers int
}

// NewSimulator returns a Simulator with defaults overridden by opts.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		maxQubits:         DefaultMaxQubits,
		memoryBudget:      DefaultMemoryBudget,
		workers:           DefaultWorkers,
		parallelThreshold: DefaultParallelThreshold,
		gradStep:          DefaultGradientStep,
		log:               logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// MaxQubits returns the configured qubit ceiling.
func (s *Simulator) MaxQubits() int { return s.maxQubits }

// Workers returns the configured mixer parallelism.
func (s *Simulator) Workers() int { return s.workers }

// RequiredBytes returns the memory one run needs for n qubits.
func RequiredBytes(n int) uint64 {
	return (uint64(1) << uint(n)) * bytesPerBasisState
}

// CheckResources reports ErrResourceExhausted if an n-qubit run exceeds the
// qubit ceiling or the memory budget. Nothing is allocated.
func (s *Simulator) CheckResources(n int) error {
	if n > s.maxQubits {
		return fmt.Errorf("N=%d exceeds max qubits %d: %w", n, s.maxQubits, ErrResourceExhausted)
	}
	if need := RequiredBytes(n); need > s.memoryBudget {
		return fmt.Errorf("N=%d needs %d bytes, budget %d: %w", n, need, s.memoryBudget, ErrResourceExhausted)
	}

	return nil
}

// Run executes the depth-p circuit with p = len(gamma) = len(beta) and
// returns the expected cost and the output distribution. p = 0 yields the
// uniform distribution.
//
// Errors:
//   - ErrInvalidArgument for a nil model or non-finite angles.
//   - ErrDimensionMismatch if len(gamma) != len(beta).
//   - ErrResourceExhausted if the model is too large (checked first).
//   - ErrNumericalInstability if amplitudes become NaN/±Inf.
//
// Complexity: O(p·N·2^N) time, O(2^N) space.
func (s *Simulator) Run(model *ising.Model, gamma, beta []float64) (Result, error) {
	costs, err := s.prepare(methodRun, model)
	if err != nil {
		return Result{}, err
	}
	amp, err := s.evolve(costs, gamma, beta)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodRun, err)
	}

	probs := make([]float64, len(amp))
	var expected float64
	for x, a := range amp {
		p := real(a)*real(a) + imag(a)*imag(a)
		probs[x] = p
		expected += p * costs[x]
	}
	s.log.Debug("qaoa: run complete", slog.Int("n", model.N()), slog.Int("layers", len(gamma)), slog.Float64("expected", expected))

	return Result{ExpectedCost: expected, Probabilities: probs, Layers: len(gamma)}, nil
}

// Expectation returns the expected cost for the flattened parameter vector
// [γ_1..γ_p, β_1..β_p].
//
// Errors: as Run; ErrDimensionMismatch if len(params) is odd.
func (s *Simulator) Expectation(model *ising.Model, params []float64) (float64, error) {
	costs, err := s.prepare(methodExpectation, model)
	if err != nil {
		return 0, err
	}
	e, err := s.expectation(costs, params)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodExpectation, err)
	}

	return e, nil
}

// Gradient returns ∂E/∂params by central finite differences with the
// configured step (WithGradientStep). It runs 4p circuits.
func (s *Simulator) Gradient(model *ising.Model, params []float64) ([]float64, error) {
	costs, err := s.prepare(methodGradient, model)
	if err != nil {
		return nil, err
	}
	g, err := s.gradient(costs, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGradient, err)
	}

	return g, nil
}

// prepare validates the model against the resource ceiling and builds the
// diagonal cost table.
func (s *Simulator) prepare(method string, model *ising.Model) ([]float64, error) {
	if model == nil {
		return nil, fmt.Errorf("%s: nil model: %w", method, ErrInvalidArgument)
	}
	if err := s.CheckResources(model.N()); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	costs, err := model.Costs()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return costs, nil
}

// expectation evaluates Σ|a_x|²·C(x) for flattened params.
func (s *Simulator) expectation(costs []float64, params []float64) (float64, error) {
	if len(params)%2 != 0 {
		return 0, fmt.Errorf("len(params)=%d is odd: %w", len(params), ErrDimensionMismatch)
	}
	p := len(params) / 2
	amp, err := s.evolve(costs, params[:p], params[p:])
	if err != nil {
		return 0, err
	}
	var e float64
	for x, a := range amp {
		e += (real(a)*real(a) + imag(a)*imag(a)) * costs[x]
	}

	return e, nil
}

// gradient is the central-difference gradient of expectation.
func (s *Simulator) gradient(costs []float64, params []float64) ([]float64, error) {
	if len(params)%2 != 0 {
		return nil, fmt.Errorf("len(params)=%d is odd: %w", len(params), ErrDimensionMismatch)
	}
	probe := make([]float64, len(params))
	copy(probe, params)
	out := make([]float64, len(params))
	h := s.gradStep
	for i := range params {
		probe[i] = params[i] + h
		fp, err := s.expectation(costs, probe)
		if err != nil {
			return nil, err
		}
		probe[i] = params[i] - h
		fm, err := s.expectation(costs, probe)
		if err != nil {
			return nil, err
		}
		probe[i] = params[i]
		out[i] = (fp - fm) / (2 * h)
	}

	return out, nil
}

// evolve prepares |+⟩^N and applies len(gamma) cost/mixer layers.
func (s *Simulator) evolve(costs []float64, gamma, beta []float64) ([]complex128, error) {
	if len(gamma) != len(beta) {
		return nil, fmt.Errorf("len(gamma)=%d, len(beta)=%d: %w", len(gamma), len(beta), ErrDimensionMismatch)
	}
	for l := range gamma {
		if !finite(gamma[l]) || !finite(beta[l]) {
			return nil, fmt.Errorf("layer %d: gamma=%g beta=%g: %w", l+1, gamma[l], beta[l], ErrInvalidArgument)
		}
	}

	size := len(costs)
	n := qubits(size)
	amp := make([]complex128, size)
	a0 := complex(1/math.Sqrt(float64(size)), 0)
	for x := range amp {
		amp[x] = a0
	}

	for l := range gamma {
		applyPhase(amp, costs, gamma[l])
		if err := s.applyMixer(amp, n, beta[l]); err != nil {
			return nil, fmt.Errorf("layer %d: %w", l+1, err)
		}
		norm, err := normalize(amp)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", l+1, err)
		}
		s.log.Debug("qaoa: layer", slog.Int("layer", l+1), slog.Float64("gamma", gamma[l]), slog.Float64("beta", beta[l]), slog.Float64("norm", norm))
	}

	return amp, nil
}

// applyPhase multiplies amp[x] by exp(−i·γ·C(x)).
func applyPhase(amp []complex128, costs []float64, gamma float64) {
	for x := range amp {
		sin, cos := math.Sincos(-gamma * costs[x])
		amp[x] *= complex(cos, sin)
	}
}

// applyMixer applies exp(−i·β·X_q) for every qubit q.
func (s *Simulator) applyMixer(amp []complex128, n int, beta float64) error {
	sin, cos := math.Sincos(beta)
	c, ms := complex(cos, 0), complex(0, -sin)
	pairs := len(amp) / 2

	parallel := s.workers > 1 && len(amp) >= s.parallelThreshold
	for q := 0; q < n; q++ {
		if !parallel {
			rotatePairs(amp, q, 0, pairs, c, ms)
			continue
		}
		chunk := (pairs + s.workers - 1) / s.workers
		var g errgroup.Group
		g.SetLimit(s.workers)
		for lo := 0; lo < pairs; lo += chunk {
			lo, hi := lo, min(lo+chunk, pairs)
			g.Go(func() error {
				rotatePairs(amp, q, lo, hi, c, ms)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}

// rotatePairs applies the single-qubit X rotation on qubit q to pairs
// k ∈ [lo, hi). Pair k is (x, x|2^q) where x is k with a 0 inserted at bit q,
// so distinct k never touch the same amplitude.
func rotatePairs(amp []complex128, q, lo, hi int, c, ms complex128) {
	bit := 1 << uint(q)
	low := bit - 1
	for k := lo; k < hi; k++ {
		x := ((k &^ low) << 1) | (k & low)
		y := x | bit
		a, b := amp[x], amp[y]
		amp[x] = c*a + ms*b
		amp[y] = ms*a + c*b
	}
}

// normalize rescales amp to unit norm and returns the norm before scaling.
func normalize(amp []complex128) (float64, error) {
	var sum float64
	for _, a := range amp {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) || sum == 0 {
		return sum, fmt.Errorf("norm²=%g: %w", sum, ErrNumericalInstability)
	}
	inv := complex(1/math.Sqrt(sum), 0)
	for x := range amp {
		amp[x] *= inv
	}

	return math.Sqrt(sum), nil
}

// qubits returns log2(size) for a power-of-two size.
func qubits(size int) int {
	n := 0
	for 1<<uint(n) < size {
		n++
	}

	return n
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
