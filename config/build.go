// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvqaoa/logger"
	"github.com/katalvlaran/lvqaoa/optimize"
	"github.com/katalvlaran/lvqaoa/qaoa"
	"github.com/katalvlaran/lvqaoa/schedule"
)

// Logger returns a JSON logger at the configured level writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return logger.New(c.LogLevel, w)
}

// SimulatorOptions converts the simulator section into qaoa options.
// The config must have passed validation.
func (c *Config) SimulatorOptions() []qaoa.Option {
	return []qaoa.Option{
		qaoa.WithMaxQubits(c.Simulator.MaxQubits),
		qaoa.WithMemoryBudget(c.Simulator.MemoryBudgetMB << 20),
		qaoa.WithWorkers(c.Simulator.Workers),
		qaoa.WithGradientStep(c.Simulator.GradientStep),
	}
}

// OptimizerOptions converts the optimizer section into optimize.Options.
// The config must have passed validation.
func (c *Config) OptimizerOptions() optimize.Options {
	method, _ := optimize.ParseMethod(c.Optimizer.Method)
	sense, _ := optimize.ParseSense(c.Optimizer.Sense)

	opts := optimize.DefaultOptions()
	opts.Method = method
	opts.Sense = sense
	opts.LearningRate = c.Optimizer.LearningRate
	opts.MaxIterations = c.Optimizer.MaxIterations
	opts.Tolerance = c.Optimizer.Tolerance
	opts.SimplexStep = c.Optimizer.SimplexStep

	return opts
}

// Schedule builds the annealing schedule of the schedule section.
func (c *Config) Schedule() (schedule.Schedule, error) {
	return schedule.Build(c.Annealing.P, c.Annealing.Tau)
}

// StartPoints returns Restarts initial parameter vectors for
// qaoa.Simulator.OptimizeMultiStart. The first entry is nil (seeded from
// the annealing schedule); the rest draw γ from [0, π) and β from
// [0, π/2) with the given seed.
func (c *Config) StartPoints(seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	p := c.Annealing.P
	starts := make([][]float64, c.Optimizer.Restarts)
	for r := 1; r < len(starts); r++ {
		x := make([]float64, 2*p)
		for k := 0; k < p; k++ {
			x[k] = math.Pi * rng.Float64()
			x[p+k] = math.Pi / 2 * rng.Float64()
		}
		starts[r] = x
	}

	return starts
}
