// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/lvqaoa/optimize"
	"github.com/katalvlaran/lvqaoa/qaoa"
)

// Defaults for keys absent from the YAML document.
const (
	DefaultLogLevel = "info"
	DefaultRestarts = 1
	DefaultP        = 1
	DefaultTau      = qaoa.DefaultInitialTau
)

// Default returns the configuration used when no file is given. MaxCut is
// a maximization, so the default sense is maximize.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Simulator: SimulatorConfig{
			MaxQubits:      qaoa.DefaultMaxQubits,
			MemoryBudgetMB: qaoa.DefaultMemoryBudget >> 20,
			Workers:        qaoa.DefaultWorkers,
			GradientStep:   qaoa.DefaultGradientStep,
		},
		Optimizer: OptimizerConfig{
			Method:        optimize.MethodGradient.String(),
			Sense:         optimize.Maximize.String(),
			LearningRate:  optimize.DefaultLearningRate,
			MaxIterations: optimize.DefaultMaxIterations,
			Tolerance:     optimize.DefaultTolerance,
			SimplexStep:   optimize.DefaultSimplexStep,
			Restarts:      DefaultRestarts,
		},
		Annealing: ScheduleConfig{P: DefaultP, Tau: DefaultTau},
	}
}
