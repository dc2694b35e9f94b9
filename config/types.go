// SPDX-License-Identifier: MIT

package config

// Config is a QAOA run configuration.
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Annealing ScheduleConfig  `yaml:"schedule"`
}

// SimulatorConfig maps onto qaoa.Option values.
type SimulatorConfig struct {
	MaxQubits      int     `yaml:"max_qubits"`
	MemoryBudgetMB uint64  `yaml:"memory_budget_mb"`
	Workers        int     `yaml:"workers"`
	GradientStep   float64 `yaml:"gradient_step"`
}

// OptimizerConfig maps onto optimize.Options.
type OptimizerConfig struct {
	Method        string  `yaml:"method"`
	Sense         string  `yaml:"sense"`
	LearningRate  float64 `yaml:"learning_rate"`
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
	SimplexStep   float64 `yaml:"simplex_step"`
	Restarts      int     `yaml:"restarts"`
}

// ScheduleConfig is the circuit depth and annealing time.
type ScheduleConfig struct {
	P   int     `yaml:"p"`
	Tau float64 `yaml:"tau"`
}
