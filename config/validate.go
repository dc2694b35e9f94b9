// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/logger"
	"github.com/katalvlaran/lvqaoa/optimize"
)

// validateConfig performs validation on the configuration.
func validateConfig(cfg *Config) error {
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}
	if err := validateSimulator(&cfg.Simulator); err != nil {
		return fmt.Errorf("simulator validation failed: %w", err)
	}
	if err := validateOptimizer(&cfg.Optimizer); err != nil {
		return fmt.Errorf("optimizer validation failed: %w", err)
	}
	if err := validateSchedule(&cfg.Annealing); err != nil {
		return fmt.Errorf("schedule validation failed: %w", err)
	}

	return nil
}

func validateSimulator(s *SimulatorConfig) error {
	if s.MaxQubits < 1 || s.MaxQubits > ising.MaxTableQubits {
		return fmt.Errorf("max_qubits must be between 1 and %d, got %d", ising.MaxTableQubits, s.MaxQubits)
	}
	if s.MemoryBudgetMB == 0 {
		return fmt.Errorf("memory_budget_mb must be positive")
	}
	if s.MemoryBudgetMB > math.MaxUint64>>20 {
		return fmt.Errorf("memory_budget_mb %d overflows", s.MemoryBudgetMB)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", s.Workers)
	}
	if !positive(s.GradientStep) {
		return fmt.Errorf("gradient_step must be finite and positive, got %g", s.GradientStep)
	}

	return nil
}

func validateOptimizer(o *OptimizerConfig) error {
	if _, err := optimize.ParseMethod(o.Method); err != nil {
		return fmt.Errorf("invalid method: %s (must be gradient or derivative_free)", o.Method)
	}
	if _, err := optimize.ParseSense(o.Sense); err != nil {
		return fmt.Errorf("invalid sense: %s (must be minimize or maximize)", o.Sense)
	}
	if !positive(o.LearningRate) {
		return fmt.Errorf("learning_rate must be finite and positive, got %g", o.LearningRate)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", o.MaxIterations)
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return fmt.Errorf("tolerance must be finite and non-negative, got %g", o.Tolerance)
	}
	if !positive(o.SimplexStep) {
		return fmt.Errorf("simplex_step must be finite and positive, got %g", o.SimplexStep)
	}
	if o.Restarts < 1 {
		return fmt.Errorf("restarts must be positive, got %d", o.Restarts)
	}

	return nil
}

func validateSchedule(s *ScheduleConfig) error {
	if s.P < 1 {
		return fmt.Errorf("p must be positive, got %d", s.P)
	}
	if !positive(s.Tau) {
		return fmt.Errorf("tau must be finite and positive, got %g", s.Tau)
	}

	return nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
