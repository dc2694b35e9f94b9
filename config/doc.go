// SPDX-License-Identifier: MIT

// Package config loads a YAML run configuration and converts it into the
// typed options of the qaoa, optimize and schedule packages.
//
//	log_level: info
//	simulator: {max_qubits: 20, memory_budget_mb: 512, workers: 4, gradient_step: 1e-6}
//	optimizer: {method: gradient, sense: maximize, learning_rate: 0.05,
//	            max_iterations: 500, tolerance: 1e-10, simplex_step: 0.1, restarts: 4}
//	schedule: {p: 3, tau: 1.5}
//
// Missing keys take the values of Default(); unknown keys are rejected.
package config
