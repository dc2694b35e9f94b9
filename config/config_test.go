// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqaoa/builder"
	"github.com/katalvlaran/lvqaoa/config"
	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/optimize"
	"github.com/katalvlaran/lvqaoa/qaoa"
)

const fullYAML = `
log_level: debug
simulator:
  max_qubits: 20
  memory_budget_mb: 512
  workers: 4
  gradient_step: 1e-5
optimizer:
  method: derivative_free
  sense: maximize
  learning_rate: 0.1
  max_iterations: 300
  tolerance: 1e-10
  simplex_step: 0.2
  restarts: 4
schedule:
  p: 3
  tau: 1.5
`

func TestParseConfigYAMLString(t *testing.T) {
	cfg, err := config.ParseConfigYAMLString(fullYAML)
	require.NoError(t, err)

	want := &config.Config{
		LogLevel:  "debug",
		Simulator: config.SimulatorConfig{MaxQubits: 20, MemoryBudgetMB: 512, Workers: 4, GradientStep: 1e-5},
		Optimizer: config.OptimizerConfig{
			Method: "derivative_free", Sense: "maximize", LearningRate: 0.1,
			MaxIterations: 300, Tolerance: 1e-10, SimplexStep: 0.2, Restarts: 4,
		},
		Annealing: config.ScheduleConfig{P: 3, Tau: 1.5},
	}
	assert.Equal(t, want, cfg)
}

func TestParseConfigYAML_DefaultsFillMissingKeys(t *testing.T) {
	cfg, err := config.ParseConfigYAMLString("schedule: {p: 2}\n")
	require.NoError(t, err)

	want := config.Default()
	want.Annealing.P = 2
	assert.Equal(t, want, cfg)

	empty, err := config.ParseConfigYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), empty)
}

func TestConfig_RoundTrip(t *testing.T) {
	cfg, err := config.ParseConfigYAMLString(fullYAML)
	require.NoError(t, err)

	out, err := cfg.Marshal()
	require.NoError(t, err)
	again, err := config.ParseConfigYAML(out)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestParseConfigYAMLStringInvalid(t *testing.T) {
	tests := []struct {
		name     string
		yamlText string
	}{
		{"bad log level", "log_level: verbose"},
		{"unknown key", "simulator: {qubits: 4}"},
		{"malformed", "simulator: ["},
		{"max qubits too large", "simulator: {max_qubits: 31}"},
		{"max qubits zero", "simulator: {max_qubits: 0}"},
		{"zero budget", "simulator: {memory_budget_mb: 0}"},
		{"zero workers", "simulator: {workers: 0}"},
		{"negative gradient step", "simulator: {gradient_step: -1}"},
		{"unknown method", "optimizer: {method: newton}"},
		{"unknown sense", "optimizer: {sense: sideways}"},
		{"zero learning rate", "optimizer: {learning_rate: 0}"},
		{"zero iterations", "optimizer: {max_iterations: 0}"},
		{"negative tolerance", "optimizer: {tolerance: -1}"},
		{"zero simplex step", "optimizer: {simplex_step: 0}"},
		{"zero restarts", "optimizer: {restarts: 0}"},
		{"zero depth", "schedule: {p: 0}"},
		{"infinite tau", "schedule: {tau: .inf}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.ParseConfigYAMLString(tc.yamlText)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullYAML), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Annealing.P)

	_, err = config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfig_Conversions(t *testing.T) {
	cfg, err := config.ParseConfigYAMLString(fullYAML)
	require.NoError(t, err)

	sim := qaoa.NewSimulator(cfg.SimulatorOptions()...)
	assert.Equal(t, 20, sim.MaxQubits())
	assert.Equal(t, 4, sim.Workers())
	require.NoError(t, sim.CheckResources(20))

	opts := cfg.OptimizerOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, optimize.MethodDerivativeFree, opts.Method)
	assert.Equal(t, optimize.Maximize, opts.Sense)
	assert.Equal(t, 0.1, opts.LearningRate)
	assert.Equal(t, 300, opts.MaxIterations)
	assert.Equal(t, 1e-10, opts.Tolerance)
	assert.Equal(t, 0.2, opts.SimplexStep)

	s, err := cfg.Schedule()
	require.NoError(t, err)
	assert.Equal(t, 3, s.P())
	assert.Equal(t, 1.5, s.Tau())

	starts := cfg.StartPoints(1)
	require.Len(t, starts, 4)
	assert.Nil(t, starts[0])
	for _, x := range starts[1:] {
		assert.Len(t, x, 6)
	}
	assert.Equal(t, starts, cfg.StartPoints(1))

	var buf bytes.Buffer
	cfg.Logger(&buf).Debug("probe")
	assert.Contains(t, buf.String(), `"msg":"probe"`)
}

func TestConfig_DrivesRingOptimization(t *testing.T) {
	cfg, err := config.ParseConfigYAMLString(`
optimizer: {tolerance: 1e-12, restarts: 3}
schedule: {p: 1}
`)
	require.NoError(t, err)

	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	model, _, err := ising.FromGraph(g)
	require.NoError(t, err)

	sim := qaoa.NewSimulator(cfg.SimulatorOptions()...)
	res, err := sim.OptimizeMultiStart(context.Background(), model, cfg.Annealing.P,
		cfg.StartPoints(7), cfg.OptimizerOptions(), 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.Cost+model.Offset(), 1e-4)
}
