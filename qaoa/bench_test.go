// SPDX-License-Identifier: MIT

package qaoa_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/qaoa"
)

func benchModel(b *testing.B, n int) *ising.Model {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.3 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	m, err := ising.FromMaxCutEdges(n, edges)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func benchmarkRun(b *testing.B, sim *qaoa.Simulator, n int) {
	model := benchModel(b, n)
	gamma := []float64{0.3, 0.5, 0.7}
	beta := []float64{0.6, 0.4, 0.2}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sim.Run(model, gamma, beta); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_N14_Serial(b *testing.B) { benchmarkRun(b, qaoa.NewSimulator(), 14) }

func BenchmarkRun_N14_Parallel4(b *testing.B) {
	benchmarkRun(b, qaoa.NewSimulator(qaoa.WithWorkers(4)), 14)
}

func BenchmarkRun_N18_Parallel4(b *testing.B) {
	benchmarkRun(b, qaoa.NewSimulator(qaoa.WithWorkers(4)), 18)
}
