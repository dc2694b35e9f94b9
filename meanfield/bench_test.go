// SPDX-License-Identifier: MIT

package meanfield_test

import (
	"testing"

	"github.com/katalvlaran/lvqaoa/builder"
	"github.com/katalvlaran/lvqaoa/ising"
	"github.com/katalvlaran/lvqaoa/meanfield"
	"github.com/katalvlaran/lvqaoa/schedule"
)

func benchmarkEvolve(b *testing.B, n, p int) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(n, 0.3))
	if err != nil {
		b.Fatal(err)
	}
	model, _, err := ising.FromGraph(g)
	if err != nil {
		b.Fatal(err)
	}
	s, err := schedule.Build(p, 0.1*float64(p))
	if err != nil {
		b.Fatal(err)
	}
	initial := meanfield.UniformX(model.N() - 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := meanfield.EvolveModel(initial, model, s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvolve_N20_P100(b *testing.B)  { benchmarkEvolve(b, 20, 100) }
func BenchmarkEvolve_N100_P100(b *testing.B) { benchmarkEvolve(b, 100, 100) }
