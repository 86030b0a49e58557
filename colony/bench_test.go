// SPDX-License-Identifier: MIT
package colony_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/pheromone"
)

func BenchmarkConstruct100(b *testing.B) {
	d := mustRandomField(b, 100, 1)
	p, _ := pheromone.New(100, 1)
	c, err := colony.NewConstructor(d, p, 1, 5)
	if err != nil {
		b.Fatal(err)
	}
	src := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = c.Construct(src); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkStep(b *testing.B, workers int) {
	d := mustRandomField(b, 100, 1)
	cfg := colony.DefaultConfig()
	cfg.Ants = 20
	cfg.Iterations = b.N
	cfg.Workers = workers
	sim, err := colony.New(d, cfg)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sim.Step(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStepSequential(b *testing.B) { benchmarkStep(b, 1) }
func BenchmarkStepWorkers4(b *testing.B)   { benchmarkStep(b, 4) }
