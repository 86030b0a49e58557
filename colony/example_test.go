// SPDX-License-Identifier: MIT
package colony_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/antcolony/colony"
	"github.com/katalvlaran/antcolony/distance"
	"github.com/katalvlaran/antcolony/tour"
)

// ExampleRun solves a symmetric three-city instance, where every tour has the
// same length.
func ExampleRun() {
	d, _ := distance.FromRows([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	cfg := colony.DefaultConfig()
	cfg.Ants = 4
	cfg.Iterations = 5

	rep, err := colony.Run(context.Background(), d, cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("best length:", rep.Best.Length)
	fmt.Println("iterations:", len(rep.Iterations))
	fmt.Println("valid tour:", tour.Validate(rep.Best.Tour, d.N()) == nil)
	// Output:
	// best length: 6
	// iterations: 5
	// valid tour: true
}

// ExampleSimulator_Step drives a run one iteration at a time.
func ExampleSimulator_Step() {
	d, _ := distance.FromRows([][]float64{{0, 3}, {4, 0}})
	cfg := colony.DefaultConfig()
	cfg.Ants = 2
	cfg.Iterations = 2

	sim, _ := colony.New(d, cfg)
	for sim.State() == colony.Running {
		rec, _ := sim.Step(context.Background())
		fmt.Printf("Iteration %d: Best Length = %v\n", rec.Iteration, rec.BestLength)
	}
	fmt.Println(sim.State())
	// Output:
	// Iteration 1: Best Length = 7
	// Iteration 2: Best Length = 7
	// done
}
