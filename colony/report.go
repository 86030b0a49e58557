// SPDX-License-Identifier: MIT

package colony

import (
	"time"

	"github.com/katalvlaran/antcolony/tour"
)

// State is the simulator lifecycle.
type State int

const (
	// Running means iterations remain in the budget.
	Running State = iota
	// Done means the budget is spent; Step returns ErrDone.
	Done
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Done {
		return "done"
	}

	return "running"
}

// BestSolution is the shortest tour seen so far.
// Length never increases over a run; a tie does not replace the stored tour.
type BestSolution struct {
	Tour      tour.Tour
	Length    float64
	Iteration int // 1-based iteration that produced it
}

// IterationRecord summarises one finished iteration.
type IterationRecord struct {
	Iteration     int     // 1-based
	BestLength    float64 // best-so-far length after this iteration
	IterationBest float64 // shortest tour of this iteration
	Mean          float64 // mean ant tour length
	StdDev        float64 // sample standard deviation; 0 for a single ant
	Worst         float64 // longest tour of this iteration
	Degenerate    int     // degenerate selections made by all ants
	Improved      bool    // BestLength dropped in this iteration
}

// Report is the outcome of Run: the best solution and every iteration record.
type Report struct {
	Cities     int
	Ants       int
	Best       BestSolution
	Iterations []IterationRecord
	Degenerate int           // total over all iterations
	Elapsed    time.Duration // wall time spent in Run
	Completed  bool          // false when Run stopped early (cancellation)
}

// Observer receives each IterationRecord as soon as the iteration completes.
// It is called from the goroutine driving the Simulator.
type Observer interface {
	OnIteration(rec IterationRecord)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(rec IterationRecord)

// OnIteration implements Observer.
func (f ObserverFunc) OnIteration(rec IterationRecord) { f(rec) }
