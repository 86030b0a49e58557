// SPDX-License-Identifier: MIT

package colony

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/antcolony/distance"
	"github.com/katalvlaran/antcolony/matrix"
	"github.com/katalvlaran/antcolony/pheromone"
	"github.com/katalvlaran/antcolony/tour"
)

// options collects functional overrides for New.
type options struct {
	src      Source
	observer Observer
	warm     *matrix.Dense
}

// Option configures a Simulator.
type Option func(*options)

// WithSource injects the random stream. The default is a *rand.Rand seeded
// from Config.Seed (0 ⇒ a fixed default seed).
func WithSource(src Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithObserver registers a callback invoked after every iteration.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithPheromones starts the run from a copy of m instead of a uniform τ₀ field.
// m must be N×N with finite non-negative cells.
func WithPheromones(m *matrix.Dense) Option {
	return func(o *options) {
		o.warm = m
	}
}

// Simulator drives one ACO run. It is not safe for concurrent use; a single
// goroutine calls Step/Run while worker goroutines (Workers > 1) only read.
type Simulator struct {
	cfg      Config
	dist     *distance.Field
	pher     *pheromone.Field
	cons     *Constructor
	src      Source
	observer Observer

	iter    int // completed iterations
	best    BestSolution
	hasBest bool
	records []IterationRecord
	degen   int
	lengths []float64 // per-ant scratch
	results []antResult
}

// New validates cfg and prepares a run over d.
//
// Errors:
//   - ErrInvalidConfig (wrapped) when cfg.Validate fails.
//   - ErrDimensionMismatch when a warm-start field does not match d.
//   - pheromone sentinels for an invalid warm-start field.
func New(d *distance.Field, cfg Config, opts ...Option) (*Simulator, error) {
	if d == nil {
		return nil, fmt.Errorf("colony.New: nil distance field: %w", ErrDimensionMismatch)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rngFromSeed(cfg.Seed)
	}

	var (
		p   *pheromone.Field
		err error
	)
	if o.warm != nil {
		if p, err = pheromone.FromMatrix(o.warm); err != nil {
			return nil, fmt.Errorf("colony.New: warm start: %w", err)
		}
		if p.N() != d.N() {
			return nil, fmt.Errorf("colony.New: warm start order %d, want %d: %w", p.N(), d.N(), ErrDimensionMismatch)
		}
	} else if p, err = pheromone.New(d.N(), cfg.Tau0); err != nil {
		return nil, fmt.Errorf("colony.New: %w", err)
	}

	cons, err := NewConstructor(d, p, cfg.Alpha, cfg.Beta)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		cfg:      cfg,
		dist:     d,
		pher:     p,
		cons:     cons,
		src:      o.src,
		observer: o.observer,
		records:  make([]IterationRecord, 0, cfg.Iterations),
		lengths:  make([]float64, cfg.Ants),
		results:  make([]antResult, cfg.Ants),
	}, nil
}

// Config returns the validated configuration.
func (s *Simulator) Config() Config { return s.cfg }

// State reports Running while iterations remain, Done afterwards.
func (s *Simulator) State() State {
	if s.iter >= s.cfg.Iterations {
		return Done
	}

	return Running
}

// Iteration returns the number of completed iterations.
func (s *Simulator) Iteration() int { return s.iter }

// Best returns a copy of the best solution and whether one exists yet.
func (s *Simulator) Best() (BestSolution, bool) {
	b := s.best
	b.Tour = b.Tour.Clone()

	return b, s.hasBest
}

// Pheromones returns a snapshot of the current pheromone field.
func (s *Simulator) Pheromones() *matrix.Dense { return s.pher.Snapshot() }

// Step runs exactly one iteration: construct M tours, update the best solution,
// evaporate, deposit 1/L per ant on every traversed directed edge, then notify
// the observer.
//
// Errors:
//   - ErrDone once the budget is spent.
//   - ctx.Err() when ctx is already cancelled (no state change).
//   - *SelectionError (ErrSelectionInvariant); the simulator is left in an
//     undefined state and must not be stepped again.
func (s *Simulator) Step(ctx context.Context) (IterationRecord, error) {
	if s.State() == Done {
		return IterationRecord{}, ErrDone
	}
	if err := ctx.Err(); err != nil {
		return IterationRecord{}, err
	}

	// 1. Construction against the frozen field.
	if s.cfg.Workers > 1 {
		s.constructParallel(s.results)
	} else {
		s.constructSequential(s.results)
	}
	rec := IterationRecord{Iteration: s.iter + 1}
	var k int
	for k = range s.results {
		if err := s.results[k].err; err != nil {
			return IterationRecord{}, fmt.Errorf("colony: iteration %d ant %d: %w", rec.Iteration, k, err)
		}
		s.lengths[k] = tour.Length(s.dist, s.results[k].tour)
		rec.Degenerate += s.results[k].degenerate
	}

	// 2. Best-so-far, strict improvement only, ants in index order.
	for k = range s.results {
		if !s.hasBest || s.lengths[k] < s.best.Length {
			s.best = BestSolution{Tour: s.results[k].tour.Clone(), Length: s.lengths[k], Iteration: rec.Iteration}
			s.hasBest = true
			rec.Improved = true
		}
	}

	// 3. Pheromone update, then rebuild the attraction table.
	if err := s.update(); err != nil {
		return IterationRecord{}, fmt.Errorf("colony: iteration %d: %w", rec.Iteration, err)
	}

	// 4. Record and notify.
	rec.BestLength = s.best.Length
	lengthStats(&rec, s.lengths)
	s.degen += rec.Degenerate
	s.records = append(s.records, rec)
	s.iter++
	if s.observer != nil {
		s.observer.OnIteration(rec)
	}

	return rec, nil
}

// update applies evaporation and per-ant deposits, then refreshes the
// constructor's attraction table.
func (s *Simulator) update() error {
	if err := s.pher.Evaporate(s.cfg.Rho); err != nil {
		return err
	}
	var k int
	for k = range s.results {
		if err := s.pher.DepositTour(s.results[k].tour, 1/s.lengths[k]); err != nil {
			return err
		}
	}

	return s.cons.Refresh(s.pher)
}

// Run steps until the budget is spent or ctx is cancelled, and returns the
// report. On cancellation the partial report (Completed == false) is returned
// together with ctx.Err(). On a selection invariant violation the report
// covers the iterations completed before it.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	started := time.Now()
	var err error
	for s.State() == Running {
		if _, err = s.Step(ctx); err != nil {
			break
		}
	}

	rep := s.report()
	rep.Elapsed = time.Since(started)

	return rep, err
}

// report assembles a Report from the current state.
func (s *Simulator) report() *Report {
	best, _ := s.Best()
	recs := make([]IterationRecord, len(s.records))
	copy(recs, s.records)

	return &Report{
		Cities:     s.dist.N(),
		Ants:       s.cfg.Ants,
		Best:       best,
		Iterations: recs,
		Degenerate: s.degen,
		Completed:  s.State() == Done,
	}
}

// Run is a convenience wrapper: New followed by Simulator.Run.
func Run(ctx context.Context, d *distance.Field, cfg Config, opts ...Option) (*Report, error) {
	s, err := New(d, cfg, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run(ctx)
}
