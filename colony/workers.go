// SPDX-License-Identifier: MIT

package colony

import (
	"sync"

	"github.com/katalvlaran/antcolony/tour"
)

// antResult is one ant's contribution to an iteration.
type antResult struct {
	tour       tour.Tour
	degenerate int
	err        error
}

// constructSequential lets every ant draw from the shared source in ant order.
func (s *Simulator) constructSequential(out []antResult) {
	var k int
	for k = range out {
		out[k].tour, out[k].degenerate, out[k].err = s.cons.Construct(s.src)
		if out[k].err != nil {
			return
		}
	}
}

// constructParallel derives one stream per ant from the shared source (in ant
// order, before any goroutine starts), then fans ants out over s.cfg.Workers
// goroutines. Each result lands at its ant index, so the merge order is fixed.
func (s *Simulator) constructParallel(out []antResult) {
	streams := make([]Source, len(out))
	var k int
	for k = range streams {
		streams[k] = deriveRNG(s.src, uint64(k))
	}

	workers := s.cfg.Workers
	if workers > len(out) {
		workers = len(out)
	}
	jobs := make(chan int, len(out))
	for k = range out {
		jobs <- k
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for ant := range jobs {
				out[ant].tour, out[ant].degenerate, out[ant].err = s.cons.Construct(streams[ant])
			}
		}()
	}
	wg.Wait()
}
