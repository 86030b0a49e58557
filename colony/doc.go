// SPDX-License-Identifier: MIT

// Package colony runs Ant Colony Optimization over a distance.Field.
//
// What & Why:
//
//	A Simulator owns one run: per iteration it lets every ant build a complete
//	tour, tracks the best tour seen so far, then evaporates and reinforces the
//	shared pheromone.Field. Tour construction reads a frozen snapshot of the
//	field; the update is applied by a single writer afterwards.
//
// City selection (ant at city c, visited set V):
//
//	a_i = τ[c][i]^α · (1/d[c][i])^β            for every i ∉ V
//	r   ~ U[0, Σ a_i)
//	next = first i ∉ V (ascending) whose running Σ a_i ≥ r
//
// When Σ a_i is zero or not finite the ant picks uniformly among unvisited
// cities instead. Such a step is a degenerate selection; it is counted in the
// IterationRecord and never surfaces as an error. A selection that walks every
// candidate without choosing returns *SelectionError (ErrSelectionInvariant),
// which aborts the run.
//
// Update after each iteration:
//
//	τ ← (1-ρ)·τ, then for every ant k and each directed edge (i,j) of its
//	closed tour: τ[i][j] += 1/L_k.
//
// Determinism:
//
//	With Workers == 1 all randomness is drawn from the injected Source in a
//	fixed order (per ant: start city, then one draw per step), so a fixed seed
//	reproduces a run bit for bit. With Workers > 1 each ant gets its own stream
//	derived from the Source before the iteration starts and results are merged
//	by ant index, so the outcome does not depend on how many workers run.
//
// Complexity: O(M·N²) per iteration for M ants and N cities; O(N²) memory.
package colony
