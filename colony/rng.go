// SPDX-License-Identifier: MIT

// Package colony - random streams.
//
// All randomness flows through a Source passed in by the caller (or built
// from Config.Seed); nothing here reads the clock or a global generator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Source is only used by the
//     goroutine driving the Simulator; workers receive derived streams.
package colony

import "math/rand"

// Source is the random stream a colony consumes. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform int in [0, n). Used for start cities and the
	// degenerate fallback.
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1). Used for roulette draws.
	Float64() float64
	// Int63 returns a non-negative int64. Used to derive per-ant streams.
	Int63() int64
}

var _ Source = (*rand.Rand)(nil)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier with a SplitMix64
// finalizer, so neighbouring ant indices yield uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG consumes one Int63 from base and returns an independent stream
// for the given identifier. If base==nil, defaultRNGSeed is the parent.
// Call from the driving goroutine only, before workers start.
//
// Complexity: O(1).
func deriveRNG(base Source, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
