// Package rng is the only source of randomness for the engines and the
// city generator. Every generator is built from an explicit seed, so a run
// replays bit for bit given the same seed and grid.
//
// A *rand.Rand must stay on one goroutine. Parallel ants each get a child
// from Derive.
package rng

import "math/rand"

// DefaultSeed replaces a zero seed.
const DefaultSeed int64 = 1

// FromSeed returns a generator seeded with seed, or DefaultSeed when seed is 0.
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// mixSeed folds a stream id into a parent seed with the SplitMix64 finalizer.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive returns a child generator for one worker, such as a single ant in
// one colony iteration. The child seed is one Int63 drawn from base, mixed
// with stream, so the ant colony can hand every ant its own generator and
// still replay the run exactly. A nil base uses DefaultSeed as the parent.
//
// Each call advances base. Children must therefore be derived in a fixed
// order, before any of them is handed to a goroutine.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// Pick draws a uniform index in [0,n). It panics when n ≤ 0, like Intn.
// Used for peer choice in the slime swarm, exploratory Q-learning moves,
// city carving and the Roulette fallback.
func Pick(r *rand.Rand, n int) int {
	return r.Intn(n)
}

// Roulette performs a weighted draw over weights and returns the chosen index.
// The weights need not be normalized. When the total weight is not strictly
// positive (all zero or underflowed), it falls back to a uniform draw.
// Returns -1 for an empty slice.
//
// Complexity: O(n).
func Roulette(r *rand.Rand, weights []float64) int {
	n := len(weights)
	if n == 0 {
		return -1
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if !(total > 0) {
		return Pick(r, n)
	}

	target := r.Float64() * total
	var acc float64
	for i, w := range weights {
		acc += w
		if target < acc {
			return i
		}
	}
	// FP rounding may leave target == total; pick the last positive weight.
	for i := n - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return n - 1
}
