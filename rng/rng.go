// Package rng provides the deterministic random streams behind every
// stochastic operator. A Stream is a seed, not a generator: callers derive
// independent sub-streams from it by index, so parallel workers never share
// generator state and a fixed seed reproduces bit-identical results
// regardless of worker count or scheduling order.
package rng

import "math/rand/v2"

// Stream is a seedable source of index-derived random sub-streams.
type Stream struct {
	seed uint64
}

// New returns a stream rooted at the given seed.
func New(seed uint64) *Stream {
	return &Stream{seed: seed}
}

// Reseed rebases the stream. All sub-streams derived afterwards depend only
// on the new seed.
func (s *Stream) Reseed(seed uint64) {
	s.seed = seed
}

// Sub derives the generator assigned to the given index path. The same seed
// and tags always produce the same generator; distinct tag paths produce
// statistically independent ones.
func (s *Stream) Sub(tags ...uint64) *rand.Rand {
	h := splitmix64(s.seed)
	for _, t := range tags {
		h = splitmix64(h ^ t)
	}
	return rand.New(rand.NewPCG(h, splitmix64(h)))
}

// splitmix64 is the SplitMix64 finalizer, used to spread tag bits before
// seeding PCG.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
