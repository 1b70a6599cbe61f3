package evolve

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/petri/fitness"
)

// Select converts one trial population's fitness scores into parent and mate
// index assignments, each drawn by fitness-biased stochastic sampling.
// Weights are Laplace-smoothed (fitness + 1), so the weakest organism keeps
// a nonzero probability and degenerate inputs (all equal, all zero) collapse
// to uniform sampling. Draws consume the supplied generator in a fixed
// order, so results are reproducible for a fixed stream. An empty population
// yields empty selections without consuming the generator.
func Select(scores []fitness.Fitness, r *rand.Rand) (parents, mates []uint32) {
	if len(scores) == 0 {
		return []uint32{}, []uint32{}
	}
	parents = susSample(scores, r)
	mates = susSample(scores, r)
	return parents, mates
}

// susSample runs one pass of stochastic universal sampling: n evenly spaced
// pointers over the cumulative fitness wheel, started at a single random
// offset, then shuffled to remove positional bias.
func susSample(scores []fitness.Fitness, r *rand.Rand) []uint32 {
	n := len(scores)
	weights := make([]float64, n)
	for i, s := range scores {
		weights[i] = float64(s) + 1
	}
	wheel := make([]float64, n)
	floats.CumSum(wheel, weights)
	total := wheel[n-1]

	spacing := total / float64(n)
	start := r.Float64() * spacing

	picks := make([]uint32, n)
	j := 0
	for i := 0; i < n; i++ {
		pointer := start + float64(i)*spacing
		for j < n-1 && wheel[j] <= pointer {
			j++
		}
		picks[i] = uint32(j)
	}
	r.Shuffle(n, func(a, b int) {
		picks[a], picks[b] = picks[b], picks[a]
	})
	return picks
}
