package evolve

import (
	"fmt"
	"math/rand/v2"

	"github.com/pthm-cable/petri/genome"
	"github.com/pthm-cable/petri/rng"
	"github.com/pthm-cable/petri/world"
)

const (
	// CrossoverRate is the per-gene probability that a child gene comes from
	// the mate instead of the parent.
	CrossoverRate = 0.6

	// MutationRate is the per-gene (per-cell, for stamp genes) probability
	// of a random perturbation after crossover.
	MutationRate = 0.001
)

// Breeder holds the reproduction rates. The simulator always breeds at the
// exported constants; tools may construct breeders with other rates.
type Breeder struct {
	CrossoverRate float64
	MutationRate  float64
}

// DefaultBreeder returns a breeder at the exported rates.
func DefaultBreeder() Breeder {
	return Breeder{CrossoverRate: CrossoverRate, MutationRate: MutationRate}
}

// Child produces one offspring genotype. Crossover is uniform and
// independent per gene: with probability CrossoverRate the gene comes from
// alt, otherwise from base; stamp genes cross as whole stamps. Mutation then
// re-draws scalar genes and flips individual stamp cells at MutationRate.
func (b Breeder) Child(base, alt *genome.Genotype, r *rand.Rand) genome.Genotype {
	child := *base
	for i := range child.Scalars {
		if r.Float64() < b.CrossoverRate {
			child.Scalars[i] = alt.Scalars[i]
		}
		if r.Float64() < b.MutationRate {
			child.Scalars[i] = genome.Scalar(r.Uint32())
		}
	}
	for i := range child.Stamps {
		if r.Float64() < b.CrossoverRate {
			child.Stamps[i] = alt.Stamps[i]
		}
		for row := 0; row < world.StampSize; row++ {
			for col := 0; col < world.StampSize; col++ {
				if r.Float64() < b.MutationRate {
					if child.Stamps[i][row][col] == world.Alive {
						child.Stamps[i][row][col] = world.Dead
					} else {
						child.Stamps[i][row][col] = world.Alive
					}
				}
			}
		}
	}
	return child
}

// BreedPopulation produces a next-generation population of the same length:
// output slot i is bred from genotypes[parents[i]] and genotypes[mates[i]]
// at the default rates. Each child draws from its own index-assigned
// sub-stream of the supplied stream. Selections that do not match the
// population shape are rejected before any work.
func BreedPopulation(genotypes []genome.Genotype, parents, mates []uint32, stream *rng.Stream) ([]genome.Genotype, error) {
	n := len(genotypes)
	if len(parents) != n || len(mates) != n {
		return nil, fmt.Errorf("%w: %d genotypes with %d parent and %d mate selections",
			ErrShape, n, len(parents), len(mates))
	}
	for i := 0; i < n; i++ {
		if int(parents[i]) >= n || int(mates[i]) >= n {
			return nil, fmt.Errorf("%w: selection %d references genotype out of range", ErrShape, i)
		}
	}

	b := DefaultBreeder()
	next := make([]genome.Genotype, n)
	for i := range next {
		r := stream.Sub(uint64(i))
		next[i] = b.Child(&genotypes[parents[i]], &genotypes[mates[i]], r)
	}
	return next, nil
}
