package genome

import (
	"math/rand/v2"

	"github.com/pthm-cable/petri/world"
)

// stampFillChance is the probability that a cell of a freshly drawn stamp
// gene starts alive.
const stampFillChance = 0.5

// Random draws a genotype with independent bounded-random genes: scalar
// genes uniform over the full scalar range, stamp cells an even coin flip.
func Random(r *rand.Rand) Genotype {
	var g Genotype
	for i := range g.Scalars {
		g.Scalars[i] = Scalar(r.Uint32())
	}
	for i := range g.Stamps {
		for row := 0; row < world.StampSize; row++ {
			for col := 0; col < world.StampSize; col++ {
				if r.Float64() < stampFillChance {
					g.Stamps[i][row][col] = world.Alive
				}
			}
		}
	}
	return g
}
