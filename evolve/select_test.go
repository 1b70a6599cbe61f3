package evolve

import (
	"math/rand/v2"
	"testing"

	"github.com/pthm-cable/petri/fitness"
)

func TestSelectShapeAndRange(t *testing.T) {
	scores := []fitness.Fitness{5, 0, 12, 3, 7}
	r := rand.New(rand.NewPCG(1, 0))

	parents, mates := Select(scores, r)
	if len(parents) != len(scores) || len(mates) != len(scores) {
		t.Fatalf("selection lengths = %d, %d, want %d", len(parents), len(mates), len(scores))
	}
	for i := range parents {
		if int(parents[i]) >= len(scores) || int(mates[i]) >= len(scores) {
			t.Fatalf("selection %d out of range", i)
		}
	}
}

func TestSelectEmptyScores(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 0))
	parents, mates := Select([]fitness.Fitness{}, r)
	if len(parents) != 0 || len(mates) != 0 {
		t.Errorf("selection lengths = %d, %d, want 0", len(parents), len(mates))
	}
}

func TestSelectUniformOnDegenerateFitness(t *testing.T) {
	tests := []struct {
		name   string
		scores []fitness.Fitness
	}{
		{"all zero", []fitness.Fitness{0, 0, 0, 0, 0, 0}},
		{"all equal", []fitness.Fitness{9, 9, 9, 9, 9, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(2, 0))
			parents, _ := Select(tt.scores, r)

			// Evenly spaced pointers over equal weights pick every index
			// exactly once.
			counts := make([]int, len(tt.scores))
			for _, p := range parents {
				counts[p]++
			}
			for i, c := range counts {
				if c != 1 {
					t.Errorf("index %d selected %d times, want 1", i, c)
				}
			}
		})
	}
}

func TestSelectBiasTowardDominantFitness(t *testing.T) {
	// One organism orders of magnitude above the rest must win nearly every
	// slot across repeated draws.
	scores := []fitness.Fitness{1, 1, 1000000, 1, 1}
	r := rand.New(rand.NewPCG(3, 0))

	const rounds = 200
	dominant, total := 0, 0
	for i := 0; i < rounds; i++ {
		parents, mates := Select(scores, r)
		for j := range parents {
			if parents[j] == 2 {
				dominant++
			}
			if mates[j] == 2 {
				dominant++
			}
			total += 2
		}
	}

	frac := float64(dominant) / float64(total)
	if frac < 0.99 {
		t.Errorf("dominant organism selected %.3f of the time, want > 0.99", frac)
	}
}

func TestSelectReproducible(t *testing.T) {
	scores := []fitness.Fitness{4, 8, 15, 16, 23, 42}

	p1, m1 := Select(scores, rand.New(rand.NewPCG(7, 0)))
	p2, m2 := Select(scores, rand.New(rand.NewPCG(7, 0)))

	for i := range p1 {
		if p1[i] != p2[i] || m1[i] != m2[i] {
			t.Fatal("identical streams must produce identical selections")
		}
	}
}
