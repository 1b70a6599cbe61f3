// Package evolve drives populations of Game-of-Life seed patterns through
// generations of render, simulate, score, select, and breed. The Simulator
// owns the [species x trial x organism] population, one phenotype program
// per species, and the random stream; everything else in the module is a
// pure function it composes.
package evolve

import (
	"fmt"

	"github.com/pthm-cable/petri/fitness"
	"github.com/pthm-cable/petri/genome"
	"github.com/pthm-cable/petri/life"
	"github.com/pthm-cable/petri/phenotype"
	"github.com/pthm-cable/petri/rng"
	"github.com/pthm-cable/petri/world"
)

// defaultSeed is the stream seed of a freshly constructed simulator, before
// any explicit Seed call.
const defaultSeed = 42

// Sub-stream role tags, combined with the phase counter and flat indices so
// no two stochastic draws in a run share a generator.
const (
	tagInit uint64 = iota
	tagSelect
	tagBreed
)

// Simulator is the population controller. It is not safe for concurrent
// use: write access to the population and fitness arrays is exclusive to
// the orchestrator between calls, and accessors return snapshots.
type Simulator struct {
	NumSpecies   int
	NumTrials    int
	NumOrganisms int

	programs  []genome.PhenotypeProgram
	genotypes []genome.Genotype // flat, species-major
	scores    []fitness.Fitness
	finals    []world.Frame

	stream  *rng.Stream
	phase   uint64
	breeder Breeder
	pool    *workerPool
}

// NewSimulator allocates population storage for the given axis sizes and
// default-seeds the random stream. Axis sizes must be positive.
func NewSimulator(numSpecies, numTrials, numOrganisms int) *Simulator {
	if numSpecies <= 0 || numTrials <= 0 || numOrganisms <= 0 {
		panic(fmt.Sprintf("evolve: population axes must be positive, got %dx%dx%d",
			numSpecies, numTrials, numOrganisms))
	}
	total := numSpecies * numTrials * numOrganisms
	return &Simulator{
		NumSpecies:   numSpecies,
		NumTrials:    numTrials,
		NumOrganisms: numOrganisms,
		programs:     make([]genome.PhenotypeProgram, numSpecies),
		genotypes:    make([]genome.Genotype, total),
		scores:       make([]fitness.Fitness, total),
		finals:       make([]world.Frame, total),
		stream:       rng.New(defaultSeed),
		breeder:      DefaultBreeder(),
		pool:         newWorkerPool(),
	}
}

// Close stops the worker pool. The simulator must not be used afterwards.
func (s *Simulator) Close() {
	s.pool.stop()
}

// SetBreeder replaces the reproduction rates for subsequent Propagate calls.
// The default is DefaultBreeder; tools use this to sweep rates.
func (s *Simulator) SetBreeder(b Breeder) {
	s.breeder = b
}

// Seed deterministically reseeds the random stream. All later stochastic
// operations depend only on the new seed and their draw order.
func (s *Simulator) Seed(value uint64) {
	s.stream.Reseed(value)
	s.phase = 0
}

func (s *Simulator) total() int {
	return s.NumSpecies * s.NumTrials * s.NumOrganisms
}

// speciesOf maps a flat organism index to its species.
func (s *Simulator) speciesOf(i int) int {
	return i / (s.NumTrials * s.NumOrganisms)
}

// Populate stores one program per species and (re)initializes every
// organism's genotype with independent bounded-random genes. Fitness is
// cleared. Programs are validated before any state changes.
func (s *Simulator) Populate(programs []genome.PhenotypeProgram) error {
	if len(programs) != s.NumSpecies {
		return fmt.Errorf("%w: got %d programs for %d species",
			ErrShape, len(programs), s.NumSpecies)
	}
	for i := range programs {
		if err := genome.Validate(&programs[i]); err != nil {
			return fmt.Errorf("species %d: %w", i, err)
		}
	}

	copy(s.programs, programs)
	s.phase++
	for i := range s.genotypes {
		s.genotypes[i] = genome.Random(s.stream.Sub(s.phase, tagInit, uint64(i)))
	}
	for i := range s.scores {
		s.scores[i] = 0
	}
	return nil
}

// Propagate runs selection and reproduction per (species, trial) group
// against the current fitness, replacing the genotypes in place. It neither
// renders nor simulates.
func (s *Simulator) Propagate() {
	s.phase++
	next := make([]genome.Genotype, s.total())
	group := 0
	for sp := 0; sp < s.NumSpecies; sp++ {
		for tr := 0; tr < s.NumTrials; tr++ {
			off := group * s.NumOrganisms
			parents, mates := Select(
				s.scores[off:off+s.NumOrganisms],
				s.stream.Sub(s.phase, tagSelect, uint64(group)))
			for i := 0; i < s.NumOrganisms; i++ {
				r := s.stream.Sub(s.phase, tagBreed, uint64(off+i))
				next[off+i] = s.breeder.Child(
					&s.genotypes[off+int(parents[i])],
					&s.genotypes[off+int(mates[i])], r)
			}
			group++
		}
	}
	s.genotypes = next
}

// Simulate renders and steps every organism to its final frame only. No
// trajectory is retained and fitness is untouched.
func (s *Simulator) Simulate() {
	s.pool.run(s.total(), func(start, end, _ int) {
		for i := start; i < end; i++ {
			initial := phenotype.Render(&s.programs[s.speciesOf(i)], &s.genotypes[i])
			s.finals[i] = life.Simulate(initial)
		}
	})
}

// SimulateAndRecord renders and steps every organism with full trajectory
// retention, scores every trajectory against the goal, and updates the
// stored fitness. The returned trajectories are shaped
// [species][trial][organism] and owned by the caller.
func (s *Simulator) SimulateAndRecord(goal fitness.Goal) [][][][]world.Frame {
	total := s.total()
	flat := make([][]world.Frame, total)
	for i := range flat {
		flat[i] = life.NewTrajectory()
	}
	s.pool.run(total, func(start, end, _ int) {
		for i := start; i < end; i++ {
			initial := phenotype.Render(&s.programs[s.speciesOf(i)], &s.genotypes[i])
			life.Record(initial, flat[i])
			s.scores[i] = fitness.Score(flat[i], goal)
			s.finals[i] = flat[i][life.NumSteps]
		}
	})

	out := make([][][][]world.Frame, s.NumSpecies)
	i := 0
	for sp := range out {
		out[sp] = make([][][]world.Frame, s.NumTrials)
		for tr := range out[sp] {
			out[sp][tr] = make([][]world.Frame, s.NumOrganisms)
			for o := range out[sp][tr] {
				out[sp][tr][o] = flat[i]
				i++
			}
		}
	}
	return out
}

// ScoreGeneration renders, steps, and scores every organism without
// retaining trajectories: they live in per-worker scratch and are discarded
// after scoring, bounding peak memory. Scores are identical to
// SimulateAndRecord's. This is the scoring path Evolve uses each generation.
func (s *Simulator) ScoreGeneration(goal fitness.Goal) {
	scratch := make([][]world.Frame, s.pool.numWorkers)
	s.pool.run(s.total(), func(start, end, worker int) {
		if scratch[worker] == nil {
			scratch[worker] = life.NewTrajectory()
		}
		traj := scratch[worker]
		for i := start; i < end; i++ {
			initial := phenotype.Render(&s.programs[s.speciesOf(i)], &s.genotypes[i])
			life.Record(initial, traj)
			s.scores[i] = fitness.Score(traj, goal)
			s.finals[i] = traj[life.NumSteps]
		}
	})
}

// Evolve populates from the programs and runs the full loop: score each
// generation against the goal, then select and breed the next. The final
// generation is scored but not bred away, so the retained genotypes and
// fitness correspond.
func (s *Simulator) Evolve(programs []genome.PhenotypeProgram, goal fitness.Goal, numGenerations int) error {
	if err := s.Populate(programs); err != nil {
		return err
	}
	for gen := 0; gen < numGenerations; gen++ {
		s.ScoreGeneration(goal)
		if gen < numGenerations-1 {
			s.Propagate()
		}
	}
	return nil
}

// GetFitnessScores returns a [species][trial][organism] snapshot of the
// current fitness array.
func (s *Simulator) GetFitnessScores() [][][]fitness.Fitness {
	out := make([][][]fitness.Fitness, s.NumSpecies)
	i := 0
	for sp := range out {
		out[sp] = make([][]fitness.Fitness, s.NumTrials)
		for tr := range out[sp] {
			row := make([]fitness.Fitness, s.NumOrganisms)
			copy(row, s.scores[i:i+s.NumOrganisms])
			out[sp][tr] = row
			i += s.NumOrganisms
		}
	}
	return out
}

// GetGenotypes returns a [species][trial][organism] snapshot of the current
// population.
func (s *Simulator) GetGenotypes() [][][]genome.Genotype {
	out := make([][][]genome.Genotype, s.NumSpecies)
	i := 0
	for sp := range out {
		out[sp] = make([][]genome.Genotype, s.NumTrials)
		for tr := range out[sp] {
			row := make([]genome.Genotype, s.NumOrganisms)
			copy(row, s.genotypes[i:i+s.NumOrganisms])
			out[sp][tr] = row
			i += s.NumOrganisms
		}
	}
	return out
}

// GetFinalFrames returns a [species][trial][organism] snapshot of the final
// frames written by the last Simulate, SimulateAndRecord, or ScoreGeneration
// call.
func (s *Simulator) GetFinalFrames() [][][]world.Frame {
	out := make([][][]world.Frame, s.NumSpecies)
	i := 0
	for sp := range out {
		out[sp] = make([][]world.Frame, s.NumTrials)
		for tr := range out[sp] {
			row := make([]world.Frame, s.NumOrganisms)
			copy(row, s.finals[i:i+s.NumOrganisms])
			out[sp][tr] = row
			i += s.NumOrganisms
		}
	}
	return out
}

// SimulateOrganism renders the genotype under the program and returns its
// full trajectory.
func SimulateOrganism(p *genome.PhenotypeProgram, g *genome.Genotype) []world.Frame {
	return life.SimulatePhenotype(phenotype.Render(p, g))
}
