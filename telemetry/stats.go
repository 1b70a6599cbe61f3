// Package telemetry aggregates and persists per-generation statistics of an
// evolution run: fitness distributions per species and the best genotype
// seen so far.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/petri/fitness"
)

// GenerationStats holds the fitness distribution of one species over one
// generation, aggregated across all trials.
type GenerationStats struct {
	Generation int    `csv:"generation"`
	Species    int    `csv:"species"`
	Goal       string `csv:"goal"`

	Organisms  int     `csv:"organisms"`
	FitnessMax uint32  `csv:"fitness_max"`
	FitnessMin uint32  `csv:"fitness_min"`
	FitnessAvg float64 `csv:"fitness_mean"`
	FitnessStd float64 `csv:"fitness_std"`
	FitnessP50 float64 `csv:"fitness_p50"`
	FitnessP90 float64 `csv:"fitness_p90"`
}

// ComputeGenerationStats aggregates the flat fitness scores of one species
// (all trials concatenated) for one generation.
func ComputeGenerationStats(generation, species int, goal fitness.Goal, scores []fitness.Fitness) GenerationStats {
	s := GenerationStats{
		Generation: generation,
		Species:    species,
		Goal:       goal.String(),
		Organisms:  len(scores),
	}
	if len(scores) == 0 {
		return s
	}

	values := make([]float64, len(scores))
	s.FitnessMin = uint32(scores[0])
	for i, f := range scores {
		values[i] = float64(f)
		if uint32(f) > s.FitnessMax {
			s.FitnessMax = uint32(f)
		}
		if uint32(f) < s.FitnessMin {
			s.FitnessMin = uint32(f)
		}
	}

	s.FitnessAvg = stat.Mean(values, nil)
	s.FitnessStd = stat.StdDev(values, nil)

	sort.Float64s(values)
	s.FitnessP50 = stat.Quantile(0.5, stat.Empirical, values, nil)
	s.FitnessP90 = stat.Quantile(0.9, stat.Empirical, values, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.Generation),
		slog.Int("species", s.Species),
		slog.String("goal", s.Goal),
		slog.Int("organisms", s.Organisms),
		slog.Uint64("fitness_max", uint64(s.FitnessMax)),
		slog.Uint64("fitness_min", uint64(s.FitnessMin)),
		slog.Float64("fitness_mean", s.FitnessAvg),
		slog.Float64("fitness_std", s.FitnessStd),
		slog.Float64("fitness_p50", s.FitnessP50),
		slog.Float64("fitness_p90", s.FitnessP90),
	)
}
