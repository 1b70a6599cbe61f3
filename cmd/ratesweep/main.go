// Package main sweeps crossover and mutation rates with Nelder-Mead,
// scoring each candidate by the mean best fitness of short evolution runs
// across a handful of seeds.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/evolve"
	"github.com/pthm-cable/petri/fitness"
	"github.com/pthm-cable/petri/genome"
)

// mutationCeiling bounds the swept mutation rate; anything higher degenerates
// into random search.
const mutationCeiling = 0.05

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 60, "Maximum number of evaluations")
	generations := flag.Int("generations", 10, "Generations per evaluation run")
	logPath := flag.String("log", "ratesweep.csv", "CSV log of evaluations")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	programs := make([]genome.PhenotypeProgram, cfg.Run.Species)
	for i := range programs {
		programs[i] = genome.TiledStamp()
	}

	logFile, err := os.Create(*logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()
	logWriter := csv.NewWriter(logFile)
	logWriter.Write([]string{"eval", "crossover", "mutation", "mean_best_fitness"})
	logWriter.Flush()
	if err := logWriter.Error(); err != nil {
		log.Fatalf("failed to write log header: %v", err)
	}

	eval := 0
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			crossover := clamp01(x[0])
			mutation := clamp01(x[1]) * mutationCeiling
			score := evaluate(cfg, programs, crossover, mutation, *seeds, *generations)

			eval++
			logWriter.Write([]string{
				strconv.Itoa(eval),
				strconv.FormatFloat(crossover, 'f', 4, 64),
				strconv.FormatFloat(mutation, 'f', 6, 64),
				strconv.FormatFloat(score, 'f', 2, 64),
			})
			logWriter.Flush()
			if err := logWriter.Error(); err != nil {
				log.Fatalf("failed to write sweep log: %v", err)
			}

			// Minimizing, so negate.
			return -score
		},
	}

	settings := &optimize.Settings{FuncEvaluations: *maxEvals}
	initX := []float64{evolve.CrossoverRate, evolve.MutationRate / mutationCeiling}

	result, err := optimize.Minimize(problem, initX, settings, &optimize.NelderMead{})
	if err != nil {
		log.Fatalf("optimization failed: %v", err)
	}

	fmt.Printf("best crossover=%.4f mutation=%.6f mean_best_fitness=%.2f (%d evals)\n",
		clamp01(result.X[0]), clamp01(result.X[1])*mutationCeiling, -result.F, eval)
}

// evaluate runs short evolutions at the candidate rates and returns the mean
// over seeds of the best fitness in the final generation.
func evaluate(cfg *config.Config, programs []genome.PhenotypeProgram, crossover, mutation float64, seeds, generations int) float64 {
	var total float64
	for s := 0; s < seeds; s++ {
		sim := evolve.NewSimulator(cfg.Run.Species, cfg.Run.Trials, cfg.Run.Organisms)
		sim.SetBreeder(evolve.Breeder{CrossoverRate: crossover, MutationRate: mutation})
		sim.Seed(uint64(s*1000 + 42))

		if err := sim.Evolve(programs, cfg.Derived.Goal, generations); err != nil {
			sim.Close()
			log.Fatalf("evolve failed: %v", err)
		}

		var best fitness.Fitness
		for _, trials := range sim.GetFitnessScores() {
			for _, organisms := range trials {
				for _, f := range organisms {
					if f > best {
						best = f
					}
				}
			}
		}
		total += float64(best)
		sim.Close()
	}
	return total / float64(seeds)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
