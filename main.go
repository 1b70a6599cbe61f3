package main

import (
	"flag"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/evolve"
	"github.com/pthm-cable/petri/fitness"
	"github.com/pthm-cable/petri/genome"
	"github.com/pthm-cable/petri/telemetry"
)

func main() {
	// CLI flags; anything left at its zero value defers to the config file.
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = use config, config 0 = time-based)")
	goalName := flag.String("goal", "", "Fitness goal (EXPLODE, GLIDERS, LEFT_TO_RIGHT, STILL_LIFE, SYMMETRY, THREE_CYCLE, TWO_CYCLE)")
	species := flag.Int("species", 0, "Number of species")
	trials := flag.Int("trials", 0, "Number of trials per species")
	organisms := flag.Int("organisms", 0, "Number of organisms per trial")
	generations := flag.Int("generations", 0, "Number of generations")
	programName := flag.String("program", "", "Program library entry, or 'mixed' to cycle the library across species")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	applyFlagOverrides(cfg, *seed, *goalName, *species, *trials, *organisms, *generations, *programName, *outputDir)

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := cfg.Run.Seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	programs, err := buildPrograms(cfg.Run.Program, cfg.Run.Species)
	if err != nil {
		slog.Error("failed to build programs", "error", err)
		os.Exit(1)
	}

	om, err := telemetry.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting evolution",
		"seed", rngSeed,
		"goal", cfg.Run.Goal,
		"species", cfg.Run.Species,
		"trials", cfg.Run.Trials,
		"organisms", cfg.Run.Organisms,
		"generations", cfg.Run.Generations,
		"program", cfg.Run.Program,
		"output_dir", om.Dir(),
	)

	if err := run(cfg, rngSeed, programs, om); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// run drives the populate/score/propagate loop with telemetry between
// generations.
func run(cfg *config.Config, seed uint64, programs []genome.PhenotypeProgram, om *telemetry.OutputManager) error {
	goal := cfg.Derived.Goal

	sim := evolve.NewSimulator(cfg.Run.Species, cfg.Run.Trials, cfg.Run.Organisms)
	defer sim.Close()
	sim.Seed(seed)

	if err := sim.Populate(programs); err != nil {
		return err
	}

	tracker := telemetry.NewBestTracker(cfg.Run.Species)
	start := time.Now()

	for gen := 0; gen < cfg.Run.Generations; gen++ {
		sim.ScoreGeneration(goal)

		scores := sim.GetFitnessScores()
		genotypes := sim.GetGenotypes()
		records := make([]telemetry.GenerationStats, 0, cfg.Run.Species)
		for sp := 0; sp < cfg.Run.Species; sp++ {
			flat := make([]fitness.Fitness, 0, cfg.Run.Trials*cfg.Run.Organisms)
			for tr := range scores[sp] {
				flat = append(flat, scores[sp][tr]...)
			}
			stats := telemetry.ComputeGenerationStats(gen, sp, goal, flat)
			records = append(records, stats)
			tracker.Observe(gen, sp, scores[sp], genotypes[sp])
			slog.Info("generation", "stats", stats)
		}
		if err := om.WriteGenerations(records); err != nil {
			return err
		}

		if gen < cfg.Run.Generations-1 {
			sim.Propagate()
		}
	}

	if err := om.WriteBest(tracker); err != nil {
		return err
	}
	for _, best := range tracker.Entries() {
		slog.Info("best organism",
			"species", best.Species,
			"generation", best.Generation,
			"trial", best.Trial,
			"organism", best.Organism,
			"fitness", uint64(best.Fitness),
		)
	}
	slog.Info("evolution complete", "elapsed", time.Since(start).String())
	return nil
}

// buildPrograms resolves the named library program for each species. The
// name "mixed" cycles through the library in stable order.
func buildPrograms(name string, numSpecies int) ([]genome.PhenotypeProgram, error) {
	lib := genome.Library()
	programs := make([]genome.PhenotypeProgram, numSpecies)

	if name == "mixed" {
		names := make([]string, 0, len(lib))
		for n := range lib {
			names = append(names, n)
		}
		sort.Strings(names)
		for i := range programs {
			programs[i] = lib[names[i%len(names)]]
		}
		return programs, nil
	}

	p, ok := lib[name]
	if !ok {
		return nil, &unknownProgramError{name: name}
	}
	for i := range programs {
		programs[i] = p
	}
	return programs, nil
}

type unknownProgramError struct {
	name string
}

func (e *unknownProgramError) Error() string {
	return "unknown program " + e.name + " (want one of the library names or 'mixed')"
}

// applyFlagOverrides folds non-zero CLI flags over the loaded config.
func applyFlagOverrides(cfg *config.Config, seed uint64, goal string, species, trials, organisms, generations int, program, outputDir string) {
	if seed != 0 {
		cfg.Run.Seed = seed
	}
	if goal != "" {
		cfg.Run.Goal = goal
		parsed, err := fitness.ParseGoal(goal)
		if err != nil {
			slog.Error("invalid goal flag", "error", err)
			os.Exit(1)
		}
		cfg.Derived.Goal = parsed
	}
	if species > 0 {
		cfg.Run.Species = species
	}
	if trials > 0 {
		cfg.Run.Trials = trials
	}
	if organisms > 0 {
		cfg.Run.Organisms = organisms
	}
	if generations > 0 {
		cfg.Run.Generations = generations
	}
	if program != "" {
		cfg.Run.Program = program
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
}
