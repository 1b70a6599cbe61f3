// Package config provides configuration loading and access for evolution
// runs. The kernel's fixed constants (grid size, horizon, gene layout,
// breeding rates) are compile-time; config covers the runtime knobs of a
// run: population shape, goal, generations, and output.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/petri/fitness"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run configuration parameters.
type Config struct {
	Run    RunConfig    `yaml:"run"`
	Output OutputConfig `yaml:"output"`
	Viewer ViewerConfig `yaml:"viewer"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// RunConfig holds the population shape and loop parameters of a run.
type RunConfig struct {
	Species     int    `yaml:"species"`     // Species count; one program each
	Trials      int    `yaml:"trials"`      // Independent stochastic replicates per species
	Organisms   int    `yaml:"organisms"`   // Selection units per trial
	Generations int    `yaml:"generations"` // Evolution loop length
	Goal        string `yaml:"goal"`        // Fitness goal name, e.g. STILL_LIFE
	Seed        uint64 `yaml:"seed"`        // RNG seed (0 = time-based)
	Program     string `yaml:"program"`     // Program library entry used for every species
}

// OutputConfig holds run artifact settings.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory for CSV logs and snapshots ("" = disabled)
}

// ViewerConfig holds trajectory viewer settings.
type ViewerConfig struct {
	CellPixels     int     `yaml:"cell_pixels"`      // Screen pixels per world cell
	TargetFPS      int     `yaml:"target_fps"`       // Render frame rate
	StepsPerSecond float64 `yaml:"steps_per_second"` // Initial playback speed
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Goal fitness.Goal // Parsed Run.Goal
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived validates and resolves values derived from the loaded
// config.
func (c *Config) computeDerived() error {
	goal, err := fitness.ParseGoal(c.Run.Goal)
	if err != nil {
		return fmt.Errorf("run.goal: %w", err)
	}
	c.Derived.Goal = goal

	if c.Run.Species <= 0 || c.Run.Trials <= 0 || c.Run.Organisms <= 0 {
		return fmt.Errorf("run: population axes must be positive, got %dx%dx%d",
			c.Run.Species, c.Run.Trials, c.Run.Organisms)
	}
	if c.Run.Generations <= 0 {
		return fmt.Errorf("run.generations must be positive, got %d", c.Run.Generations)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
