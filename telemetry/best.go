package telemetry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pthm-cable/petri/fitness"
	"github.com/pthm-cable/petri/genome"
)

// BestEntry records the highest-scoring organism seen for one species.
type BestEntry struct {
	Species    int             `json:"species"`
	Generation int             `json:"generation"`
	Trial      int             `json:"trial"`
	Organism   int             `json:"organism"`
	Fitness    fitness.Fitness `json:"fitness"`
	Genotype   genome.Genotype `json:"genotype"`
}

// BestTracker keeps the best organism per species across generations.
type BestTracker struct {
	entries []BestEntry
	seen    []bool
}

// NewBestTracker tracks the given number of species.
func NewBestTracker(numSpecies int) *BestTracker {
	return &BestTracker{
		entries: make([]BestEntry, numSpecies),
		seen:    make([]bool, numSpecies),
	}
}

// Observe folds one generation's snapshots into the tracker. scores and
// genotypes are shaped [trial][organism] for the given species.
func (b *BestTracker) Observe(generation, species int, scores [][]fitness.Fitness, genotypes [][]genome.Genotype) {
	for tr := range scores {
		for o := range scores[tr] {
			f := scores[tr][o]
			if b.seen[species] && f <= b.entries[species].Fitness {
				continue
			}
			b.entries[species] = BestEntry{
				Species:    species,
				Generation: generation,
				Trial:      tr,
				Organism:   o,
				Fitness:    f,
				Genotype:   genotypes[tr][o],
			}
			b.seen[species] = true
		}
	}
}

// Entries returns the tracked best organisms in species order.
func (b *BestTracker) Entries() []BestEntry {
	return b.entries
}

// WriteJSON persists the tracked entries.
func (b *BestTracker) WriteJSON(path string) error {
	data, err := json.MarshalIndent(b.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling best entries: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
