package ga

import (
	"github.com/campoy/unique"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FitnessStats summarizes one set of fitness scores.
type FitnessStats struct {
	Best      float64
	Worst     float64
	Mean      float64
	StdDev    float64
	BestIndex int // First index holding Best.
}

// GenerationStats describes one evaluated generation, taken right before it
// is replaced by StepOver.
type GenerationStats struct {
	Generation int
	Size       int
	FitnessStats
	BestDNA     string
	DistinctDNA int
}

// Summarize computes best, worst, mean and sample standard deviation.
// An empty input yields the zero value; a single score has zero deviation.
func Summarize(fitnesses []float64) FitnessStats {
	if len(fitnesses) == 0 {
		return FitnessStats{}
	}
	s := FitnessStats{
		Best:      floats.Max(fitnesses),
		Worst:     floats.Min(fitnesses),
		Mean:      stat.Mean(fitnesses, nil),
		BestIndex: floats.MaxIdx(fitnesses),
	}
	if len(fitnesses) > 1 {
		s.StdDev = stat.StdDev(fitnesses, nil)
	}
	return s
}

// CountDistinct returns how many different strings dna holds.
func CountDistinct(dna []string) int {
	sorted := append([]string(nil), dna...)
	unique.Slice(&sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return len(sorted)
}

// summarizeGeneration builds the statistics of the current population.
func (ga *GeneticAlgorithm) summarizeGeneration() GenerationStats {
	fitnesses := make([]float64, len(ga.population))
	dna := make([]string, len(ga.population))
	for i, c := range ga.population {
		fitnesses[i] = c.Fitness
		dna[i] = c.DNA()
	}

	stats := GenerationStats{
		Generation:   ga.generation,
		Size:         len(ga.population),
		FitnessStats: Summarize(fitnesses),
		DistinctDNA:  CountDistinct(dna),
	}
	if len(dna) > 0 {
		stats.BestDNA = dna[stats.BestIndex]
	}
	return stats
}
