package ga

import (
	"fmt"
	"log/slog"
)

// Brain is the weight-vector view of an agent's controller. *nn.Network
// satisfies it.
type Brain interface {
	Weights() []float64
	SetWeights(weights []float64) error
}

// Epoch runs one generation boundary. brains[i] and scores[i] belong to
// population slot i. The weights of every brain are copied into its
// chromosome, scores become fitness, the population is stepped over and the
// new genomes are written back into the brains.
//
// The returned statistics describe the generation that was just evaluated.
// Resetting scores stays with the caller.
func (ga *GeneticAlgorithm) Epoch(brains []Brain, scores []float64) (GenerationStats, error) {
	n := len(ga.population)
	if len(brains) != n {
		return GenerationStats{}, fmt.Errorf("%w: got %d brains for %d chromosomes", ErrPopulationSize, len(brains), n)
	}
	if len(scores) != n {
		return GenerationStats{}, fmt.Errorf("%w: got %d scores for %d chromosomes", ErrPopulationSize, len(scores), n)
	}

	// Collect every weight vector first so a bad brain leaves the population untouched.
	weights := make([][]float64, n)
	for i := range brains {
		w := brains[i].Weights()
		if len(w) != ga.schema.Len() {
			return GenerationStats{}, fmt.Errorf("brain %d: %w: got %d weights, schema has %d genes",
				i, ErrGenomeLength, len(w), ga.schema.Len())
		}
		weights[i] = w
	}
	for i, c := range ga.population {
		if err := c.SetValues(weights[i]); err != nil {
			return GenerationStats{}, fmt.Errorf("brain %d: %w", i, err)
		}
		c.Fitness = scores[i]
	}

	stats := ga.summarizeGeneration()

	if err := ga.StepOver(); err != nil {
		return stats, err
	}

	for i, c := range ga.population {
		if err := brains[i].SetWeights(c.Values()); err != nil {
			return stats, fmt.Errorf("brain %d: %w", i, err)
		}
	}

	ga.logger.Info("generation evaluated",
		slog.Int("generation", stats.Generation),
		slog.Float64("best", stats.Best),
		slog.Float64("mean", stats.Mean),
		slog.Float64("worst", stats.Worst),
		slog.Int("distinct_dna", stats.DistinctDNA),
	)
	for _, o := range ga.observers {
		o.Observe(stats)
	}
	return stats, nil
}

// Seed writes the current genomes into the brains, typically once after New
// so every agent starts from its chromosome.
func (ga *GeneticAlgorithm) Seed(brains []Brain) error {
	if len(brains) != len(ga.population) {
		return fmt.Errorf("%w: got %d brains for %d chromosomes", ErrPopulationSize, len(brains), len(ga.population))
	}
	for i, c := range ga.population {
		if err := brains[i].SetWeights(c.Values()); err != nil {
			return fmt.Errorf("brain %d: %w", i, err)
		}
	}
	return nil
}
